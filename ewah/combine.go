package ewah

// The four logical combiners below never fully decompress their
// operands. Each walks two RLWIterators in lockstep: whichever
// iterator's current run is shorter (the "prey") gets discharged into
// the longer one's run (the "predator"), then any overlapping literal
// words are combined directly. Once one operand runs out, the
// remainder of the other is drained according to the operator's
// identity element. The result's bit size is the larger of the two
// operands' bit sizes.

func minRun(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// Xor returns a new Bitmap equal to a XOR b.
func Xor(a, b *Bitmap) *Bitmap {
	out := New()
	ai := NewRLWIterator(a)
	bi := NewRLWIterator(b)

	for ai.WordSize() > 0 && bi.WordSize() > 0 {
		for ai.RunningLen() > 0 || bi.RunningLen() > 0 {
			prey, predator := ai, bi
			if ai.RunningLen() >= bi.RunningLen() {
				prey, predator = bi, ai
			}

			var discharged uint64
			if !predator.RunningBit() {
				discharged = prey.Discharge(out, predator.RunningLen())
			} else {
				discharged = prey.DischargeNegated(out, predator.RunningLen())
			}
			out.AddEmptyRun(predator.RunningBit(), predator.RunningLen()-discharged)
			predator.DiscardFirstWords(predator.RunningLen())
		}

		literals := minRun(ai.LiteralWords(), bi.LiteralWords())
		for k := uint64(0); k < literals; k++ {
			out.AddWord(ai.words[ai.literalWordStart+int(k)] ^ bi.words[bi.literalWordStart+int(k)])
		}
		ai.DiscardFirstWords(literals)
		bi.DiscardFirstWords(literals)
	}

	drainVerbatim(ai, out)
	drainVerbatim(bi, out)
	out.bitSize = max(a.bitSize, b.bitSize)
	return out
}

// Or returns a new Bitmap equal to a OR b.
func Or(a, b *Bitmap) *Bitmap {
	out := New()
	ai := NewRLWIterator(a)
	bi := NewRLWIterator(b)

	for ai.WordSize() > 0 && bi.WordSize() > 0 {
		for ai.RunningLen() > 0 || bi.RunningLen() > 0 {
			prey, predator := ai, bi
			if ai.RunningLen() >= bi.RunningLen() {
				prey, predator = bi, ai
			}

			if !predator.RunningBit() {
				discharged := prey.Discharge(out, predator.RunningLen())
				out.AddEmptyRun(false, predator.RunningLen()-discharged)
			} else {
				out.AddEmptyRun(true, predator.RunningLen())
				prey.DiscardFirstWords(predator.RunningLen())
			}
			predator.DiscardFirstWords(predator.RunningLen())
		}

		literals := minRun(ai.LiteralWords(), bi.LiteralWords())
		for k := uint64(0); k < literals; k++ {
			out.AddWord(ai.words[ai.literalWordStart+int(k)] | bi.words[bi.literalWordStart+int(k)])
		}
		ai.DiscardFirstWords(literals)
		bi.DiscardFirstWords(literals)
	}

	drainVerbatim(ai, out)
	drainVerbatim(bi, out)
	out.bitSize = max(a.bitSize, b.bitSize)
	return out
}

// And returns a new Bitmap equal to a AND b.
func And(a, b *Bitmap) *Bitmap {
	out := New()
	ai := NewRLWIterator(a)
	bi := NewRLWIterator(b)

	for ai.WordSize() > 0 && bi.WordSize() > 0 {
		for ai.RunningLen() > 0 || bi.RunningLen() > 0 {
			prey, predator := ai, bi
			if ai.RunningLen() >= bi.RunningLen() {
				prey, predator = bi, ai
			}

			if predator.RunningBit() {
				discharged := prey.Discharge(out, predator.RunningLen())
				out.AddEmptyRun(false, predator.RunningLen()-discharged)
			} else {
				out.AddEmptyRun(false, predator.RunningLen())
				prey.DiscardFirstWords(predator.RunningLen())
			}
			predator.DiscardFirstWords(predator.RunningLen())
		}

		literals := minRun(ai.LiteralWords(), bi.LiteralWords())
		for k := uint64(0); k < literals; k++ {
			out.AddWord(ai.words[ai.literalWordStart+int(k)] & bi.words[bi.literalWordStart+int(k)])
		}
		ai.DiscardFirstWords(literals)
		bi.DiscardFirstWords(literals)
	}

	drainZero(ai, out)
	drainZero(bi, out)
	out.bitSize = max(a.bitSize, b.bitSize)
	return out
}

// AndNot returns a new Bitmap equal to a AND NOT b (bits set in a but
// not in b).
func AndNot(a, b *Bitmap) *Bitmap {
	out := New()
	ai := NewRLWIterator(a)
	bi := NewRLWIterator(b)

	for ai.WordSize() > 0 && bi.WordSize() > 0 {
		for ai.RunningLen() > 0 || bi.RunningLen() > 0 {
			if ai.RunningLen() >= bi.RunningLen() {
				// a is the predator: its run is constant over the
				// whole bound, so the result depends only on a's bit.
				if ai.RunningBit() {
					discharged := bi.DischargeNegated(out, ai.RunningLen())
					out.AddEmptyRun(true, ai.RunningLen()-discharged)
				} else {
					out.AddEmptyRun(false, ai.RunningLen())
					bi.DiscardFirstWords(ai.RunningLen())
				}
				ai.DiscardFirstWords(ai.RunningLen())
			} else {
				// b is the predator: NOT b is constant over the
				// whole bound, so the result depends only on b's bit.
				if bi.RunningBit() {
					out.AddEmptyRun(false, bi.RunningLen())
					ai.DiscardFirstWords(bi.RunningLen())
				} else {
					discharged := ai.Discharge(out, bi.RunningLen())
					out.AddEmptyRun(false, bi.RunningLen()-discharged)
				}
				bi.DiscardFirstWords(bi.RunningLen())
			}
		}

		literals := minRun(ai.LiteralWords(), bi.LiteralWords())
		for k := uint64(0); k < literals; k++ {
			out.AddWord(ai.words[ai.literalWordStart+int(k)] &^ bi.words[bi.literalWordStart+int(k)])
		}
		ai.DiscardFirstWords(literals)
		bi.DiscardFirstWords(literals)
	}

	// a left over: unaffected by an exhausted b, copy verbatim.
	drainVerbatim(ai, out)
	// b left over: 0 AND NOT anything-in-b is always 0.
	drainZero(bi, out)
	out.bitSize = max(a.bitSize, b.bitSize)
	return out
}

// drainVerbatim copies whatever remains of it into out unchanged. Used
// for the operand that acts as the identity element once its partner
// is exhausted (XOR, OR, and the surviving side of AND NOT).
func drainVerbatim(it *RLWIterator, out *Bitmap) {
	for it.WordSize() > 0 {
		discharged := it.Discharge(out, it.WordSize())
		if discharged == 0 {
			break
		}
	}
}

// drainZero appends a zero run matching whatever remains of it. Used
// for the operand whose leftover content cannot affect the result
// (AND, and the negated side of AND NOT).
func drainZero(it *RLWIterator, out *Bitmap) {
	remaining := it.WordSize()
	if remaining > 0 {
		out.AddEmptyRun(false, remaining)
		it.DiscardFirstWords(remaining)
	}
}
