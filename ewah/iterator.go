package ewah

import "math/bits"

// BitIterator decompresses a Bitmap one 64-bit word at a time, without
// materialising the whole thing. It is the cheapest way to rebuild a
// PlainBitmap or to compare two bitmaps word-by-word.
type BitIterator struct {
	words   []uint64
	pointer int

	runLen       uint64
	literalWords uint64
	runBit       bool
}

// NewBitIterator returns an iterator positioned before the first word
// of b.
func NewBitIterator(b *Bitmap) *BitIterator {
	it := &BitIterator{words: b.words}
	it.readHeader()
	return it
}

func (it *BitIterator) readHeader() {
	if it.pointer >= len(it.words) {
		it.runLen, it.literalWords, it.runBit = 0, 0, false
		return
	}
	h := rlw(it.words[it.pointer])
	it.runLen = h.runningLen()
	it.literalWords = h.literalWords()
	it.runBit = h.runBit()
}

// Next returns the next decompressed word, or (0, false) once every
// word of the bitmap has been produced.
func (it *BitIterator) Next() (uint64, bool) {
	for {
		if it.pointer >= len(it.words) {
			return 0, false
		}

		if it.runLen > 0 {
			it.runLen--
			var v uint64
			if it.runBit {
				v = allOnes
			}
			return v, true
		}

		if it.literalWords > 0 {
			it.pointer++
			it.literalWords--
			return it.words[it.pointer], true
		}

		it.pointer++
		it.readHeader()
	}
}

// PositionIterator yields the positions of set bits, pulled lazily one
// at a time. It must produce the same sequence, in the same order, as
// Bitmap.EachBit's callback form.
type PositionIterator struct {
	bi   *BitIterator
	pos  uint64
	word uint64
	have bool
}

// NewPositionIterator returns a PositionIterator over b.
func NewPositionIterator(b *Bitmap) *PositionIterator {
	return &PositionIterator{bi: NewBitIterator(b)}
}

// Next returns the position of the next set bit, or (0, false) when
// exhausted.
func (p *PositionIterator) Next() (uint64, bool) {
	for {
		if p.have {
			if p.word != 0 {
				shift := bits.TrailingZeros64(p.word)
				pos := p.pos + uint64(shift)
				p.word &^= uint64(1) << uint(shift)
				return pos, true
			}
			p.have = false
			p.pos += wordBits
		}

		w, ok := p.bi.Next()
		if !ok {
			return 0, false
		}
		p.word = w
		p.have = true
	}
}
