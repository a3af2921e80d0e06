package ewah

// PlainBitmap is an uncompressed bitmap, used as a staging buffer for
// bits that arrive out of order and as the decompression target for
// FromBitmap. Unlike Bitmap it has no monotonic-Set restriction.
type PlainBitmap struct {
	words []uint64
}

// NewPlainBitmap returns an empty PlainBitmap.
func NewPlainBitmap() *PlainBitmap {
	return &PlainBitmap{}
}

// ensure grows p's backing array, doubling it, until it has at least n
// words.
func (p *PlainBitmap) ensure(n uint64) {
	if uint64(len(p.words)) >= n {
		return
	}
	newLen := uint64(len(p.words))
	if newLen == 0 {
		newLen = 32
	}
	for newLen < n {
		newLen *= 2
	}
	grown := make([]uint64, newLen)
	copy(grown, p.words)
	p.words = grown
}

// Set sets the bit at position pos, growing the backing array if
// needed.
func (p *PlainBitmap) Set(pos uint64) {
	block := pos / wordBits
	p.ensure(block + 1)
	p.words[block] |= uint64(1) << (pos % wordBits)
}

// Clear clears the bit at position pos. Positions past the end of the
// backing array are already clear.
func (p *PlainBitmap) Clear(pos uint64) {
	block := pos / wordBits
	if block < uint64(len(p.words)) {
		p.words[block] &^= uint64(1) << (pos % wordBits)
	}
}

// Get returns the bit at position pos.
func (p *PlainBitmap) Get(pos uint64) bool {
	block := pos / wordBits
	if block >= uint64(len(p.words)) {
		return false
	}
	return p.words[block]&(uint64(1)<<(pos%wordBits)) != 0
}

// WordCount returns the number of words currently allocated.
func (p *PlainBitmap) WordCount() int {
	return len(p.words)
}

// Compress builds a canonical Bitmap with exactly the same word
// values as p: runs of zero words collapse into empty runs, and any
// mixed word is canonicalised by AddWord (which itself folds an
// all-zero or all-one word into the surrounding run).
func (p *PlainBitmap) Compress() *Bitmap {
	out := New()
	i, n := 0, len(p.words)

	for i < n {
		if p.words[i] == 0 {
			j := i
			for j < n && p.words[j] == 0 {
				j++
			}
			out.AddEmptyRun(false, uint64(j-i))
			i = j
			continue
		}
		out.AddWord(p.words[i])
		i++
	}

	return out
}

// FromBitmap decompresses b into a new PlainBitmap, one word at a
// time.
func FromBitmap(b *Bitmap) *PlainBitmap {
	p := &PlainBitmap{}
	it := NewBitIterator(b)

	i := 0
	for {
		w, ok := it.Next()
		if !ok {
			break
		}
		if i >= len(p.words) {
			newLen := len(p.words)
			if newLen == 0 {
				newLen = 1
			} else {
				grown := int(float64(newLen) * 1.5)
				if grown <= i {
					grown = i + 1
				}
				newLen = grown
			}
			grown := make([]uint64, newLen)
			copy(grown, p.words)
			p.words = grown
		}
		p.words[i] = w
		i++
	}

	p.words = p.words[:i]
	return p
}
