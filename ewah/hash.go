package ewah

import (
	"github.com/pjbgf/sha1cd"
)

// Checksum content-addresses b by hashing its serialized record with
// a collision-detecting SHA-1 (the same implementation go-git registers
// for object hashing). Two bitmaps hash identically only if they carry
// the same bit size, the same words, and the same tail position, which
// makes this a cheap way for a store to detect a stale cached bitmap
// without decoding it.
func (b *Bitmap) Checksum() [20]byte {
	h := sha1cd.New()
	// hash.Hash.Write never returns an error.
	_, _ = b.Serialize(h)

	var sum [20]byte
	copy(sum[:], h.Sum(nil))
	return sum
}
