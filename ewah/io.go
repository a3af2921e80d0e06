package ewah

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrCorruptBitmap is returned by Deserialize when the record is
// structurally invalid, for example when the stored tail index falls
// outside the decoded word array.
var ErrCorruptBitmap = errors.New("ewah: corrupt bitmap record")

// Serialize writes b to w using a big-endian, four-field record:
// bit size (uint32), word count (uint32), the words themselves
// (uint64 x word count), and the tail header's index (uint32).
func (b *Bitmap) Serialize(w io.Writer) (int64, error) {
	if err := binary.Write(w, binary.BigEndian, uint32(b.bitSize)); err != nil {
		return 0, fmt.Errorf("ewah: write bit size: %w", err)
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(b.words))); err != nil {
		return 4, fmt.Errorf("ewah: write word count: %w", err)
	}
	if err := binary.Write(w, binary.BigEndian, b.words); err != nil {
		return 8, fmt.Errorf("ewah: write words: %w", err)
	}
	if err := binary.Write(w, binary.BigEndian, uint32(b.tail)); err != nil {
		return 8 + int64(len(b.words))*8, fmt.Errorf("ewah: write tail index: %w", err)
	}
	return 8 + int64(len(b.words))*8 + 4, nil
}

// Deserialize reads a Bitmap previously written by Serialize.
func Deserialize(r io.Reader) (*Bitmap, error) {
	var bitSize, wordCount, tail uint32

	if err := binary.Read(r, binary.BigEndian, &bitSize); err != nil {
		return nil, fmt.Errorf("ewah: read bit size: %w", err)
	}
	if err := binary.Read(r, binary.BigEndian, &wordCount); err != nil {
		return nil, fmt.Errorf("ewah: read word count: %w", err)
	}

	words := make([]uint64, wordCount)
	if wordCount > 0 {
		if err := binary.Read(r, binary.BigEndian, words); err != nil {
			return nil, fmt.Errorf("ewah: read words: %w", err)
		}
	}

	if err := binary.Read(r, binary.BigEndian, &tail); err != nil {
		return nil, fmt.Errorf("ewah: read tail index: %w", err)
	}
	if int(tail) >= len(words) {
		return nil, ErrCorruptBitmap
	}

	return &Bitmap{
		bitSize: uint64(bitSize),
		words:   words,
		tail:    int(tail),
		lastSet: int64(bitSize) - 1,
	}, nil
}
