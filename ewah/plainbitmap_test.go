package ewah

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainBitmapSetGetClear(t *testing.T) {
	t.Parallel()

	p := NewPlainBitmap()
	p.Set(0)
	p.Set(3000)

	assert.True(t, p.Get(0))
	assert.True(t, p.Get(3000))
	assert.False(t, p.Get(1))

	p.Clear(3000)
	assert.False(t, p.Get(3000))
}

func TestPlainBitmapGetPastEndIsFalse(t *testing.T) {
	t.Parallel()

	p := NewPlainBitmap()
	assert.False(t, p.Get(1<<20))
}

func TestPlainBitmapCompressRoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	p := NewPlainBitmap()
	for i := 0; i < 8000; i++ {
		if rng.Intn(3) == 0 {
			p.Set(uint64(i))
		}
	}

	compressed := p.Compress()

	for i := uint64(0); i < uint64(p.WordCount())*wordBits; i++ {
		assert.Equal(t, p.Get(i), compressed.Get(i), "bit %d", i)
	}
}

func TestFromBitmapInvertsCompress(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(4))
	p := NewPlainBitmap()
	for i := 0; i < 4000; i++ {
		if rng.Intn(2) == 0 {
			p.Set(uint64(i))
		}
	}

	compressed := p.Compress()
	back := FromBitmap(compressed)

	require.Equal(t, p.WordCount(), back.WordCount())
	for i := 0; i < p.WordCount(); i++ {
		assert.Equal(t, p.words[i], back.words[i], "word %d", i)
	}
}

func TestPlainBitmapCompressAllZero(t *testing.T) {
	t.Parallel()

	p := NewPlainBitmap()
	p.Set(200)
	p.Clear(200)

	compressed := p.Compress()
	for i := uint64(0); i < uint64(p.WordCount())*wordBits; i++ {
		assert.False(t, compressed.Get(i))
	}
}
