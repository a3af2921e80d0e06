package ewah

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRLWFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		runBit   bool
		runLen   uint64
		literals uint64
	}{
		{"all zero", false, 0, 0},
		{"run only", true, 12345, 0},
		{"literals only", false, 0, 42},
		{"run and literals", true, RLWLargestRunningCount, RLWLargestLiteralCount},
		{"single run word", false, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			w := newRLW(tc.runBit, tc.runLen, tc.literals)
			assert.Equal(t, tc.runBit, w.runBit())
			assert.Equal(t, tc.runLen, w.runningLen())
			assert.Equal(t, tc.literals, w.literalWords())
			assert.Equal(t, tc.runLen+tc.literals, w.size())
		})
	}
}

func TestRLWSetters(t *testing.T) {
	t.Parallel()

	var w rlw
	w.setRunBit(true)
	require.True(t, w.runBit())

	w.setRunningLen(7)
	assert.Equal(t, uint64(7), w.runningLen())
	assert.True(t, w.runBit(), "setting running length must not disturb the run bit")

	w.setLiteralWords(9)
	assert.Equal(t, uint64(9), w.literalWords())
	assert.Equal(t, uint64(7), w.runningLen(), "setting literal count must not disturb running length")
	assert.True(t, w.runBit())

	w.xorRunBit()
	assert.False(t, w.runBit())
	w.xorRunBit()
	assert.True(t, w.runBit())
}

func TestRLWLargestCountsFitTheWord(t *testing.T) {
	t.Parallel()

	w := newRLW(true, RLWLargestRunningCount, RLWLargestLiteralCount)
	assert.Equal(t, RLWLargestRunningCount, w.runningLen())
	assert.Equal(t, RLWLargestLiteralCount, w.literalWords())
}
