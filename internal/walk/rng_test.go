package walk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(4), b.Intn(4))
	}
	require.Equal(t, int64(100), a.Position())
}

func TestSequenceCycles(t *testing.T) {
	s := NewSequence(0, 2)
	require.Equal(t, []int{0, 2, 0, 2}, []int{s.Intn(4), s.Intn(4), s.Intn(4), s.Intn(4)})
	require.Equal(t, 4, s.Drawn())
}
