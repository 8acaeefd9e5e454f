package walk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterFlatSuppressesWrapJump(t *testing.T) {
	p := DefaultPalette()
	g := DefaultGeometry()

	_, ok := p.Filter(ModeFlatTorus, g, Position{0, 300}, Position{800, 300}, 800, 600)
	require.False(t, ok, "a full-width jump is a wrap")

	seg, ok := p.Filter(ModeFlatTorus, g, Position{10, 300}, Position{11, 300}, 800, 600)
	require.True(t, ok)
	require.Equal(t, p.Line, seg.Color)

	_, ok = p.Filter(ModePlane, g, Position{10, 300}, Position{10, 302}, 800, 600)
	require.True(t, ok, "exactly two steps is still drawn")

	_, ok = p.Filter(ModePlane, g, Position{10, 300}, Position{10, 302.5}, 800, 600)
	require.False(t, ok)
}

func TestFilterCurvedHalfExtent(t *testing.T) {
	p := DefaultPalette()
	g := DefaultGeometry()

	_, ok := p.Filter(ModeCurvedTorus, g, Position{790, 300}, Position{2, 300}, 800, 600)
	require.False(t, ok)

	_, ok = p.Filter(ModeCurvedTorus, g, Position{400, 590}, Position{400, 3}, 800, 600)
	require.False(t, ok)

	_, ok = p.Filter(ModeCurvedTorus, g, Position{100, 300}, Position{450, 300}, 800, 600)
	require.True(t, ok, "under half the width is drawn")
}

func TestFilterCurvedGradient(t *testing.T) {
	p := DefaultPalette()
	g := DefaultGeometry()

	tests := []struct {
		y       float64
		r, g, b float64
	}{
		{0, 0, 0, 1},
		{300, 0.5, 0, 0.5},
		{600, 1, 0, 0},
		{150, 0.25, 0, 0.75},
	}
	for _, tt := range tests {
		seg, ok := p.Filter(ModeCurvedTorus, g, Position{400, tt.y}, Position{401, tt.y}, 800, 600)
		require.True(t, ok)
		require.InDelta(t, tt.r, seg.Color.R, 1e-9, "y=%v", tt.y)
		require.InDelta(t, tt.g, seg.Color.G, 1e-9, "y=%v", tt.y)
		require.InDelta(t, tt.b, seg.Color.B, 1e-9, "y=%v", tt.y)
	}
}
