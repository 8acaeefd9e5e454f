package core

import "testing"

func TestCanvasDimensions(t *testing.T) {
	c := NewCanvas(40, 10)
	if c.DotWidth() != 80 || c.DotHeight() != 40 {
		t.Errorf("dot size = %dx%d, expected 80x40", c.DotWidth(), c.DotHeight())
	}

	c.Resize(-3, 5)
	if c.Cols() != 0 || c.DotWidth() != 0 {
		t.Errorf("negative width should clamp to 0, got %d cols", c.Cols())
	}
}

func TestCanvasBrailleBits(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"top-left dot", 0, 0, 0x2801},
		{"top-right dot", 1, 0, 0x2808},
		{"third row left", 0, 2, 0x2804},
		{"bottom-left dot", 0, 3, 0x2840},
		{"bottom-right dot", 1, 3, 0x2880},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCanvas(1, 1)
			c.Set(tc.x, tc.y, ColorWhite)

			s := NewScreen(1, 1)
			c.Blit(s, 0, 0)
			if got := s.Get(0, 0); got != tc.want {
				t.Errorf("dot (%d,%d) rendered %U, expected %U", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 2)

	c.DrawLine(0, 0, 19, 0, ColorRed)
	for x := 0; x < 20; x++ {
		if !c.IsSet(x, 0) {
			t.Errorf("horizontal line missing dot at x=%d", x)
		}
	}

	c.Clear()
	c.DrawLine(3, 7, 3, 0, ColorBlue)
	for y := 0; y < 8; y++ {
		if !c.IsSet(3, y) {
			t.Errorf("vertical line missing dot at y=%d", y)
		}
	}
	if c.IsSet(2, 0) {
		t.Error("vertical line should not touch the neighbouring column")
	}
}

func TestCanvasBlitSkipsEmptyCells(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Set(2, 0, ColorGreen) // second cell

	s := NewScreen(5, 1)
	s.DrawText(0, 0, "abcde")
	c.Blit(s, 1, 0)

	if s.Get(1, 0) != 'b' || s.Get(3, 0) != 'd' {
		t.Errorf("empty canvas cells must not overwrite the screen, row = %q", s.String())
	}
	cell := s.GetCell(2, 0)
	if cell.Rune != 0x2801 || cell.Color != ColorGreen {
		t.Errorf("lit cell = %+v, expected green U+2801", cell)
	}
}

func TestCanvasKeepsHexColor(t *testing.T) {
	c := NewCanvas(2, 1)
	c.DrawLine(0, 0, 3, 0, Color("#0000ff"))
	c.Set(3, 1, Color("#ff0000")) // same cell as the line's end

	s := NewScreen(2, 1)
	c.Blit(s, 0, 0)
	if got := s.GetCell(0, 0).Color; got != "#0000ff" {
		t.Errorf("first cell color = %q, expected #0000ff", got)
	}
	if got := s.GetCell(1, 0).Color; got != "#ff0000" {
		t.Errorf("cell takes the last color drawn through it, got %q", got)
	}
}
