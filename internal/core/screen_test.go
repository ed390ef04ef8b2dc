package core

import (
	"strings"
	"testing"
)

// runeAt returns the rune at (x, y).
func runeAt(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-5, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("empty screen should render empty string, got %q", s.String())
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '●', ColorBrightGreen)
	if c := s.GetCell(5, 5); c.Rune != '●' || c.Color != ColorBrightGreen {
		t.Errorf("GetCell(5, 5) = %+v, expected green '●'", c)
	}

	// Out of bounds writes are dropped, reads are blank.
	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 10}} {
		s.SetColored(p[0], p[1], 'X', ColorRed)
		if c := s.GetCell(p[0], p[1]); c != blankCell {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], c)
		}
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(1, 1, "ab", ColorCyan)

	s.Clear()
	if c := s.GetCell(2, 1); c != blankCell {
		t.Errorf("Clear should reset rune and color, got %+v", c)
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Score", ColorBrightWhite)

	for i, ch := range "Score" {
		if c := s.GetCell(2+i, 1); c.Rune != ch || c.Color != ColorBrightWhite {
			t.Errorf("cell %d = %+v, expected white %q", 2+i, c, ch)
		}
	}

	// Clipped at the right edge.
	s.DrawTextColored(18, 0, "Hello", ColorDefault)
	if runeAt(s, 18, 0) != 'H' || runeAt(s, 19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorCyan)

	x := (20 - 2) / 2
	if runeAt(s, x, 2) != 'H' || runeAt(s, x+1, 2) != 'i' {
		t.Errorf("centered text not at column %d: %q", x, s.String())
	}

	// Multi-byte runes are centered by rune count.
	s.Clear()
	s.DrawTextCentered(0, "●●", ColorDefault)
	if runeAt(s, x, 0) != '●' {
		t.Error("wide runes should center by rune count")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorGreen)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorGreen {
				t.Errorf("DrawRect: cell (%d, %d) = %+v", x, y, c)
			}
		}
	}
	if runeAt(s, 1, 1) != ' ' || runeAt(s, 5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorBrightWhite)

	corners := map[[2]int]rune{{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘'}
	for p, want := range corners {
		if got := runeAt(s, p[0], p[1]); got != want {
			t.Errorf("corner %v = %q, expected %q", p, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if runeAt(s, x, 1) != '─' || runeAt(s, x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if runeAt(s, 1, y) != '│' || runeAt(s, 5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
	if runeAt(s, 3, 2) != ' ' {
		t.Error("box interior should stay empty")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColored(0, 0, "AAAAA", ColorRed)
	s.DrawTextColored(0, 1, "BBBBB", ColorDefault)
	s.DrawTextColored(0, 2, "CC", ColorDefault)

	if got, want := s.String(), "AAAAA\nBBBBB\nCC   "; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.String(), "Hello") {
		t.Errorf("content should survive shrinking: %q", s.String())
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.String(), "Hello") {
		t.Errorf("content should survive enlarging: %q", s.String())
	}
	if runeAt(s, 14, 7) != ' ' {
		t.Error("new cells should be blank")
	}

	s.Resize(-1, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative resize should give 0x0, got %dx%d", s.Width(), s.Height())
	}
}
