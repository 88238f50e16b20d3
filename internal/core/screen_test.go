package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	s.SetColored(1, 1, '7', ColorCorrect)
	if c := s.GetCell(1, 1); c.Rune != '7' || c.Color != ColorCorrect {
		t.Errorf("GetCell(1, 1) = %+v, expected colored 7", c)
	}

	// Out of bounds is silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawRectColored(NewRect(0, 0, 5, 5), 'X', ColorRed)
	s.Clear()

	for y := range 5 {
		for x := range 5 {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Fatalf("after Clear expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}

	s.Fill('#')
	if s.Row(2) != "#####" {
		t.Errorf("after Fill row = %q", s.Row(2))
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Héllo", ColorGreen)

	for i, ch := range []rune("Héllo") {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorGreen {
			t.Errorf("expected %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered: text not at expected position, row = %q", s.Row(2))
	}

	// Multi-byte runes count as one column
	s.DrawTextCentered(3, "→→")
	if s.Get(x, 3) != '→' {
		t.Errorf("centered arrows misplaced, row = %q", s.Row(3))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}

	// Degenerate boxes draw nothing
	s.Clear()
	s.DrawBox(NewRect(0, 0, 1, 5))
	if s.Get(0, 0) != ' ' {
		t.Error("box narrower than 2 should not be drawn")
	}
}

func TestScreenStringAndContains(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CC 12")

	expected := "AAAAA\nBBBBB\nCC 12"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
	if !s.Contains("C 1") {
		t.Error("Contains should find text within a row")
	}
	if s.Contains("AB") {
		t.Error("Contains should not match across rows")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should survive enlarging, row 0 = %q", s.Row(0))
	}
	if len(s.Row(7)) != 15 {
		t.Errorf("new rows should be full width, got %d", len(s.Row(7)))
	}
}
