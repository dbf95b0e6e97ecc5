package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("NewScreen(80, 24) = %dx%d", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		if strings.TrimSpace(s.Row(y)) != "" {
			t.Errorf("row %d should be blank, got %q", y, s.Row(y))
		}
	}
}

func TestScreenSetGetBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds writes are dropped, reads return blank.
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(0, 100).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return default color")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 4)

	s.SetColor(1, 1, '@', ColorCyan)
	if got := s.GetCell(1, 1); got.Rune != '@' || got.Color != ColorCyan {
		t.Errorf("GetCell(1, 1) = %+v", got)
	}

	s.DrawRectColor(NewRect(-2, 2, 5, 5), '█', ColorGray)
	for x := 0; x < 3; x++ {
		for y := 2; y < 4; y++ {
			if got := s.GetCell(x, y); got.Rune != '█' || got.Color != ColorGray {
				t.Errorf("clipped rect cell (%d, %d) = %+v", x, y, got)
			}
		}
	}
	if s.Get(3, 2) != ' ' {
		t.Error("DrawRectColor should not extend past the rect")
	}

	s.Clear()
	if got := s.GetCell(1, 1); got != blankCell {
		t.Errorf("Clear should reset colors, got %+v", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")
	if !strings.HasPrefix(s.Row(1)[2:], "Hello") {
		t.Errorf("DrawText row = %q", s.Row(1))
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}

	s.DrawTextCenteredColor(3, "Hi", ColorYellow)
	x := (20 - 2) / 2
	if s.Get(x, 3) != 'H' || s.GetCell(x+1, 3).Color != ColorYellow {
		t.Error("DrawTextCenteredColor misplaced text")
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
			t.Errorf("corner %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(3, 2)
	if got := s.String(); got != "AAA\nBBB" {
		t.Errorf("after shrink String() = %q", got)
	}

	s.Resize(6, 3)
	if got := s.Row(0); got != "AAA   " {
		t.Errorf("after grow Row(0) = %q", got)
	}
	if got := s.Row(-1); got != "      " {
		t.Errorf("Row(-1) = %q", got)
	}
}

func TestColorANSI(t *testing.T) {
	if ColorDefault.ANSI() != "" {
		t.Error("default color should map to the terminal default")
	}
	if got := ColorOrange.ANSI(); got != "208" {
		t.Errorf("ColorOrange.ANSI() = %q, want 208", got)
	}
	for _, c := range Colors() {
		if c.ANSI() == "" {
			t.Errorf("color %d has no ANSI code", c)
		}
	}
	if Color(200).ANSI() != "" {
		t.Error("unknown colors should map to the terminal default")
	}
}
