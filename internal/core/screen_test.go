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

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
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

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '*', ColorBrightRed)

	cell := s.GetCell(3, 4)
	if cell.Rune != '*' {
		t.Errorf("GetCell rune = %q, expected '*'", cell.Rune)
	}
	if cell.Color != ColorBrightRed {
		t.Errorf("GetCell color = %v, expected ColorBrightRed", cell.Color)
	}

	// Out of bounds cells are blank and default-colored
	oob := s.GetCell(-1, 0)
	if oob.Rune != ' ' || oob.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected blank default cell", oob)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetColored(x, y, 'X', ColorGreen)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected blank default cell at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	text := "Hi"
	s.DrawTextCentered(2, text)

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4, ColorWhite)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("Top corners not drawn")
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("Bottom corners not drawn")
	}
	if s.Get(3, 1) != '─' || s.Get(3, 4) != '─' {
		t.Error("Horizontal edges not drawn")
	}
	if s.Get(1, 2) != '│' || s.Get(5, 3) != '│' {
		t.Error("Vertical edges not drawn")
	}

	// Interior is untouched
	if s.Get(3, 2) != ' ' {
		t.Error("Box interior should stay blank")
	}

	// Degenerate boxes must not panic
	s.DrawBox(0, 0, 1, 1, ColorWhite)
	s.DrawBox(0, 0, 0, 0, ColorWhite)
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 3, 'X')

	s.Resize(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("After resize: %dx%d, expected 20x5", s.Width(), s.Height())
	}

	// Content within the new bounds is preserved
	if s.Get(2, 3) != 'X' {
		t.Errorf("Resize should preserve content, got %q at (2, 3)", s.Get(2, 3))
	}

	// Shrinking drops out-of-range content without panicking
	s.Resize(2, 2)
	if s.Get(2, 3) != ' ' {
		t.Error("Out of bounds Get after shrink should return space")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	expected := "a  \n  b"
	if got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}

	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() should join rows with single newlines")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 1, "abcd")

	if s.Row(1) != "abcd" {
		t.Errorf("Row(1) = %q, expected \"abcd\"", s.Row(1))
	}
	if s.Row(5) != "    " {
		t.Errorf("Row out of range should return blanks, got %q", s.Row(5))
	}
}
