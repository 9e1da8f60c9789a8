package core

import (
	"strings"
	"testing"
)

func rowsOf(s *Screen) []string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return rows
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	want := "      \n      \n      "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	neg := NewScreen(-4, -1)
	if neg.Width() != 0 || neg.Height() != 0 {
		t.Errorf("negative size gave %dx%d, want 0x0", neg.Width(), neg.Height())
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}, {99, 99}} {
		s.SetColor(p[0], p[1], '#', ColorRed)
		if got := s.GetCell(p[0], p[1]); got != blank {
			t.Errorf("GetCell(%d, %d) = %+v, want blank", p[0], p[1], got)
		}
	}
	if strings.ContainsRune(s.String(), '#') {
		t.Error("out-of-bounds writes must not land on the screen")
	}
	if got := s.Row(5); got != "    " {
		t.Errorf("Row(5) = %q, want blank row", got)
	}
}

func TestScreenCellsCarryColor(t *testing.T) {
	s := NewScreen(8, 2)
	s.SetColor(0, 0, '█', ColorCyan)
	s.Set(1, 0, 'x')
	s.DrawTextColor(2, 1, "ok", ColorOrange)

	tests := []struct {
		x, y int
		want Cell
	}{
		{0, 0, Cell{'█', ColorCyan}},
		{1, 0, Cell{'x', ColorDefault}},
		{2, 1, Cell{'o', ColorOrange}},
		{3, 1, Cell{'k', ColorOrange}},
		{4, 1, Cell{' ', ColorDefault}},
	}
	for _, tt := range tests {
		if got := s.GetCell(tt.x, tt.y); got != tt.want {
			t.Errorf("GetCell(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}

	s.Fill('.')
	if got := s.GetCell(0, 0); got != (Cell{'.', ColorDefault}) {
		t.Errorf("Fill left %+v", got)
	}
	s.Clear()
	if got := s.String(); got != "        \n        " {
		t.Errorf("Clear left %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name string
		x    int
		text string
		want string
	}{
		{"inside", 1, "abc", " abc  "},
		{"clipped right", 4, "abc", "    ab"},
		{"clipped left", -2, "abcd", "cd    "},
		{"multibyte runes take one column", 0, "█·░", "█·░   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(6, 1)
			s.DrawText(tt.x, 0, tt.text)
			if got := s.Row(0); got != tt.want {
				t.Errorf("Row(0) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 2)
	s.DrawTextCentered(0, "PAUSED")
	s.DrawTextCenteredColor(1, "░░░", ColorDim)

	if got := s.Row(0); got != "  PAUSED   " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(1); got != "    ░░░    " {
		t.Errorf("Row(1) = %q", got)
	}
	if s.GetCell(4, 1).Color != ColorDim {
		t.Error("centered text should keep its color")
	}
}

func TestScreenDrawBoxAndRect(t *testing.T) {
	s := NewScreen(7, 5)
	s.Fill('.')
	s.DrawBox(NewRect(0, 0, 6, 4), ColorGray)
	s.DrawRect(NewRect(1, 1, 4, 2), '█', ColorRed)

	want := []string{
		"┌────┐.",
		"│████│.",
		"│████│.",
		"└────┘.",
		".......",
	}
	got := rowsOf(s)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
	if s.GetCell(0, 0).Color != ColorGray || s.GetCell(2, 2).Color != ColorRed {
		t.Error("box and rect should keep their colors")
	}
}

func TestScreenDrawBoxTooSmall(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawBox(NewRect(0, 0, 1, 3), ColorGray)
	s.DrawBox(NewRect(0, 0, 3, 1), ColorGray)

	if got := s.String(); strings.TrimSpace(strings.ReplaceAll(got, "\n", "")) != "" {
		t.Errorf("boxes under 2x2 should not be drawn, got %q", got)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawTextColor(0, 0, "TETRIS", ColorBrightYellow)
	s.DrawText(0, 3, "bottom")

	s.Resize(4, 2)
	if got := rowsOf(s); got[0] != "TETR" || got[1] != "    " {
		t.Errorf("after shrinking rows = %q", got)
	}

	s.Resize(8, 3)
	if got := s.Row(0); got != "TETR    " {
		t.Errorf("after growing Row(0) = %q", got)
	}
	if s.GetCell(0, 0).Color != ColorBrightYellow {
		t.Error("resize should keep cell colors")
	}
	if got := s.Row(2); got != "        " {
		t.Errorf("rows dropped by shrinking must come back blank, got %q", got)
	}

	s.Resize(8, 3)
	if s.Width() != 8 || s.Height() != 3 {
		t.Errorf("same-size resize changed dimensions to %dx%d", s.Width(), s.Height())
	}
}
