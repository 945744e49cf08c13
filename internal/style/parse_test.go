package style

import (
	"errors"
	"testing"
)

func TestParseNamed(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"red", Red},
		{"RED", Red},
		{"Magenta", Magenta},
		{"white", White},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestParsePalette(t *testing.T) {
	got, err := Parse("203")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Palette(203) {
		t.Errorf("expected palette 203, got %v", got)
	}

	if _, err := Parse("256"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Parse(\"256\"): expected ErrOutOfRange, got %v", err)
	}

	// All-digit literals are palette indexes, never shorthand hex.
	got, err = Parse("123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Palette(123) {
		t.Errorf("expected palette 123, got %v", got)
	}
}

func TestParseHex(t *testing.T) {
	a, err := Parse("#f43f5e")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Parse("f43f5e")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("hex with and without # should parse identically: %v vs %v", a, b)
	}
	if a != RGB(244, 63, 94) {
		t.Errorf("expected RGB(244,63,94), got %v", a)
	}
}

func TestParseFunctions(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"rgb(244, 63, 94)", RGB(244, 63, 94)},
		{"rgb(244 63 94)", RGB(244, 63, 94)},
		{"hsl(350, 89%, 60%)", mustHSL(t, 350, 0.89, 0.6)},
		{"hsl(350 89% 60%)", mustHSL(t, 350, 0.89, 0.6)},
		{"hsl(350, 0.89, 0.6)", mustHSL(t, 350, 0.89, 0.6)},
		{"hsv(350, 74%, 96%)", mustHSV(t, 350, 0.74, 0.96)},
		{"cmyk(0%, 74%, 62%, 4%)", mustCMYK(t, 0, 0.74, 0.62, 0.04)},
		{"RGB(1, 2, 3)", RGB(1, 2, 3)},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrInvalidFormat},
		{"rgb(1, 2)", ErrInvalidFormat},
		{"rgb(300, 0, 0)", ErrOutOfRange},
		{"hsl(360, 50%, 50%)", ErrOutOfRange},
		{"hsl(10, 150%, 50%)", ErrOutOfRange},
		{"cmyk(10%, 20%, 30%)", ErrInvalidFormat},
		{"hwb(10, 20%, 30%)", ErrInvalidFormat},
		{"not-a-color", ErrInvalidFormat},
	}

	for _, tt := range tests {
		if _, err := Parse(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q): expected %v, got %v", tt.in, tt.want, err)
		}
	}
}

func mustHSL(t *testing.T, h uint16, s, l float64) Color {
	t.Helper()
	c, err := HSL(h, s, l)
	if err != nil {
		t.Fatalf("HSL(%d,%g,%g): %v", h, s, l, err)
	}
	return c
}

func mustHSV(t *testing.T, h uint16, s, v float64) Color {
	t.Helper()
	c, err := HSV(h, s, v)
	if err != nil {
		t.Fatalf("HSV(%d,%g,%g): %v", h, s, v, err)
	}
	return c
}

func mustCMYK(t *testing.T, c, m, y, k float64) Color {
	t.Helper()
	col, err := CMYK(c, m, y, k)
	if err != nil {
		t.Fatalf("CMYK(%g,%g,%g,%g): %v", c, m, y, k, err)
	}
	return col
}
