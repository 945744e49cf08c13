package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse builds a Color from a literal in the small color grammar:
//
//	red                     named system color (case-insensitive)
//	203                     palette index 0-255
//	#f43f5e  f43f5e  #abc   hex, with 3/4/6/8 digits
//	rgb(244, 63, 94)        0-255 channels
//	hsl(350, 89%, 60%)      hue 0-359, percent components
//	hsv(350, 74%, 96%)      hue 0-359, percent components
//	cmyk(0%, 74%, 62%, 4%)  percent components
//
// Percent signs on fractional components are optional; bare numbers are
// read as 0.0-1.0 fractions. Commas between arguments are optional.
// All-digit literals are always read as palette indexes, never as
// shorthand hex.
func Parse(literal string) (Color, error) {
	s := strings.TrimSpace(literal)
	if s == "" {
		return Color{}, fmt.Errorf("empty color literal: %w", ErrInvalidFormat)
	}

	if n, ok := namedIndex(s); ok {
		return Color{kind: KindNamed, named: n}, nil
	}

	if open := strings.IndexByte(s, '('); open > 0 && strings.HasSuffix(s, ")") {
		fn := strings.ToLower(strings.TrimSpace(s[:open]))
		args := splitArgs(s[open+1 : len(s)-1])
		return parseFunc(fn, args, literal)
	}

	if isDigits(s) {
		n, err := strconv.ParseUint(s, 10, 16)
		if err != nil || n > 255 {
			return Color{}, fmt.Errorf("palette index %q: %w", s, ErrOutOfRange)
		}
		return Palette(uint8(n)), nil
	}

	return Hex(s)
}

// parseFunc dispatches rgb/hsl/hsv/cmyk function forms.
func parseFunc(fn string, args []string, literal string) (Color, error) {
	switch fn {
	case "rgb":
		if len(args) != 3 {
			return Color{}, fmt.Errorf("rgb literal %q wants 3 arguments: %w", literal, ErrInvalidFormat)
		}
		var ch [3]uint8
		for i, a := range args {
			n, err := strconv.ParseUint(a, 10, 16)
			if err != nil {
				return Color{}, fmt.Errorf("rgb channel %q: %w", a, ErrInvalidFormat)
			}
			if n > 255 {
				return Color{}, fmt.Errorf("rgb channel %q: %w", a, ErrOutOfRange)
			}
			ch[i] = uint8(n)
		}
		return RGB(ch[0], ch[1], ch[2]), nil

	case "hsl", "hsv":
		if len(args) != 3 {
			return Color{}, fmt.Errorf("%s literal %q wants 3 arguments: %w", fn, literal, ErrInvalidFormat)
		}
		h, err := strconv.ParseUint(args[0], 10, 16)
		if err != nil {
			return Color{}, fmt.Errorf("%s hue %q: %w", fn, args[0], ErrInvalidFormat)
		}
		a, err := parseFraction(args[1])
		if err != nil {
			return Color{}, err
		}
		b, err := parseFraction(args[2])
		if err != nil {
			return Color{}, err
		}
		if fn == "hsl" {
			return HSL(uint16(h), a, b)
		}
		return HSV(uint16(h), a, b)

	case "cmyk":
		if len(args) != 4 {
			return Color{}, fmt.Errorf("cmyk literal %q wants 4 arguments: %w", literal, ErrInvalidFormat)
		}
		var comps [4]float64
		for i, a := range args {
			v, err := parseFraction(a)
			if err != nil {
				return Color{}, err
			}
			comps[i] = v
		}
		return CMYK(comps[0], comps[1], comps[2], comps[3])
	}

	return Color{}, fmt.Errorf("unknown color function %q: %w", fn, ErrInvalidFormat)
}

// parseFraction reads a 0.0-1.0 component; a trailing '%' scales by 100.
func parseFraction(s string) (float64, error) {
	pct := strings.HasSuffix(s, "%")
	raw := strings.TrimSuffix(s, "%")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("color component %q: %w", s, ErrInvalidFormat)
	}
	if pct {
		v /= 100
	}
	return v, nil
}

// splitArgs splits a function argument list on commas and/or spaces.
func splitArgs(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

func namedIndex(s string) (uint8, bool) {
	lower := strings.ToLower(s)
	for i, name := range namedNames {
		if lower == name {
			return uint8(i), true
		}
	}
	return 0, false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
