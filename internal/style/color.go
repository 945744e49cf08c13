package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the color space a Color was constructed in.
type Kind uint8

// Color space kinds.
const (
	KindUnset Kind = iota
	KindNamed
	KindPalette
	KindRGB
	KindHSL
	KindHSV
	KindCMYK
)

// Color represents a terminal color in one of several color spaces.
// The zero value is "unset": the terminal's default color for its role.
// Colors are immutable comparable values and can be used as map keys.
type Color struct {
	kind  Kind
	named uint8
	index uint8
	r     uint8
	g     uint8
	b     uint8
	hue   uint16
	// Floating components by space: HSL s/l, HSV s/v, CMYK c/m/y/k.
	comps [4]float64
}

// The eight named system colors.
var (
	Black   = Color{kind: KindNamed, named: 0}
	Red     = Color{kind: KindNamed, named: 1}
	Green   = Color{kind: KindNamed, named: 2}
	Yellow  = Color{kind: KindNamed, named: 3}
	Blue    = Color{kind: KindNamed, named: 4}
	Magenta = Color{kind: KindNamed, named: 5}
	Cyan    = Color{kind: KindNamed, named: 6}
	White   = Color{kind: KindNamed, named: 7}
)

// Named returns the named system color for an index 0-7.
func Named(n uint8) (Color, error) {
	if n > 7 {
		return Color{}, fmt.Errorf("named color index %d: %w", n, ErrOutOfRange)
	}
	return Color{kind: KindNamed, named: n}, nil
}

// RGB returns a 24-bit truecolor value.
func RGB(r, g, b uint8) Color {
	return Color{kind: KindRGB, r: r, g: g, b: b}
}

// Palette returns an 8-bit xterm palette color.
func Palette(index uint8) Color {
	return Color{kind: KindPalette, index: index}
}

// HSL returns a color from hue (0-359 degrees), saturation, and lightness
// (both 0.0-1.0). A hue of exactly 360 is rejected, not wrapped.
func HSL(h uint16, s, l float64) (Color, error) {
	if h >= 360 {
		return Color{}, fmt.Errorf("hsl hue %d: %w", h, ErrOutOfRange)
	}
	if s < 0 || s > 1 {
		return Color{}, fmt.Errorf("hsl saturation %g: %w", s, ErrOutOfRange)
	}
	if l < 0 || l > 1 {
		return Color{}, fmt.Errorf("hsl lightness %g: %w", l, ErrOutOfRange)
	}
	return Color{kind: KindHSL, hue: h, comps: [4]float64{s, l, 0, 0}}, nil
}

// HSV returns a color from hue (0-359 degrees), saturation, and value
// (both 0.0-1.0). A hue of exactly 360 is rejected, not wrapped.
func HSV(h uint16, s, v float64) (Color, error) {
	if h >= 360 {
		return Color{}, fmt.Errorf("hsv hue %d: %w", h, ErrOutOfRange)
	}
	if s < 0 || s > 1 {
		return Color{}, fmt.Errorf("hsv saturation %g: %w", s, ErrOutOfRange)
	}
	if v < 0 || v > 1 {
		return Color{}, fmt.Errorf("hsv value %g: %w", v, ErrOutOfRange)
	}
	return Color{kind: KindHSV, hue: h, comps: [4]float64{s, v, 0, 0}}, nil
}

// CMYK returns a color from cyan, magenta, yellow, and key components,
// each 0.0-1.0.
func CMYK(c, m, y, k float64) (Color, error) {
	for _, pair := range []struct {
		name string
		v    float64
	}{{"cyan", c}, {"magenta", m}, {"yellow", y}, {"key", k}} {
		if pair.v < 0 || pair.v > 1 {
			return Color{}, fmt.Errorf("cmyk %s %g: %w", pair.name, pair.v, ErrOutOfRange)
		}
	}
	return Color{kind: KindCMYK, comps: [4]float64{c, m, y, k}}, nil
}

// Hex parses a hex color literal into an RGB color.
// Accepts 3, 4, 6, or 8 hex digits with an optional leading '#'.
// Short forms expand each digit by duplication; alpha digits are parsed
// and discarded.
func Hex(hex string) (Color, error) {
	raw := strings.TrimPrefix(hex, "#")

	switch len(raw) {
	case 3, 4:
		var sb strings.Builder
		for _, c := range raw {
			sb.WriteRune(c)
			sb.WriteRune(c)
		}
		raw = sb.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("hex color %q: %w", hex, ErrInvalidFormat)
	}

	channel := func(i int) (uint8, error) {
		v, err := strconv.ParseUint(raw[i:i+2], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("hex color %q: %w", hex, ErrInvalidFormat)
		}
		return uint8(v), nil
	}

	r, err := channel(0)
	if err != nil {
		return Color{}, err
	}
	g, err := channel(2)
	if err != nil {
		return Color{}, err
	}
	b, err := channel(4)
	if err != nil {
		return Color{}, err
	}
	if len(raw) == 8 {
		if _, err := channel(6); err != nil {
			return Color{}, err
		}
	}
	return RGB(r, g, b), nil
}

// Kind returns the color space the color was constructed in.
func (c Color) Kind() Kind {
	return c.kind
}

// IsSet reports whether the color overrides the terminal default.
func (c Color) IsSet() bool {
	return c.kind != KindUnset
}

// System returns the named color index for KindNamed colors.
func (c Color) System() uint8 {
	return c.named
}

// Index returns the palette index for KindPalette colors.
func (c Color) Index() uint8 {
	return c.index
}

// RGB8 reduces any set color to 8-bit RGB channels. Named and palette
// colors resolve through the standard xterm palette values.
func (c Color) RGB8() (r, g, b uint8) {
	switch c.kind {
	case KindRGB:
		return c.r, c.g, c.b
	case KindNamed:
		return paletteRGB(c.named)
	case KindPalette:
		return paletteRGB(c.index)
	case KindHSL:
		chroma := (1 - math.Abs(2*c.comps[1]-1)) * c.comps[0]
		return sectorRGB(chroma, float64(c.hue)/60, c.comps[1]-chroma/2)
	case KindHSV:
		chroma := c.comps[1] * c.comps[0]
		return sectorRGB(chroma, float64(c.hue)/60, c.comps[1]-chroma)
	case KindCMYK:
		kp := 1 - c.comps[3]
		return uint8(255 * (1 - c.comps[0]) * kp),
			uint8(255 * (1 - c.comps[1]) * kp),
			uint8(255 * (1 - c.comps[2]) * kp)
	}
	return 0, 0, 0
}

// sectorRGB maps chroma, the scaled hue (0-6), and the offset m to RGB
// channels via the six-sector piecewise formula, rounding to nearest.
func sectorRGB(chroma, h, m float64) (uint8, uint8, uint8) {
	x := chroma * (1 - math.Abs(math.Mod(h, 2)-1))

	var r, g, b float64
	switch int(h) {
	case 0:
		r, g, b = chroma, x, 0
	case 1:
		r, g, b = x, chroma, 0
	case 2:
		r, g, b = 0, chroma, x
	case 3:
		r, g, b = 0, x, chroma
	case 4:
		r, g, b = x, 0, chroma
	case 5:
		r, g, b = chroma, 0, x
	}

	return uint8(math.Round((r + m) * 255)),
		uint8(math.Round((g + m) * 255)),
		uint8(math.Round((b + m) * 255))
}

// fragment returns the role-independent SGR suffix for the color.
// The role prefix ("3" foreground, "4" background) is applied by FG/BG.
func (c Color) fragment() string {
	switch c.kind {
	case KindNamed:
		return strconv.Itoa(int(c.named))
	case KindPalette:
		return "8;5;" + strconv.Itoa(int(c.index))
	case KindRGB, KindHSL, KindHSV, KindCMYK:
		r, g, b := c.RGB8()
		return fmt.Sprintf("8;2;%d;%d;%d", r, g, b)
	}
	return ""
}

// FG returns the SGR fragment selecting the color as the foreground,
// or "" for an unset color.
func (c Color) FG() string {
	if !c.IsSet() {
		return ""
	}
	return "3" + c.fragment()
}

// BG returns the SGR fragment selecting the color as the background,
// or "" for an unset color.
func (c Color) BG() string {
	if !c.IsSet() {
		return ""
	}
	return "4" + c.fragment()
}

// ResetFG returns the fragment restoring the default foreground.
func (c Color) ResetFG() string {
	return "39"
}

// ResetBG returns the fragment restoring the default background.
func (c Color) ResetBG() string {
	return "49"
}

// String returns a readable representation for logs and test failures.
func (c Color) String() string {
	switch c.kind {
	case KindUnset:
		return "default"
	case KindNamed:
		return namedNames[c.named]
	case KindPalette:
		return fmt.Sprintf("palette(%d)", c.index)
	case KindHSL:
		return fmt.Sprintf("hsl(%d, %g, %g)", c.hue, c.comps[0], c.comps[1])
	case KindHSV:
		return fmt.Sprintf("hsv(%d, %g, %g)", c.hue, c.comps[0], c.comps[1])
	case KindCMYK:
		return fmt.Sprintf("cmyk(%g, %g, %g, %g)", c.comps[0], c.comps[1], c.comps[2], c.comps[3])
	}
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

var namedNames = [8]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}
