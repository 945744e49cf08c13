// Package profile downgrades colors to what a terminal can display.
// The buffer core renders whatever colors it is given; this layer sits
// above it and quantizes truecolor values to the xterm-256 palette or
// the 16 system colors using perceptual (CIE-Lab) distance.
package profile

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/inkwell/internal/style"
	"github.com/dshills/inkwell/internal/termcap"
)

// paletteLab caches the Lab coordinates of the 256 xterm palette
// entries for nearest-match lookups.
var paletteLab [256]colorful.Color

func init() {
	for i := range paletteLab {
		r, g, b := style.Palette(uint8(i)).RGB8()
		paletteLab[i] = colorful.Color{
			R: float64(r) / 255,
			G: float64(g) / 255,
			B: float64(b) / 255,
		}
	}
}

// nearest returns the palette index in [0, limit) closest to the color.
func nearest(c style.Color, limit int) uint8 {
	r, g, b := c.RGB8()
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}

	best := 0
	bestDist := target.DistanceLab(paletteLab[0])
	for i := 1; i < limit; i++ {
		if d := target.DistanceLab(paletteLab[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return uint8(best)
}

// Downgrade maps a color onto the given support level. Colors already
// expressible at that level pass through unchanged; richer colors map
// to their perceptually nearest representable value. With no color
// support the result is the unset color.
func Downgrade(c style.Color, s termcap.Support) style.Color {
	if !c.IsSet() || s == termcap.SupportTrueColor {
		return c
	}

	switch s {
	case termcap.SupportEightBit:
		switch c.Kind() {
		case style.KindNamed, style.KindPalette:
			return c
		}
		return style.Palette(nearest(c, 256))

	case termcap.SupportStandard:
		switch c.Kind() {
		case style.KindNamed:
			return c
		case style.KindPalette:
			if c.Index() < 8 {
				n, _ := style.Named(c.Index())
				return n
			}
		}
		// The bright half of the 16 base entries folds onto the eight
		// named colors.
		n, _ := style.Named(nearest(c, 16) % 8)
		return n
	}

	return style.Color{}
}

// Apply downgrades a style's colors for the given capabilities. When
// the terminal understands no escape sequences at all the style is
// stripped entirely, hyperlink included.
func Apply(s style.Style, caps termcap.Capabilities) style.Style {
	if !caps.ANSI {
		return style.Style{}
	}
	s.FG = Downgrade(s.FG, caps.Color)
	s.BG = Downgrade(s.BG, caps.Color)
	return s
}
