// Package screen draws styled grids onto a tcell screen.
package screen

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inkwell/internal/buffer"
	"github.com/dshills/inkwell/internal/style"
)

// Draw paints the grid onto the screen starting at the top-left
// corner. Content outside the screen bounds is skipped. The caller is
// responsible for calling Show.
func Draw(s tcell.Screen, g *buffer.Grid) error {
	return DrawAt(s, g, 0, 0)
}

// DrawAt paints the grid with its top-left cell at (x, y).
func DrawAt(s tcell.Screen, g *buffer.Grid, x, y int) error {
	width, height := s.Size()
	err := g.Walk(func(line, col int, r rune, st style.Style) error {
		cx, cy := x+col, y+line
		if cx < 0 || cy < 0 || cx >= width || cy >= height {
			return nil
		}
		s.SetContent(cx, cy, r, nil, ConvertStyle(st))
		return nil
	})
	if err != nil {
		return fmt.Errorf("drawing grid: %w", err)
	}
	return nil
}

// ConvertStyle maps a style to its tcell equivalent. Named and
// palette colors stay indexed so the terminal's own palette applies;
// computed colors reduce to 8-bit RGB.
func ConvertStyle(st style.Style) tcell.Style {
	ts := tcell.StyleDefault

	if st.FG.IsSet() {
		ts = ts.Foreground(convertColor(st.FG))
	}
	if st.BG.IsSet() {
		ts = ts.Background(convertColor(st.BG))
	}

	if st.Flags.Has(style.FlagBold) {
		ts = ts.Bold(true)
	}
	if st.Flags.Has(style.FlagItalic) {
		ts = ts.Italic(true)
	}
	if st.Flags.Has(style.FlagUnderline) {
		ts = ts.Underline(true)
	}
	if st.Flags.Has(style.FlagStrikethrough) {
		ts = ts.StrikeThrough(true)
	}
	if st.Flags.Has(style.FlagBlink) {
		ts = ts.Blink(true)
	}
	if st.Flags.Has(style.FlagReversed) {
		ts = ts.Reverse(true)
	}

	if st.Link != "" {
		ts = ts.Url(st.Link)
	}
	return ts
}

func convertColor(c style.Color) tcell.Color {
	switch c.Kind() {
	case style.KindNamed:
		return tcell.PaletteColor(int(c.System()))
	case style.KindPalette:
		return tcell.PaletteColor(int(c.Index()))
	default:
		r, g, b := c.RGB8()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
}
