package buffer

import (
	"fmt"
	"strings"

	"github.com/dshills/inkwell/internal/style"
)

// Render serializes the grid, emitting escape sequences only at style
// transitions. It tracks the active style across cells and lines: when
// a cell's resolved style differs, the active style's reset sequence is
// emitted followed by the new style's activate sequence. A final reset
// after the last line guarantees no styling leaks past the buffer.
// Lines are joined with a single line break.
//
// The comparison is over resolved style values, so runs of one style
// never re-emit sequences and a styled cell equal to the default forces
// no transition.
func (g *Grid) Render() (string, error) {
	var sb strings.Builder
	var current style.Style

	for i, line := range g.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for col, cell := range line {
			next := style.Style{}
			if !cell.Style.IsZero() {
				resolved, err := g.styles.Resolve(cell.Style)
				if err != nil {
					return "", fmt.Errorf("render cell %d:%d: %w", i, col, err)
				}
				next = resolved
			}
			if next != current {
				sb.WriteString(current.ResetSequence())
				sb.WriteString(next.Sequence())
				current = next
			}
			sb.WriteRune(cell.Rune)
		}
	}
	sb.WriteString(current.ResetSequence())

	return sb.String(), nil
}

// Walk visits every cell in order with its resolved style. It exists
// for presentation layers that paint cells individually instead of
// consuming the rendered stream.
func (g *Grid) Walk(fn func(line, col int, r rune, s style.Style) error) error {
	for i, line := range g.lines {
		for col, cell := range line {
			resolved := style.Style{}
			if !cell.Style.IsZero() {
				s, err := g.styles.Resolve(cell.Style)
				if err != nil {
					return fmt.Errorf("walk cell %d:%d: %w", i, col, err)
				}
				resolved = s
			}
			if err := fn(i, col, cell.Rune, resolved); err != nil {
				return err
			}
		}
	}
	return nil
}
