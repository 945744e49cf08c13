package buffer

import (
	"fmt"

	"github.com/dshills/inkwell/internal/style"
)

// Cell is one character position in the grid. A zero Style key means
// the cell is unstyled: the renderer resets to the default state before
// printing it.
type Cell struct {
	Style StyleKey
	Rune  rune
}

// Range addresses lines or columns with an inclusive start and an
// exclusive end.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indexes the range spans.
func (r Range) Len() int {
	return r.End - r.Start
}

// Grid is an ordered sequence of lines of cells with an exclusively
// owned style table. A new grid has a single empty line; line breaks in
// appended text create lines implicitly. Line and column indexes are
// 0-based.
type Grid struct {
	lines  [][]Cell
	styles *StyleTable
}

// New creates an empty grid.
func New() *Grid {
	return &Grid{
		lines:  [][]Cell{nil},
		styles: NewStyleTable(),
	}
}

// Append writes unstyled text, splitting on line breaks.
func (g *Grid) Append(text string) {
	g.append(StyleKey{}, text)
}

// AppendStyled writes text with every cell referencing the given style.
// The style is interned once per call; additional cells retain the same
// entry so the refcount tracks live cells exactly. Empty text leaves
// both the grid and the style table untouched.
func (g *Grid) AppendStyled(s style.Style, text string) {
	if text == "" {
		return
	}
	g.append(g.styles.Intern(s), text)
}

func (g *Grid) append(key StyleKey, text string) {
	wrote := false
	last := len(g.lines) - 1
	for _, r := range text {
		if r == '\n' {
			g.lines = append(g.lines, nil)
			last++
			continue
		}
		if !key.IsZero() {
			if wrote {
				// First cell consumes the Intern increment.
				_ = g.styles.Retain(key)
			}
			wrote = true
		}
		g.lines[last] = append(g.lines[last], Cell{Style: key, Rune: r})
	}
	if !key.IsZero() && !wrote {
		// Text was line breaks only: no cell took the reference.
		_ = g.styles.Release(key)
	}
}

// Lines returns the current line count.
func (g *Grid) Lines() int {
	return len(g.lines)
}

// LineLen returns the cell count of a line, or -1 for a bad index.
func (g *Grid) LineLen(i int) int {
	if i < 0 || i >= len(g.lines) {
		return -1
	}
	return len(g.lines[i])
}

// Line returns the characters of a line as a plain string.
func (g *Grid) Line(i int) string {
	if i < 0 || i >= len(g.lines) {
		return ""
	}
	runes := make([]rune, len(g.lines[i]))
	for j, c := range g.lines[i] {
		runes[j] = c.Rune
	}
	return string(runes)
}

// StyleCount returns the number of live interned styles.
func (g *Grid) StyleCount() int {
	return g.styles.Len()
}

// StyleAt resolves the style of the cell at (line, col). An unstyled
// cell yields the zero style.
func (g *Grid) StyleAt(line, col int) (style.Style, error) {
	if line < 0 || line >= len(g.lines) || col < 0 || col >= len(g.lines[line]) {
		return style.Style{}, fmt.Errorf("cell %d:%d: %w", line, col, ErrOutOfBounds)
	}
	key := g.lines[line][col].Style
	if key.IsZero() {
		return style.Style{}, nil
	}
	return g.styles.Resolve(key)
}

// Replace substitutes the region spanned by the line range and, at its
// edges, the column range with unstyled cells derived from text.
//
// The removed region runs from (lines.Start, cols.Start) to the column
// end on the last affected line: a single-line range removes
// [cols.Start, cols.End) of that line; a multi-line range removes the
// first line's tail from cols.Start, every intermediate line, and the
// last line's head up to cols.End. A zero-length line range removes
// nothing and inserts at (lines.Start, cols.Start).
//
// Validation happens before any mutation, so a failed replace leaves
// the grid unchanged. Styles referenced by removed cells are released
// before the splice commits.
func (g *Grid) Replace(lines, cols Range, text string) error {
	if lines.Start > lines.End {
		return fmt.Errorf("line range %d..%d: %w", lines.Start, lines.End, ErrInvalidRange)
	}
	if cols.Start > cols.End {
		return fmt.Errorf("column range %d..%d: %w", cols.Start, cols.End, ErrInvalidRange)
	}
	if lines.Start < 0 || lines.Start >= len(g.lines) || lines.End > len(g.lines) {
		return fmt.Errorf("line range %d..%d of %d lines: %w", lines.Start, lines.End, len(g.lines), ErrOutOfBounds)
	}

	first := lines.Start
	last := first
	if lines.Len() > 1 {
		last = lines.End - 1
	}

	firstLine := g.lines[first]
	lastLine := g.lines[last]

	if cols.Start < 0 || cols.Start > len(firstLine) {
		return fmt.Errorf("column %d of %d-cell line %d: %w", cols.Start, len(firstLine), first, ErrOutOfBounds)
	}

	// Where the retained suffix begins on the last affected line.
	suffixStart := cols.Start
	if lines.Len() > 0 {
		suffixStart = cols.End
		if cols.End > len(lastLine) {
			return fmt.Errorf("column %d of %d-cell line %d: %w", cols.End, len(lastLine), last, ErrOutOfBounds)
		}
	}

	prefix := firstLine[:cols.Start]
	suffix := lastLine[suffixStart:]

	// Release every styled cell leaving the grid.
	release := func(cells []Cell) error {
		for _, c := range cells {
			if c.Style.IsZero() {
				continue
			}
			if err := g.styles.Release(c.Style); err != nil {
				return fmt.Errorf("replace: %w", err)
			}
		}
		return nil
	}
	if lines.Len() <= 1 {
		if err := release(firstLine[cols.Start:suffixStart]); err != nil {
			return err
		}
	} else {
		if err := release(firstLine[cols.Start:]); err != nil {
			return err
		}
		for i := first + 1; i < last; i++ {
			if err := release(g.lines[i]); err != nil {
				return err
			}
		}
		if err := release(lastLine[:suffixStart]); err != nil {
			return err
		}
	}

	// Compose the replacement lines from the text.
	inserted := [][]Cell{nil}
	for _, r := range text {
		if r == '\n' {
			inserted = append(inserted, nil)
			continue
		}
		inserted[len(inserted)-1] = append(inserted[len(inserted)-1], Cell{Rune: r})
	}

	// Splice: prefix joins the first inserted line, suffix joins the
	// last. A break-free text collapses the edit to a single line.
	spliced := make([][]Cell, 0, len(inserted))
	head := append(append([]Cell{}, prefix...), inserted[0]...)
	if len(inserted) == 1 {
		spliced = append(spliced, append(head, suffix...))
	} else {
		spliced = append(spliced, head)
		spliced = append(spliced, inserted[1:len(inserted)-1]...)
		spliced = append(spliced, append(inserted[len(inserted)-1], suffix...))
	}

	replaced := last - first + 1
	rebuilt := make([][]Cell, 0, len(g.lines)-replaced+len(spliced))
	rebuilt = append(rebuilt, g.lines[:first]...)
	rebuilt = append(rebuilt, spliced...)
	rebuilt = append(rebuilt, g.lines[last+1:]...)
	g.lines = rebuilt

	return nil
}

// Clone returns a deep copy of the grid with its own style table.
func (g *Grid) Clone() *Grid {
	out := New()
	keys := make(map[StyleKey]StyleKey)
	out.lines = make([][]Cell, len(g.lines))
	for i, line := range g.lines {
		if line == nil {
			continue
		}
		out.lines[i] = make([]Cell, len(line))
		for j, c := range line {
			key := StyleKey{}
			if !c.Style.IsZero() {
				mapped, ok := keys[c.Style]
				if ok {
					_ = out.styles.Retain(mapped)
				} else {
					// Resolve against the source table; a miss would be
					// a broken invariant, in which case the clone drops
					// the style rather than inventing one.
					if s, err := g.styles.Resolve(c.Style); err == nil {
						mapped = out.styles.Intern(s)
						keys[c.Style] = mapped
						ok = true
					}
				}
				if ok {
					key = mapped
				}
			}
			out.lines[i][j] = Cell{Style: key, Rune: c.Rune}
		}
	}
	return out
}
