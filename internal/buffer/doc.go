// Package buffer provides a styled terminal text buffer: a line/column
// addressed grid of cells whose styled spans share interned styles, and
// a renderer that serializes the grid into a minimal escape-sequence
// stream.
//
// Styles are interned in a reference-counted table owned by the grid.
// Cells reference styles through opaque generation-checked handles, so
// "does this key still exist" is an array bound check rather than a hash
// lookup, and a stale handle is detected instead of silently resolving
// to a recycled entry.
//
// The grid is single-owner: no operation blocks, yields, or performs
// I/O, and concurrent mutation is the caller's responsibility to avoid.
//
// Usage:
//
//	g := buffer.New()
//	g.AppendStyled(style.Style{}.Bold().WithFG(style.Red), "Hi")
//	g.Append("!\nplain second line")
//	out, err := g.Render()
package buffer
