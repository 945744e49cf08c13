package buffer

import (
	"strings"
	"testing"

	"github.com/dshills/inkwell/internal/style"
)

func TestRenderPlainRoundTrip(t *testing.T) {
	g := New()
	g.Append("Hello\nWorld")
	g.Append("!\nand more")

	out, err := g.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "Hello\nWorld!\nand more"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
	if strings.Contains(out, "\x1b") {
		t.Error("plain grid should render no escape sequences")
	}
}

func TestRenderEmptyGrid(t *testing.T) {
	out, err := New().Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestRenderTransitionsAtBoundaries(t *testing.T) {
	g := New()
	boldRed := style.Style{}.Bold().WithFG(style.Red)
	g.AppendStyled(boldRed, "Hi")
	g.Append("!")

	out, err := g.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	// One transition into the style, one out at the styled->unstyled
	// boundary, and a trailing reset of the (default) final style.
	want := "\x1b[1;31mHi\x1b[39;22m!"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestRenderSingleRunEmitsOnce(t *testing.T) {
	g := New()
	g.AppendStyled(style.Style{}.Underline(), "aaaa")

	out, err := g.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "\x1b[4maaaa\x1b[24m"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
	if strings.Count(out, "\x1b[4m") != 1 {
		t.Error("a run of one style must emit its sequence exactly once")
	}
}

func TestRenderStyleSpansLines(t *testing.T) {
	g := New()
	g.AppendStyled(style.Style{}.Bold(), "ab\ncd")

	out, err := g.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	// The style stays active across the break; no re-emission.
	want := "\x1b[1mab\ncd\x1b[22m"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestRenderAdjacentStyles(t *testing.T) {
	g := New()
	g.AppendStyled(style.Style{}.WithFG(style.Red), "r")
	g.AppendStyled(style.Style{}.WithFG(style.Blue), "b")

	out, err := g.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "\x1b[31mr\x1b[39m\x1b[34mb\x1b[39m"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestRenderInternedDefaultStyleForcesNoTransition(t *testing.T) {
	g := New()
	g.Append("a")
	g.AppendStyled(style.Style{}, "b")
	g.Append("c")

	out, err := g.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "abc" {
		t.Errorf("expected %q, got %q", "abc", out)
	}
}

func TestRenderHyperlinkSpan(t *testing.T) {
	g := New()
	link := style.Style{}.WithLink("https://example.com")
	g.AppendStyled(link, "docs")
	g.Append(".")

	out, err := g.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "\x1b]8;;https://example.com\x1b\\docs\x1b]8;;\x1b\\."
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestRenderAfterReplace(t *testing.T) {
	g := New()
	g.AppendStyled(style.Style{}.Bold(), "bold")
	g.Append(" tail")

	if err := g.Replace(Range{0, 1}, Range{0, 4}, "cold"); err != nil {
		t.Fatalf("replace: %v", err)
	}

	out, err := g.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "cold tail" {
		t.Errorf("expected %q, got %q", "cold tail", out)
	}
}

func TestWalkVisitsResolvedStyles(t *testing.T) {
	g := New()
	bold := style.Style{}.Bold()
	g.AppendStyled(bold, "a")
	g.Append("b\nc")

	type visit struct {
		line, col int
		r         rune
		styled    bool
	}
	var visits []visit
	err := g.Walk(func(line, col int, r rune, s style.Style) error {
		visits = append(visits, visit{line, col, r, !s.IsZero()})
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}

	want := []visit{
		{0, 0, 'a', true},
		{0, 1, 'b', false},
		{1, 0, 'c', false},
	}
	if len(visits) != len(want) {
		t.Fatalf("expected %d visits, got %d", len(want), len(visits))
	}
	for i, v := range visits {
		if v != want[i] {
			t.Errorf("visit %d: expected %v, got %v", i, want[i], v)
		}
	}
}
