package profile

import (
	"testing"

	"github.com/dshills/inkwell/internal/style"
	"github.com/dshills/inkwell/internal/termcap"
)

func TestDowngradeTrueColorPassesThrough(t *testing.T) {
	c := style.RGB(244, 63, 94)
	if got := Downgrade(c, termcap.SupportTrueColor); got != c {
		t.Errorf("truecolor support should pass colors through, got %v", got)
	}
}

func TestDowngradeUnsetStaysUnset(t *testing.T) {
	var c style.Color
	for _, s := range []termcap.Support{
		termcap.SupportNone, termcap.SupportStandard,
		termcap.SupportEightBit, termcap.SupportTrueColor,
	} {
		if got := Downgrade(c, s); got.IsSet() {
			t.Errorf("unset color at %v: expected unset, got %v", s, got)
		}
	}
}

func TestDowngradeToEightBit(t *testing.T) {
	// Exact palette values map to themselves.
	tests := []struct {
		name string
		in   style.Color
		want style.Color
	}{
		{"pure red hits bright red", style.RGB(255, 0, 0), style.Palette(9)},
		{"pure white", style.RGB(255, 255, 255), style.Palette(15)},
		{"gray ramp value", style.RGB(8, 8, 8), style.Palette(232)},
		{"palette passes through", style.Palette(42), style.Palette(42)},
		{"named passes through", style.Red, style.Red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Downgrade(tt.in, termcap.SupportEightBit)
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDowngradeToStandard(t *testing.T) {
	tests := []struct {
		name string
		in   style.Color
		want style.Color
	}{
		{"named passes through", style.Magenta, style.Magenta},
		{"low palette folds to named", style.Palette(1), style.Red},
		{"bright red folds to red", style.RGB(255, 0, 0), style.Red},
		{"dark red stays red", style.RGB(128, 0, 0), style.Red},
		{"white", style.RGB(255, 255, 255), style.White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Downgrade(tt.in, termcap.SupportStandard)
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDowngradeToNone(t *testing.T) {
	if got := Downgrade(style.RGB(10, 20, 30), termcap.SupportNone); got.IsSet() {
		t.Errorf("no color support should unset the color, got %v", got)
	}
}

func TestApply(t *testing.T) {
	s := style.Style{}.Bold().
		WithFG(style.RGB(255, 0, 0)).
		WithBG(style.RGB(255, 255, 255)).
		WithLink("https://example.com")

	// No ANSI at all strips everything.
	if got := Apply(s, termcap.Capabilities{}); !got.IsZero() {
		t.Errorf("expected stripped style, got %+v", got)
	}

	// Monochrome keeps flags and link, drops colors.
	got := Apply(s, termcap.Capabilities{ANSI: true, Color: termcap.SupportNone})
	if got.FG.IsSet() || got.BG.IsSet() {
		t.Errorf("expected colors dropped, got %+v", got)
	}
	if !got.Flags.Has(style.FlagBold) || got.Link != "https://example.com" {
		t.Errorf("flags and link should survive monochrome, got %+v", got)
	}

	// Truecolor passes through untouched.
	if got := Apply(s, termcap.Capabilities{ANSI: true, Color: termcap.SupportTrueColor}); got != s {
		t.Errorf("expected unchanged style, got %+v", got)
	}
}
