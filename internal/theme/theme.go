// Package theme loads named style sets from TOML or YAML files.
//
// A theme file maps style names to color literals and attribute lists:
//
//	name = "dusk"
//
//	[styles.error]
//	fg = "#f43f5e"
//	attrs = ["bold"]
//
//	[styles.link]
//	fg = "blue"
//	link = "https://example.com/help"
//
// Color literals use the grammar of the style package's Parse: named
// colors, palette indexes, hex, and rgb/hsl/hsv/cmyk function forms.
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/inkwell/internal/style"
)

// ErrUnknownFormat indicates a theme file extension that is neither
// TOML nor YAML.
var ErrUnknownFormat = errors.New("unknown theme format")

// Format selects the wire format of a theme document.
type Format int

// Supported theme document formats.
const (
	FormatTOML Format = iota
	FormatYAML
)

// Theme is a named set of styles.
type Theme struct {
	Name   string
	styles map[string]style.Style
}

// Style returns the named style and whether it exists.
func (t *Theme) Style(name string) (style.Style, bool) {
	s, ok := t.styles[name]
	return s, ok
}

// Names returns the style names in sorted order.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of styles in the theme.
func (t *Theme) Len() int {
	return len(t.styles)
}

// fileTheme mirrors the theme document layout in both formats.
type fileTheme struct {
	Name   string               `toml:"name" yaml:"name"`
	Styles map[string]fileStyle `toml:"styles" yaml:"styles"`
}

type fileStyle struct {
	FG    string   `toml:"fg" yaml:"fg"`
	BG    string   `toml:"bg" yaml:"bg"`
	Attrs []string `toml:"attrs" yaml:"attrs"`
	Link  string   `toml:"link" yaml:"link"`
}

var attrFlags = map[string]style.Flag{
	"bold":          style.FlagBold,
	"italic":        style.FlagItalic,
	"underline":     style.FlagUnderline,
	"strikethrough": style.FlagStrikethrough,
	"blink":         style.FlagBlink,
	"reversed":      style.FlagReversed,
	"reset":         style.FlagReset,
}

// Load reads a theme file, choosing the format by extension
// (.toml, .yaml, .yml).
func Load(path string) (*Theme, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = FormatTOML
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, fmt.Errorf("theme file %s: %w", path, ErrUnknownFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file %s: %w", path, err)
	}
	t, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("theme file %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a theme document.
func Parse(data []byte, format Format) (*Theme, error) {
	var raw fileTheme
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing theme: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing theme: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}

	t := &Theme{
		Name:   raw.Name,
		styles: make(map[string]style.Style, len(raw.Styles)),
	}
	for name, entry := range raw.Styles {
		s, err := buildStyle(entry)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		t.styles[name] = s
	}
	return t, nil
}

func buildStyle(entry fileStyle) (style.Style, error) {
	var s style.Style

	if entry.FG != "" {
		c, err := style.Parse(entry.FG)
		if err != nil {
			return style.Style{}, fmt.Errorf("fg: %w", err)
		}
		s.FG = c
	}
	if entry.BG != "" {
		c, err := style.Parse(entry.BG)
		if err != nil {
			return style.Style{}, fmt.Errorf("bg: %w", err)
		}
		s.BG = c
	}
	for _, attr := range entry.Attrs {
		flag, ok := attrFlags[strings.ToLower(attr)]
		if !ok {
			return style.Style{}, fmt.Errorf("unknown attribute %q", attr)
		}
		s.Flags |= flag
	}
	s.Link = entry.Link
	return s, nil
}
