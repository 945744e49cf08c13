// Package main is the entry point for the inkwell style preview tool.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/inkwell/internal/buffer"
	"github.com/dshills/inkwell/internal/profile"
	"github.com/dshills/inkwell/internal/style"
	"github.com/dshills/inkwell/internal/termcap"
	"github.com/dshills/inkwell/internal/theme"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	ThemePath string
	Color     string
	List      bool
	Watch     bool
	Text      string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	caps, err := capabilities(opts.Color)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var th *theme.Theme
	if opts.ThemePath != "" {
		th, err = theme.Load(opts.ThemePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if opts.List {
		if th == nil {
			fmt.Fprintln(os.Stderr, "Error: -list requires -theme")
			return 1
		}
		for _, name := range th.Names() {
			fmt.Println(name)
		}
		return 0
	}

	if err := preview(th, caps, opts.Text); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.Watch {
		if th == nil {
			fmt.Fprintln(os.Stderr, "Error: -watch requires -theme")
			return 1
		}
		return watch(opts, caps)
	}
	return 0
}

// watch re-renders the preview each time the theme file changes on
// disk, until interrupted.
func watch(opts options, caps termcap.Capabilities) int {
	w, err := theme.Watch(opts.ThemePath, func(th *theme.Theme) {
		fmt.Println()
		if err := preview(th, caps, opts.Text); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}, func(err error) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer w.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals
	return 0
}

// preview renders one line per theme style, each showing the style
// name followed by the sample text. With no theme it renders a
// built-in attribute and color sampler instead.
func preview(th *theme.Theme, caps termcap.Capabilities, text string) error {
	g := buffer.New()

	if th != nil {
		for i, name := range th.Names() {
			if i > 0 {
				g.Append("\n")
			}
			st, _ := th.Style(name)
			g.Append(name + "  ")
			g.AppendStyled(profile.Apply(st, caps), text)
		}
	} else {
		sampler(g, caps, text)
	}

	out, err := g.Render()
	if err != nil {
		return fmt.Errorf("rendering preview: %w", err)
	}
	fmt.Println(out)
	return nil
}

func sampler(g *buffer.Grid, caps termcap.Capabilities, text string) {
	samples := []struct {
		label string
		style style.Style
	}{
		{"bold", style.Style{}.Bold()},
		{"italic", style.Style{}.Italic()},
		{"underline", style.Style{}.Underline()},
		{"red", style.Style{}.WithFG(style.Red)},
		{"palette 208", style.Style{}.WithFG(style.Palette(208))},
		{"truecolor", style.Style{}.WithFG(style.RGB(0x87, 0x5f, 0xd7))},
		{"reversed", style.Style{}.Reversed()},
	}
	for i, s := range samples {
		if i > 0 {
			g.Append("\n")
		}
		g.Append(fmt.Sprintf("%-14s", s.label))
		g.AppendStyled(profile.Apply(s.style, caps), text)
	}
}

// capabilities resolves the -color flag, falling back to environment
// detection for "auto".
func capabilities(mode string) (termcap.Capabilities, error) {
	switch mode {
	case "auto":
		return termcap.DetectEnv(), nil
	case "none":
		return termcap.Capabilities{ANSI: true, Color: termcap.SupportNone}, nil
	case "16":
		return termcap.Capabilities{ANSI: true, Color: termcap.SupportStandard}, nil
	case "256":
		return termcap.Capabilities{ANSI: true, Color: termcap.SupportEightBit}, nil
	case "truecolor":
		return termcap.Capabilities{ANSI: true, Color: termcap.SupportTrueColor}, nil
	case "off":
		return termcap.Capabilities{}, nil
	default:
		return termcap.Capabilities{}, fmt.Errorf("invalid color mode %q (must be auto, off, none, 16, 256, or truecolor)", mode)
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ThemePath, "theme", "", "Path to theme file (.toml, .yaml, .yml)")
	flag.StringVar(&opts.ThemePath, "t", "", "Path to theme file (shorthand)")
	flag.StringVar(&opts.Color, "color", "auto", "Color mode (auto, off, none, 16, 256, truecolor)")
	flag.BoolVar(&opts.List, "list", false, "List the theme's style names and exit")
	flag.BoolVar(&opts.Watch, "watch", false, "Re-render when the theme file changes")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Inkwell - terminal style preview\n\n")
		fmt.Fprintf(os.Stderr, "Usage: inkwell [options] [sample text]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  inkwell                          Render the built-in sampler\n")
		fmt.Fprintf(os.Stderr, "  inkwell -t dusk.toml             Preview a theme\n")
		fmt.Fprintf(os.Stderr, "  inkwell -t dusk.toml -watch      Re-render on theme edits\n")
		fmt.Fprintf(os.Stderr, "  inkwell -color 16 \"Hello\"        Force 16-color output\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Inkwell %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	opts.Text = "The quick brown fox"
	if flag.NArg() > 0 {
		opts.Text = flag.Arg(0)
	}

	return opts
}
