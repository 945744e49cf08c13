// Package termcap describes terminal rendering capabilities as an
// explicit value. Detection reads the environment once; nothing here is
// a process-wide global, so callers thread the descriptor to whatever
// layer downgrades colors before styling.
package termcap

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Support is the color depth a terminal advertises.
type Support int

// Color support levels, weakest first.
const (
	SupportNone Support = iota
	SupportStandard
	SupportEightBit
	SupportTrueColor
)

// String returns the support level name.
func (s Support) String() string {
	switch s {
	case SupportNone:
		return "none"
	case SupportStandard:
		return "standard"
	case SupportEightBit:
		return "8-bit"
	case SupportTrueColor:
		return "truecolor"
	default:
		return "unknown"
	}
}

// Capabilities is a read-only descriptor of what the terminal accepts.
type Capabilities struct {
	// ANSI reports whether escape sequences are understood at all.
	ANSI bool

	// Color is the advertised color depth.
	Color Support
}

// Detect derives capabilities from environment variables. The getenv
// function is injected so callers and tests control the environment;
// isTTY is whether the output destination is a terminal.
//
// COLORTERM=truecolor/24bit wins; TERM containing 256color advertises
// the 8-bit palette; TERM=dumb, an empty TERM, or a non-terminal
// destination disables sequences entirely. NO_COLOR suppresses color
// while leaving non-color sequences available.
func Detect(getenv func(string) string, isTTY bool) Capabilities {
	termType := getenv("TERM")
	if !isTTY || termType == "" || termType == "dumb" {
		return Capabilities{}
	}

	caps := Capabilities{ANSI: true, Color: SupportStandard}

	switch getenv("COLORTERM") {
	case "truecolor", "24bit":
		caps.Color = SupportTrueColor
	default:
		if strings.Contains(termType, "256color") {
			caps.Color = SupportEightBit
		}
	}

	if getenv("NO_COLOR") != "" {
		caps.Color = SupportNone
	}
	return caps
}

// DetectEnv detects capabilities for the current process, treating
// stdout as the output destination.
func DetectEnv() Capabilities {
	return Detect(os.Getenv, term.IsTerminal(int(os.Stdout.Fd())))
}
