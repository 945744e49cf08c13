package style

import "strings"

const (
	csi           = "\x1b["
	linkClose     = "\x1b]8;;\x1b\\"
	linkOpenStart = "\x1b]8;;"
	linkOpenEnd   = "\x1b\\"
)

// LinkOpen returns the OSC-8 fragment opening a hyperlink span.
func LinkOpen(url string) string {
	return linkOpenStart + url + linkOpenEnd
}

// LinkClose returns the OSC-8 fragment closing a hyperlink span.
func LinkClose() string {
	return linkClose
}

// Style aggregates emphasis flags, optional foreground and background
// colors, and an optional hyperlink target. The zero value is the
// default (unstyled) state and produces empty sequences. Styles are
// comparable values; two styles are equal iff all four fields are equal.
type Style struct {
	Flags Flag
	FG    Color
	BG    Color
	Link  string
}

// IsZero reports whether the style is the default state.
func (s Style) IsZero() bool {
	return s == Style{}
}

// WithFG returns the style with the given foreground color.
func (s Style) WithFG(c Color) Style {
	s.FG = c
	return s
}

// WithBG returns the style with the given background color.
func (s Style) WithBG(c Color) Style {
	s.BG = c
	return s
}

// WithLink returns the style with the given hyperlink target.
func (s Style) WithLink(url string) Style {
	s.Link = url
	return s
}

// WithFlags returns the style with the given flags added.
func (s Style) WithFlags(f Flag) Style {
	s.Flags |= f
	return s
}

// Bold returns the style with the bold attribute added.
func (s Style) Bold() Style {
	s.Flags |= FlagBold
	return s
}

// Italic returns the style with the italic attribute added.
func (s Style) Italic() Style {
	s.Flags |= FlagItalic
	return s
}

// Underline returns the style with the underline attribute added.
func (s Style) Underline() Style {
	s.Flags |= FlagUnderline
	return s
}

// Strikethrough returns the style with the strikethrough attribute added.
func (s Style) Strikethrough() Style {
	s.Flags |= FlagStrikethrough
	return s
}

// Blink returns the style with the blink attribute added.
func (s Style) Blink() Style {
	s.Flags |= FlagBlink
	return s
}

// Reversed returns the style with the reverse-video attribute added.
func (s Style) Reversed() Style {
	s.Flags |= FlagReversed
	return s
}

// Reset returns the style with the universal-reset meta attribute added.
func (s Style) Reset() Style {
	s.Flags |= FlagReset
	return s
}

// codes joins the SGR set codes: flags first, then foreground, then
// background. Empty categories are omitted entirely.
func (s Style) codes() string {
	var codes []string
	codes = append(codes, s.Flags.Codes()...)
	if fg := s.FG.FG(); fg != "" {
		codes = append(codes, fg)
	}
	if bg := s.BG.BG(); bg != "" {
		codes = append(codes, bg)
	}
	return strings.Join(codes, ";")
}

// Sequence returns the escape sequence activating the style: the
// hyperlink open fragment (if linked) followed by the SGR sequence.
// The zero style returns "". A hyperlink with no SGR content still
// produces its open fragment; the SGR and OSC-8 channels are independent.
func (s Style) Sequence() string {
	codes := s.codes()

	var sb strings.Builder
	if s.Link != "" {
		sb.WriteString(LinkOpen(s.Link))
	}
	if codes != "" {
		sb.WriteString(csi)
		sb.WriteString(codes)
		sb.WriteString("m")
	}
	return sb.String()
}

// ResetSequence returns the escape sequence deactivating the style.
// With FlagReset present the SGR portion is the universal reset ESC[0m,
// ignoring the per-field fragments; otherwise the foreground, background,
// and flag resets are joined in order inside one sequence. Either form is
// followed by the hyperlink close fragment if the style is linked.
func (s Style) ResetSequence() string {
	var codes string
	if s.Flags.Has(FlagReset) {
		codes = "0"
	} else {
		var parts []string
		if s.FG.IsSet() {
			parts = append(parts, s.FG.ResetFG())
		}
		if s.BG.IsSet() {
			parts = append(parts, s.BG.ResetBG())
		}
		parts = append(parts, s.Flags.ResetCodes()...)
		codes = strings.Join(parts, ";")
	}

	var sb strings.Builder
	if codes != "" {
		sb.WriteString(csi)
		sb.WriteString(codes)
		sb.WriteString("m")
	}
	if s.Link != "" {
		sb.WriteString(linkClose)
	}
	return sb.String()
}
