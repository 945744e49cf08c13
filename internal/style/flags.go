package style

// Flag is a bitset of text emphasis attributes.
type Flag uint16

// Emphasis attribute flags. FlagReset is a meta-attribute: when present,
// the reset codes collapse to the single universal reset.
const (
	FlagNone          Flag = 0
	FlagBold          Flag = 1 << iota
	FlagItalic
	FlagUnderline
	FlagStrikethrough
	FlagBlink
	FlagReversed
	FlagReset
)

// sgrCode pairs an attribute with its set and reset SGR codes,
// in canonical emission order.
var sgrCodes = []struct {
	flag  Flag
	set   string
	reset string
}{
	{FlagBold, "1", "22"},
	{FlagItalic, "3", "23"},
	{FlagUnderline, "4", "24"},
	{FlagStrikethrough, "9", "29"},
	{FlagBlink, "5", "25"},
	{FlagReversed, "7", "27"},
}

// Has reports whether every bit of attr is present.
func (f Flag) Has(attr Flag) bool {
	return f&attr == attr
}

// With returns the flag set with attr added.
func (f Flag) With(attr Flag) Flag {
	return f | attr
}

// Without returns the flag set with attr removed.
func (f Flag) Without(attr Flag) Flag {
	return f &^ attr
}

// Codes returns the SGR set codes for every present attribute in
// canonical order: bold, italic, underline, strikethrough, blink, reversed.
func (f Flag) Codes() []string {
	var codes []string
	for _, c := range sgrCodes {
		if f.Has(c.flag) {
			codes = append(codes, c.set)
		}
	}
	return codes
}

// ResetCodes returns the SGR codes deactivating every present attribute.
// If FlagReset is present the entire reset reduces to the single
// universal code "0", discarding the attribute-specific fragments.
func (f Flag) ResetCodes() []string {
	if f.Has(FlagReset) {
		return []string{"0"}
	}
	var codes []string
	for _, c := range sgrCodes {
		if f.Has(c.flag) {
			codes = append(codes, c.reset)
		}
	}
	return codes
}
