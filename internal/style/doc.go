// Package style provides terminal text styling: colors in several color
// spaces, emphasis attribute flags, hyperlinks, and the SGR/OSC escape
// sequences that activate and deactivate them.
//
// The package deals only in values. A Style is a comparable struct that
// can be used directly as a map key; the zero Style renders nothing.
// Sequence generation follows the SGR conventions:
//
//	ESC[1;38;2;244;63;94m   activate bold + truecolor foreground
//	ESC[22;39m              deactivate it again
//	ESC]8;;https://x\ESC\   open a hyperlink span (OSC-8)
//
// Colors constructed from HSL, HSV, or CMYK components are validated at
// construction and converted to RGB only when a sequence is generated.
package style
