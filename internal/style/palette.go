package style

// base16 holds the conventional xterm RGB values for the 16 system colors.
var base16 = [16][3]uint8{
	{0x00, 0x00, 0x00}, {0x80, 0x00, 0x00}, {0x00, 0x80, 0x00}, {0x80, 0x80, 0x00},
	{0x00, 0x00, 0x80}, {0x80, 0x00, 0x80}, {0x00, 0x80, 0x80}, {0xc0, 0xc0, 0xc0},
	{0x80, 0x80, 0x80}, {0xff, 0x00, 0x00}, {0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
	{0x00, 0x00, 0xff}, {0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
}

// cubeLevels are the channel values of the xterm 6x6x6 color cube.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// paletteRGB returns the conventional RGB value of an xterm palette entry:
// 16 system colors, the 6x6x6 cube, then the 24-step grayscale ramp.
func paletteRGB(index uint8) (r, g, b uint8) {
	switch {
	case index < 16:
		e := base16[index]
		return e[0], e[1], e[2]
	case index < 232:
		i := index - 16
		return cubeLevels[i/36], cubeLevels[(i/6)%6], cubeLevels[i%6]
	default:
		v := 8 + 10*(index-232)
		return v, v, v
	}
}
