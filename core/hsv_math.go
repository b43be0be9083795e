package core

// AddSat8 returns a+b clamped to 255
func AddSat8(a, b uint8) uint8 {
	if uint16(a)+uint16(b) > 255 {
		return 255
	}
	return a + b
}

// SubSat8 returns a-b clamped to 0
func SubSat8(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}

// AddWrap8 returns a+b modulo 256
func AddWrap8(a, b uint8) uint8 {
	return a + b
}

// SubWrap8 returns a-b modulo 256
func SubWrap8(a, b uint8) uint8 {
	return a - b
}

// Adjust moves c by the given step sizes in the direction of up.
// Hue wraps around the color wheel, saturation and value saturate.
func (c HSV) Adjust(up bool, hue, sat, val uint8) HSV {
	if up {
		return HSV{
			H: AddWrap8(c.H, hue),
			S: AddSat8(c.S, sat),
			V: AddSat8(c.V, val),
		}
	}
	return HSV{
		H: SubWrap8(c.H, hue),
		S: SubSat8(c.S, sat),
		V: SubSat8(c.V, val),
	}
}
