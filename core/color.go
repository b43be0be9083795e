package core

// HSV is a color in the host framework's 8-bit hue/saturation/value form.
// Hue wraps at 256; saturation and value are clamped to [0,255].
type HSV struct {
	H uint8
	S uint8
	V uint8
}

// RGB is an 8-bit per channel LED color
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Named colors used by the indicator palette
var (
	RGB_BLACK       = RGB{0x00, 0x00, 0x00}
	RGB_WHITE       = RGB{0xFF, 0xFF, 0xFF}
	RGB_RED         = RGB{0xFF, 0x00, 0x00}
	RGB_GREEN       = RGB{0x00, 0xFF, 0x00}
	RGB_BLUE        = RGB{0x00, 0x00, 0xFF}
	RGB_GOLD        = RGB{0xFF, 0xD9, 0x00}
	RGB_SPRINGGREEN = RGB{0x00, 0xFF, 0x80}
	RGB_MAGENTA     = RGB{0xFF, 0x00, 0xFF}
	RGB_PINK        = RGB{0xFF, 0x80, 0xBF}
	RGB_AZURE       = RGB{0x99, 0xF5, 0xFF}

	HSV_BLACK = HSV{0, 0, 0}
)

// ToRGB converts c with the host framework's integer algorithm so that
// colors painted here match colors the built-in effects produce.
func (c HSV) ToRGB() RGB {
	if c.S == 0 {
		return RGB{c.V, c.V, c.V}
	}

	h := uint16(c.H)
	s := uint16(c.S)
	v := uint16(c.V)

	region := uint8(h * 6 / 255)
	remainder := uint8((h*2 - uint16(region)*85) * 3)

	p := uint8((v * (255 - s)) >> 8)
	q := uint8((v * (255 - ((s * uint16(remainder)) >> 8))) >> 8)
	t := uint8((v * (255 - ((s * (255 - uint16(remainder))) >> 8))) >> 8)
	vv := uint8(v)

	switch region {
	case 6, 0:
		return RGB{vv, t, p}
	case 1:
		return RGB{q, vv, p}
	case 2:
		return RGB{p, vv, t}
	case 3:
		return RGB{p, q, vv}
	case 4:
		return RGB{t, p, vv}
	default:
		return RGB{vv, p, q}
	}
}
