package color

// QuantizeUnorm8 maps a float32 in [0,1] to a byte, rounding half up.
// Values at or below zero (and NaN) map to 0, values at or above one to 255.
//
// The product is formed in float64, where v*255+0.5 is exact for every
// float32 v, so the result is the true round-half-up of v*255.
func QuantizeUnorm8(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(float64(v)*255 + 0.5)
}

// Unorm16ToF32 converts a uint16 [0,65535] to float32 [0,1].
func Unorm16ToF32(v uint16) float32 {
	return float32(v) / 65535
}

// U8ToF32 converts the integer hub to the float hub.
// Each uint8 component [0,255] is mapped to float32 [0,1].
func U8ToF32(c ColorU8) ColorF32 {
	return ColorF32{
		R: unorm8ToF32LUT[c.R],
		G: unorm8ToF32LUT[c.G],
		B: unorm8ToF32LUT[c.B],
		A: unorm8ToF32LUT[c.A],
	}
}

// F32ToU8 converts the float hub to the integer hub with QuantizeUnorm8.
func F32ToU8(c ColorF32) ColorU8 {
	return ColorU8{
		R: QuantizeUnorm8(c.R),
		G: QuantizeUnorm8(c.G),
		B: QuantizeUnorm8(c.B),
		A: QuantizeUnorm8(c.A),
	}
}

// Luma8 returns the Rec. 601 luminance of an 8-bit RGB triple, rounded:
// (299*R + 587*G + 114*B + 500) / 1000.
func Luma8(r, g, b uint8) uint8 {
	return uint8((uint32(r)*299 + uint32(g)*587 + uint32(b)*114 + 500) / 1000) //nolint:gosec // G115: result <= 255
}
