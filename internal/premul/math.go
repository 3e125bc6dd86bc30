// Package premul provides the integer and float arithmetic shared by every
// pixel conversion that touches alpha or changes bit depth.
//
// All quantization in pixfmt rounds half up. The 8-bit premultiply and
// unpremultiply helpers avoid hardware division: premultiply uses Jim Blinn's
// shift formula for round(x/255) and unpremultiply uses a fixed-point
// reciprocal table. Both are exact for every 8-bit input, which the tests
// verify exhaustively against plain integer division.
//
// References:
//   - Jim Blinn, "Three Wrongs Make a Right", IEEE CG&A 1995
//   - Granlund & Montgomery, "Division by Invariant Integers using Multiplication"
package premul

// recipShift is the fixed-point precision of the reciprocal table.
const recipShift = 32

// recip255 holds ceil(2^32 / a) for a in [1, 255]. recip255[0] is unused.
//
// For x < 2^16 and a < 2^8, (x * recip255[a]) >> 32 equals x / a exactly,
// since the table error x*e/(a*2^32) stays below 2^-16 < 1/a.
var recip255 = func() [256]uint64 {
	var t [256]uint64
	for a := uint64(1); a < 256; a++ {
		t[a] = ((1 << recipShift) + a - 1) / a
	}
	return t
}()

// Div255 returns round(x / 255) for x in [0, 255*255].
//
// Formula: t = x + 128; (t + (t >> 8)) >> 8
func Div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// MulDiv255 multiplies two bytes and divides by 255 with rounding.
// Equivalent to (a*b + 127) / 255.
func MulDiv255(a, b uint8) uint8 {
	return uint8(Div255(uint32(a) * uint32(b))) //nolint:gosec // G115: result <= 255
}

// Multiply premultiplies an 8-bit channel by an 8-bit alpha.
// Alpha zero collapses the channel to zero.
func Multiply(c, a uint8) uint8 {
	if a == 0 {
		return 0
	}
	return MulDiv255(c, a)
}

// Unmultiply reverses Multiply: min(255, (c*255 + a/2) / a).
// Alpha zero yields zero. Channels larger than alpha are not valid
// premultiplied values but are representable; they saturate at 255.
func Unmultiply(c, a uint8) uint8 {
	if a == 0 {
		return 0
	}
	x := uint64(c)*255 + uint64(a>>1)
	q := (x * recip255[a]) >> recipShift
	if q > 255 {
		return 255
	}
	return uint8(q)
}

// UnmultiplyDiv is the division-based reference for Unmultiply.
// It is slower and exists for verification.
func UnmultiplyDiv(c, a uint8) uint8 {
	if a == 0 {
		return 0
	}
	q := (uint32(c)*255 + uint32(a)/2) / uint32(a)
	if q > 255 {
		return 255
	}
	return uint8(q)
}

// MultiplyF32 premultiplies a float channel. Alpha zero yields 0 so NaN or
// Inf channels never survive a transparent pixel.
func MultiplyF32(c, a float32) float32 {
	if a == 0 {
		return 0
	}
	return c * a
}

// UnmultiplyF32 reverses MultiplyF32, clamping to the domain maximum 1.
func UnmultiplyF32(c, a float32) float32 {
	if a == 0 {
		return 0
	}
	v := c / a
	if v > 1 {
		return 1
	}
	return v
}

// Rescale converts an unsigned normalized value between bit depths:
// (v*dstMax + srcMax/2) / srcMax.
func Rescale(v, srcMax, dstMax uint32) uint32 {
	return (v*dstMax + srcMax/2) / srcMax
}
