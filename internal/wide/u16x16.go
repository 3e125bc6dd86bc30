package wide

import "github.com/gogpu/pixfmt/internal/premul"

// U16x16 represents 16 uint16 values for SIMD-style operations.
type U16x16 [16]uint16

// SplatU16 creates U16x16 with all elements set to n.
func SplatU16(n uint16) U16x16 {
	var result U16x16
	for i := range result {
		result[i] = n
	}
	return result
}

// MulDiv255 computes round(v[i] * other[i] / 255) for each element.
// Inputs must be in [0, 255]. This is the premultiply step: c * a / 255.
func (v U16x16) MulDiv255(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		// #nosec G115 -- result <= 255
		result[i] = uint16(premul.Div255(uint32(v[i]) * uint32(other[i])))
	}
	return result
}

// Unmultiply divides each element by the matching alpha with rounding and
// saturation at 255. Zero alpha yields zero.
func (v U16x16) Unmultiply(alpha U16x16) U16x16 {
	var result U16x16
	for i := range v {
		// #nosec G115 -- inputs are bytes
		result[i] = uint16(premul.Unmultiply(uint8(v[i]), uint8(alpha[i])))
	}
	return result
}
