package wide

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/pixfmt/internal/color"
)

// F32x8 represents 8 float32 values for SIMD-style operations.
type F32x8 [8]float32

// LoadUnorm8 expands 8 bytes to floats in [0,1].
// src must have at least 8 bytes.
func LoadUnorm8(src []byte) F32x8 {
	lut := color.Unorm8Table()
	_ = src[7]
	var result F32x8
	for i := range result {
		result[i] = lut[src[i]]
	}
	return result
}

// LoadLE reads 8 little-endian float32 values.
// src must have at least 32 bytes.
func LoadLE(src []byte) F32x8 {
	_ = src[31]
	var result F32x8
	for i := range result {
		result[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:]))
	}
	return result
}

// StoreLE writes 8 little-endian float32 values.
// dst must have at least 32 bytes.
func (v F32x8) StoreLE(dst []byte) {
	_ = dst[31]
	for i := range v {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(v[i]))
	}
}

// StoreUnorm8 quantizes 8 floats to bytes with color.QuantizeUnorm8.
// dst must have at least 8 bytes.
func (v F32x8) StoreUnorm8(dst []byte) {
	_ = dst[7]
	for i := range v {
		dst[i] = color.QuantizeUnorm8(v[i])
	}
}
