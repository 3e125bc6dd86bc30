package wide

import (
	"encoding/binary"
	"math"
)

// F32Lanes is the number of values an F32x8 kernel step processes.
const F32Lanes = 8

// one is the little-endian bit pattern of float32(1), used for opaque alpha.
var one = math.Float32bits(1)

// PremultiplyRGBA8 premultiplies 4-byte pixels with alpha in the fourth byte.
// It processes whole batches of 16 pixels and returns the pixel count done.
func PremultiplyRGBA8(dst, src []byte, count int) int {
	n := count - count%BatchPixels
	var b BatchState
	for i := 0; i < n; i += BatchPixels {
		off := i * 4
		b.Load(src[off:])
		b.Premultiply()
		b.Store(dst[off:])
	}
	return n
}

// UnpremultiplyRGBA8 reverses PremultiplyRGBA8.
func UnpremultiplyRGBA8(dst, src []byte, count int) int {
	n := count - count%BatchPixels
	var b BatchState
	for i := 0; i < n; i += BatchPixels {
		off := i * 4
		b.Load(src[off:])
		b.Unpremultiply()
		b.Store(dst[off:])
	}
	return n
}

// SwizzleRB swaps the first and third byte of each 4-byte pixel.
// src and dst may be the same slice.
func SwizzleRB(dst, src []byte, count int) int {
	n := count - count%BatchPixels
	var b BatchState
	for i := 0; i < n; i += BatchPixels {
		off := i * 4
		b.Load(src[off:])
		b.SwapC0C2()
		b.Store(dst[off:])
	}
	return n
}

// ExpandRGB8 widens 3-byte pixels to 4-byte pixels with an opaque alpha.
func ExpandRGB8(dst, src []byte, count int) int {
	n := count - count%BatchPixels
	var b BatchState
	b.A = SplatU16(255)
	for i := 0; i < n; i += BatchPixels {
		s := src[i*3 : i*3+BatchPixels*3]
		for j := range BatchPixels {
			b.C0[j] = uint16(s[j*3])
			b.C1[j] = uint16(s[j*3+1])
			b.C2[j] = uint16(s[j*3+2])
		}
		b.Store(dst[i*4:])
	}
	return n
}

// PackRGBA8 narrows 4-byte pixels to 3-byte pixels, dropping alpha.
func PackRGBA8(dst, src []byte, count int) int {
	n := count - count%BatchPixels
	var b BatchState
	for i := 0; i < n; i += BatchPixels {
		b.Load(src[i*4:])
		d := dst[i*3 : i*3+BatchPixels*3]
		for j := range BatchPixels {
			d[j*3] = uint8(b.C0[j])   // #nosec G115
			d[j*3+1] = uint8(b.C1[j]) // #nosec G115
			d[j*3+2] = uint8(b.C2[j]) // #nosec G115
		}
	}
	return n
}

// ExpandUnorm8 converts bytes to little-endian float32 values in [0,1], one
// float per byte. It serves any pair where every 8-bit channel maps to one
// float channel in the same order. Returns the number of bytes consumed.
func ExpandUnorm8(dst, src []byte) int {
	n := len(src) - len(src)%F32Lanes
	for i := 0; i < n; i += F32Lanes {
		LoadUnorm8(src[i:]).StoreLE(dst[i*4:])
	}
	return n
}

// QuantizeF32 converts little-endian float32 values to bytes, one byte per
// float. Returns the number of floats consumed.
func QuantizeF32(dst, src []byte) int {
	total := len(src) / 4
	n := total - total%F32Lanes
	for i := 0; i < n; i += F32Lanes {
		LoadLE(src[i*4:]).StoreUnorm8(dst[i:])
	}
	return n
}

// ExpandGray8 converts 1-byte luminance pixels to RGBA float32 pixels with
// R = G = B = L and A = 1. Returns the pixel count done.
func ExpandGray8(dst, src []byte, count int) int {
	n := count - count%F32Lanes
	for i := 0; i < n; i += F32Lanes {
		l := LoadUnorm8(src[i:])
		d := dst[i*16 : (i+F32Lanes)*16]
		for j := range l {
			bits := math.Float32bits(l[j])
			p := d[j*16:]
			binary.LittleEndian.PutUint32(p[0:], bits)
			binary.LittleEndian.PutUint32(p[4:], bits)
			binary.LittleEndian.PutUint32(p[8:], bits)
			binary.LittleEndian.PutUint32(p[12:], one)
		}
	}
	return n
}
