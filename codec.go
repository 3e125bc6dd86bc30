package pixfmt

import (
	"encoding/binary"
	"math"

	"github.com/x448/float16"

	"github.com/gogpu/pixfmt/internal/color"
	"github.com/gogpu/pixfmt/internal/premul"
)

// hubKind selects the canonical intermediate a format converts through.
type hubKind uint8

const (
	// hubU8 is color.ColorU8: 8 bits per channel, straight alpha.
	hubU8 hubKind = iota
	// hubF32 is color.ColorF32: float32 per channel, straight alpha.
	hubF32
)

// codec holds the two mandatory conversions of a format: to its hub and
// back. Exactly one decode function is set, matching hub. A nil encode
// marks the format as decode-only.
type codec struct {
	hub       hubKind
	decodeU8  func(p []byte) color.ColorU8
	encodeU8  func(p []byte, c color.ColorU8)
	decodeF32 func(p []byte) color.ColorF32
	encodeF32 func(p []byte, c color.ColorF32)
}

func (c *codec) canEncode() bool {
	return c.encodeU8 != nil || c.encodeF32 != nil
}

// codecs is indexed by Format. Gray16, GrayF32, BGRA5551 and BGRA4444 have
// no encoder.
var codecs = [formatCount]codec{
	FormatAlpha8: {
		hub:      hubU8,
		decodeU8: func(p []byte) color.ColorU8 { return color.ColorU8{A: p[0]} },
		encodeU8: func(p []byte, c color.ColorU8) { p[0] = c.A },
	},
	FormatGray8: {
		hub: hubU8,
		decodeU8: func(p []byte) color.ColorU8 {
			l := p[0]
			return color.ColorU8{R: l, G: l, B: l, A: 255}
		},
		encodeU8: func(p []byte, c color.ColorU8) { p[0] = color.Luma8(c.R, c.G, c.B) },
	},
	FormatGray16: {
		hub: hubF32,
		decodeF32: func(p []byte) color.ColorF32 {
			l := color.Unorm16ToF32(binary.LittleEndian.Uint16(p))
			return color.ColorF32{R: l, G: l, B: l, A: 1}
		},
	},
	FormatGrayF32: {
		hub: hubF32,
		decodeF32: func(p []byte) color.ColorF32 {
			l := getF32(p, 0)
			return color.ColorF32{R: l, G: l, B: l, A: 1}
		},
	},
	FormatBGR565: {
		hub:      hubU8,
		decodeU8: decodeBGR565,
		encodeU8: encodeBGR565,
	},
	FormatBGRA5551: {
		hub:      hubU8,
		decodeU8: decodeBGRA5551,
	},
	FormatBGRA4444: {
		hub:      hubU8,
		decodeU8: decodeBGRA4444,
	},
	FormatRGB8: {
		hub: hubU8,
		decodeU8: func(p []byte) color.ColorU8 {
			return color.ColorU8{R: p[0], G: p[1], B: p[2], A: 255}
		},
		encodeU8: func(p []byte, c color.ColorU8) {
			p[0], p[1], p[2] = c.R, c.G, c.B
		},
	},
	FormatBGR8: {
		hub: hubU8,
		decodeU8: func(p []byte) color.ColorU8 {
			return color.ColorU8{R: p[2], G: p[1], B: p[0], A: 255}
		},
		encodeU8: func(p []byte, c color.ColorU8) {
			p[0], p[1], p[2] = c.B, c.G, c.R
		},
	},
	FormatRGBA8: {
		hub: hubU8,
		decodeU8: func(p []byte) color.ColorU8 {
			return color.ColorU8{R: p[0], G: p[1], B: p[2], A: p[3]}
		},
		encodeU8: func(p []byte, c color.ColorU8) {
			p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
		},
	},
	FormatBGRA8: {
		hub: hubU8,
		decodeU8: func(p []byte) color.ColorU8 {
			return color.ColorU8{R: p[2], G: p[1], B: p[0], A: p[3]}
		},
		encodeU8: func(p []byte, c color.ColorU8) {
			p[0], p[1], p[2], p[3] = c.B, c.G, c.R, c.A
		},
	},
	FormatARGB8: {
		hub: hubU8,
		decodeU8: func(p []byte) color.ColorU8 {
			return color.ColorU8{R: p[1], G: p[2], B: p[3], A: p[0]}
		},
		encodeU8: func(p []byte, c color.ColorU8) {
			p[0], p[1], p[2], p[3] = c.A, c.R, c.G, c.B
		},
	},
	FormatRGBAPremul: {
		hub: hubU8,
		decodeU8: func(p []byte) color.ColorU8 {
			a := p[3]
			return color.ColorU8{
				R: premul.Unmultiply(p[0], a),
				G: premul.Unmultiply(p[1], a),
				B: premul.Unmultiply(p[2], a),
				A: a,
			}
		},
		encodeU8: func(p []byte, c color.ColorU8) {
			p[0] = premul.Multiply(c.R, c.A)
			p[1] = premul.Multiply(c.G, c.A)
			p[2] = premul.Multiply(c.B, c.A)
			p[3] = c.A
		},
	},
	FormatBGRAPremul: {
		hub: hubU8,
		decodeU8: func(p []byte) color.ColorU8 {
			a := p[3]
			return color.ColorU8{
				R: premul.Unmultiply(p[2], a),
				G: premul.Unmultiply(p[1], a),
				B: premul.Unmultiply(p[0], a),
				A: a,
			}
		},
		encodeU8: func(p []byte, c color.ColorU8) {
			p[0] = premul.Multiply(c.B, c.A)
			p[1] = premul.Multiply(c.G, c.A)
			p[2] = premul.Multiply(c.R, c.A)
			p[3] = c.A
		},
	},
	FormatRGB16F: {
		hub: hubF32,
		decodeF32: func(p []byte) color.ColorF32 {
			return color.ColorF32{R: getF16(p, 0), G: getF16(p, 2), B: getF16(p, 4), A: 1}
		},
		encodeF32: func(p []byte, c color.ColorF32) {
			putF16(p, 0, c.R)
			putF16(p, 2, c.G)
			putF16(p, 4, c.B)
		},
	},
	FormatRGB32F: {
		hub: hubF32,
		decodeF32: func(p []byte) color.ColorF32 {
			return color.ColorF32{R: getF32(p, 0), G: getF32(p, 4), B: getF32(p, 8), A: 1}
		},
		encodeF32: func(p []byte, c color.ColorF32) {
			putF32(p, 0, c.R)
			putF32(p, 4, c.G)
			putF32(p, 8, c.B)
		},
	},
	FormatRGBA32F: {
		hub: hubF32,
		decodeF32: func(p []byte) color.ColorF32 {
			return color.ColorF32{R: getF32(p, 0), G: getF32(p, 4), B: getF32(p, 8), A: getF32(p, 12)}
		},
		encodeF32: func(p []byte, c color.ColorF32) {
			putF32(p, 0, c.R)
			putF32(p, 4, c.G)
			putF32(p, 8, c.B)
			putF32(p, 12, c.A)
		},
	},
	FormatRGBAPremul32F: {
		hub: hubF32,
		decodeF32: func(p []byte) color.ColorF32 {
			a := getF32(p, 12)
			return color.ColorF32{
				R: premul.UnmultiplyF32(getF32(p, 0), a),
				G: premul.UnmultiplyF32(getF32(p, 4), a),
				B: premul.UnmultiplyF32(getF32(p, 8), a),
				A: a,
			}
		},
		encodeF32: func(p []byte, c color.ColorF32) {
			putF32(p, 0, premul.MultiplyF32(c.R, c.A))
			putF32(p, 4, premul.MultiplyF32(c.G, c.A))
			putF32(p, 8, premul.MultiplyF32(c.B, c.A))
			putF32(p, 12, c.A)
		},
	},
}

// unorm rescales a packed channel of the given bit width to 8 bits.
func unorm(v uint16, bits uint) uint8 {
	maxV := uint32(1)<<bits - 1
	return uint8(premul.Rescale(uint32(v)&maxV, maxV, 255)) //nolint:gosec // G115: result <= 255
}

// pack rescales an 8-bit channel to the given bit width.
func pack(v uint8, bits uint) uint16 {
	maxV := uint32(1)<<bits - 1
	return uint16(premul.Rescale(uint32(v), 255, maxV)) //nolint:gosec // G115: result <= maxV
}

func decodeBGR565(p []byte) color.ColorU8 {
	v := binary.LittleEndian.Uint16(p)
	return color.ColorU8{
		R: unorm(v>>11, 5),
		G: unorm(v>>5, 6),
		B: unorm(v, 5),
		A: 255,
	}
}

func encodeBGR565(p []byte, c color.ColorU8) {
	v := pack(c.R, 5)<<11 | pack(c.G, 6)<<5 | pack(c.B, 5)
	binary.LittleEndian.PutUint16(p, v)
}

func decodeBGRA5551(p []byte) color.ColorU8 {
	v := binary.LittleEndian.Uint16(p)
	return color.ColorU8{
		R: unorm(v>>10, 5),
		G: unorm(v>>5, 5),
		B: unorm(v, 5),
		A: unorm(v>>15, 1),
	}
}

func decodeBGRA4444(p []byte) color.ColorU8 {
	v := binary.LittleEndian.Uint16(p)
	return color.ColorU8{
		R: unorm(v>>8, 4),
		G: unorm(v>>4, 4),
		B: unorm(v, 4),
		A: unorm(v>>12, 4),
	}
}

func getF32(p []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(p[off:]))
}

func putF32(p []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(p[off:], math.Float32bits(v))
}

func getF16(p []byte, off int) float32 {
	return float16.Frombits(binary.LittleEndian.Uint16(p[off:])).Float32()
}

func putF16(p []byte, off int, v float32) {
	binary.LittleEndian.PutUint16(p[off:], float16.Fromfloat32(v).Bits())
}
