package pixfmt

import (
	"github.com/gogpu/pixfmt/internal/color"
	"github.com/gogpu/pixfmt/internal/premul"
	"github.com/gogpu/pixfmt/internal/wide"
)

// fastPath overrides the hub composition for one pair. pixel, when set, is a
// direct per-pixel formula; span is the batched kernel used by ConvertBuffer.
// Both must produce exactly what the hub path produces.
type fastPath struct {
	src, dst Format
	pixel    pixelFunc
	span     spanFunc
}

var fastPaths = []fastPath{
	{FormatRGBA8, FormatBGRA8, swapRB, wide.SwizzleRB},
	{FormatBGRA8, FormatRGBA8, swapRB, wide.SwizzleRB},
	{FormatRGBA8, FormatRGBAPremul, premultiply4, wide.PremultiplyRGBA8},
	{FormatBGRA8, FormatBGRAPremul, premultiply4, wide.PremultiplyRGBA8},
	{FormatRGBAPremul, FormatRGBA8, unpremultiply4, wide.UnpremultiplyRGBA8},
	{FormatBGRAPremul, FormatBGRA8, unpremultiply4, wide.UnpremultiplyRGBA8},
	{FormatRGB8, FormatRGBA8, nil, wide.ExpandRGB8},
	{FormatRGBA8, FormatRGB8, nil, wide.PackRGBA8},
	{FormatRGBA8, FormatRGBA32F, nil, expandUnorm8(4)},
	{FormatRGB8, FormatRGB32F, nil, expandUnorm8(3)},
	{FormatRGBA32F, FormatRGBA8, nil, quantizeF32(4)},
	{FormatRGB32F, FormatRGB8, nil, quantizeF32(3)},
	{FormatGray8, FormatRGBA32F, grayToRGBA32F, wide.ExpandGray8},
}

func swapRB(dst, src []byte) {
	dst[0], dst[1], dst[2], dst[3] = src[2], src[1], src[0], src[3]
}

func premultiply4(dst, src []byte) {
	a := src[3]
	dst[0] = premul.Multiply(src[0], a)
	dst[1] = premul.Multiply(src[1], a)
	dst[2] = premul.Multiply(src[2], a)
	dst[3] = a
}

func unpremultiply4(dst, src []byte) {
	a := src[3]
	dst[0] = premul.Unmultiply(src[0], a)
	dst[1] = premul.Unmultiply(src[1], a)
	dst[2] = premul.Unmultiply(src[2], a)
	dst[3] = a
}

func grayToRGBA32F(dst, src []byte) {
	l := color.Unorm8ToF32(src[0])
	putF32(dst, 0, l)
	putF32(dst, 4, l)
	putF32(dst, 8, l)
	putF32(dst, 12, 1)
}

// expandUnorm8 adapts wide.ExpandUnorm8 for pixels of n byte channels that
// map one-to-one onto n float channels. The kernel may stop inside a pixel;
// only whole pixels are reported and the scalar path redoes the rest.
func expandUnorm8(n int) spanFunc {
	return func(dst, src []byte, count int) int {
		return wide.ExpandUnorm8(dst, src[:count*n]) / n
	}
}

// quantizeF32 adapts wide.QuantizeF32 for pixels of n float channels.
func quantizeF32(n int) spanFunc {
	return func(dst, src []byte, count int) int {
		return wide.QuantizeF32(dst, src[:count*n*4]) / n
	}
}
