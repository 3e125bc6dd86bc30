package image

import (
	"github.com/nfnt/resize"

	"github.com/gogpu/pixfmt"
)

// Resize scales the bitmap to width x height with bilinear filtering.
// A zero width or height keeps the aspect ratio.
//
// The result is in b's format, or RGBA8 when b's format is decode-only.
// Filtering works on 8-bit premultiplied pixels (16-bit for Gray16), so
// float formats lose precision.
func (b *Bitmap) Resize(width, height int) (*Bitmap, error) {
	if width < 0 || height < 0 || (width == 0 && height == 0) {
		return nil, ErrInvalidDimensions
	}
	img, err := b.ToStdImage()
	if err != nil {
		return nil, err
	}
	//nolint:gosec // G115: both dimensions checked non-negative
	scaled, err := FromStdImage(resize.Resize(uint(width), uint(height), img, resize.Bilinear))
	if err != nil {
		return nil, err
	}
	return scaled.Convert(ResizedFormat(b.format))
}

// ResizedFormat returns the format Resize produces for a bitmap in f.
func ResizedFormat(f pixfmt.Format) pixfmt.Format {
	if pixfmt.IsDecodeOnly(f) && f != pixfmt.FormatGray16 {
		return pixfmt.FormatRGBA8
	}
	return f
}
