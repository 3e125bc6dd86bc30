// Package image holds stride-aware pixel bitmaps for the pixconv tool.
//
// A Bitmap is a rectangle of pixels in any pixfmt.Format. Conversion runs
// row by row through pixfmt.ConvertBuffer, so padded strides and
// sub-images work without copying.
package image

import (
	"errors"
	"fmt"

	"github.com/gogpu/pixfmt"
	"github.com/gogpu/pixfmt/internal/parallel"
)

// Common errors for bitmap operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// Bitmap is a rectangle of pixels stored row by row.
//
// Thread safety: concurrent reads are safe. Writes require external
// synchronization.
type Bitmap struct {
	data   []byte
	width  int
	height int
	stride int
	format pixfmt.Format
}

// NewBitmap allocates a zeroed bitmap with tightly packed rows.
func NewBitmap(width, height int, format pixfmt.Format) (*Bitmap, error) {
	if err := validate(width, height, format); err != nil {
		return nil, err
	}
	stride := format.RowBytes(width)
	return &Bitmap{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw wraps existing data without copying. Stride must be at least
// format.RowBytes(width). The last row needs only RowBytes(width) bytes.
func FromRaw(data []byte, width, height int, format pixfmt.Format, stride int) (*Bitmap, error) {
	if err := validate(width, height, format); err != nil {
		return nil, err
	}
	rowBytes := format.RowBytes(width)
	if stride < rowBytes {
		return nil, ErrInvalidStride
	}
	need := (height-1)*stride + rowBytes
	if len(data) < need {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrDataTooSmall, len(data), need)
	}
	return &Bitmap{
		data:   data[:need],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

func validate(width, height int, format pixfmt.Format) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if !format.IsValid() {
		return ErrInvalidFormat
	}
	return nil
}

// Width returns the image width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the image height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Stride returns the number of bytes between row starts.
func (b *Bitmap) Stride() int { return b.stride }

// Format returns the pixel format.
func (b *Bitmap) Format() pixfmt.Format { return b.format }

// Data returns the underlying bytes, including row padding.
func (b *Bitmap) Data() []byte { return b.data }

// Row returns the pixel bytes of row y without padding, or nil if y is out
// of bounds.
func (b *Bitmap) Row(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// PixelBytes returns the bytes of pixel (x, y), or nil if out of bounds.
func (b *Bitmap) PixelBytes(x, y int) []byte {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return nil
	}
	bpp := b.format.BytesPerPixel()
	off := y*b.stride + x*bpp
	return b.data[off : off+bpp]
}

// SetPixelBytes copies one pixel into (x, y).
func (b *Bitmap) SetPixelBytes(x, y int, pixel []byte) error {
	p := b.PixelBytes(x, y)
	if p == nil {
		return ErrOutOfBounds
	}
	copy(p, pixel)
	return nil
}

// SubImage returns a view of a rectangle sharing b's storage, or nil if the
// rectangle is empty or not inside b.
func (b *Bitmap) SubImage(x, y, width, height int) *Bitmap {
	if x < 0 || y < 0 || width <= 0 || height <= 0 || x+width > b.width || y+height > b.height {
		return nil
	}
	bpp := b.format.BytesPerPixel()
	start := y*b.stride + x*bpp
	end := (y+height-1)*b.stride + (x+width)*bpp
	return &Bitmap{
		data:   b.data[start:end],
		width:  width,
		height: height,
		stride: b.stride,
		format: b.format,
	}
}

// Clone returns a tightly packed deep copy.
func (b *Bitmap) Clone() *Bitmap {
	c, _ := NewBitmap(b.width, b.height, b.format)
	for y := range b.height {
		copy(c.Row(y), b.Row(y))
	}
	return c
}

// Convert returns a new bitmap holding b's pixels in format dst.
func (b *Bitmap) Convert(dst pixfmt.Format) (*Bitmap, error) {
	out, err := b.prepare(dst)
	if err != nil {
		return nil, err
	}
	if err := b.convertRows(out, 0, b.height); err != nil {
		return nil, err
	}
	return out, nil
}

// ConvertParallel is Convert with rows split across pool. The result is
// identical to Convert.
func (b *Bitmap) ConvertParallel(pool *parallel.Pool, dst pixfmt.Format) (*Bitmap, error) {
	out, err := b.prepare(dst)
	if err != nil {
		return nil, err
	}

	bounds := parallel.Chunks(b.height, pool.Workers()*4)
	errs := make([]error, len(bounds)-1)
	pool.Run(len(errs), 1, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			errs[i] = b.convertRows(out, bounds[i], bounds[i+1])
		}
	})
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

// prepare checks the pair before any pixel work and allocates the output.
func (b *Bitmap) prepare(dst pixfmt.Format) (*Bitmap, error) {
	if !pixfmt.IsConversionSupported(b.format, dst) {
		return nil, &pixfmt.ConversionError{Src: b.format, Dst: dst}
	}
	return NewBitmap(b.width, b.height, dst)
}

func (b *Bitmap) convertRows(out *Bitmap, y0, y1 int) error {
	for y := y0; y < y1; y++ {
		if err := pixfmt.ConvertBuffer(b.format, out.format, b.Row(y), out.Row(y), b.width); err != nil {
			return fmt.Errorf("image: row %d: %w", y, err)
		}
	}
	return nil
}
