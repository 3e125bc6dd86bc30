package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/pixfmt"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when a file extension has no encoder.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// Decode decodes a PNG, JPEG, GIF, BMP, TIFF or WebP stream.
// The returned bitmap keeps the decoded pixels exactly where a pixfmt
// format matches the decoder's layout, and is RGBA8 otherwise.
func Decode(r io.Reader) (*Bitmap, string, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("image: decode: %w", err)
	}
	b, err := FromStdImage(img)
	if err != nil {
		return nil, "", err
	}
	return b, name, nil
}

// DecodeBytes decodes an in-memory image.
func DecodeBytes(data []byte) (*Bitmap, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Load decodes the image file at path.
func Load(path string) (*Bitmap, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// FromStdImage copies img into a new bitmap.
//
// NRGBA maps to RGBA8, RGBA to RGBAPremul, Gray to Gray8 and Gray16 to
// Gray16 without any arithmetic. Every other image type is drawn into an
// NRGBA first.
func FromStdImage(img image.Image) (*Bitmap, error) {
	r := img.Bounds()
	w, h := r.Dx(), r.Dy()

	switch src := img.(type) {
	case *image.NRGBA:
		return copyRows(src.Pix, src.Stride, w, h, pixfmt.FormatRGBA8)
	case *image.RGBA:
		return copyRows(src.Pix, src.Stride, w, h, pixfmt.FormatRGBAPremul)
	case *image.Gray:
		return copyRows(src.Pix, src.Stride, w, h, pixfmt.FormatGray8)
	case *image.Gray16:
		b, err := NewBitmap(w, h, pixfmt.FormatGray16)
		if err != nil {
			return nil, err
		}
		for y := range h {
			s := src.Pix[y*src.Stride:]
			d := b.Row(y)
			// image.Gray16 is big-endian, Gray16 little-endian.
			for x := range w {
				d[x*2], d[x*2+1] = s[x*2+1], s[x*2]
			}
		}
		return b, nil
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Copy(nrgba, image.Point{}, img, r, draw.Src, nil)
	return copyRows(nrgba.Pix, nrgba.Stride, w, h, pixfmt.FormatRGBA8)
}

func copyRows(pix []byte, stride, w, h int, format pixfmt.Format) (*Bitmap, error) {
	b, err := NewBitmap(w, h, format)
	if err != nil {
		return nil, err
	}
	for y := range h {
		copy(b.Row(y), pix[y*stride:])
	}
	return b, nil
}

// ToStdImage returns the bitmap as a standard library image.
// RGBA8 becomes *image.NRGBA, RGBAPremul *image.RGBA, Gray8 *image.Gray and
// Gray16 *image.Gray16. Any other format is converted to RGBA8 first.
func (b *Bitmap) ToStdImage() (image.Image, error) {
	rect := image.Rect(0, 0, b.width, b.height)

	switch b.format {
	case pixfmt.FormatRGBA8:
		img := image.NewNRGBA(rect)
		b.copyOut(img.Pix, img.Stride)
		return img, nil
	case pixfmt.FormatRGBAPremul:
		img := image.NewRGBA(rect)
		b.copyOut(img.Pix, img.Stride)
		return img, nil
	case pixfmt.FormatGray8:
		img := image.NewGray(rect)
		b.copyOut(img.Pix, img.Stride)
		return img, nil
	case pixfmt.FormatGray16:
		img := image.NewGray16(rect)
		for y := range b.height {
			s := b.Row(y)
			d := img.Pix[y*img.Stride:]
			for x := range b.width {
				d[x*2], d[x*2+1] = s[x*2+1], s[x*2]
			}
		}
		return img, nil
	}

	rgba, err := b.Convert(pixfmt.FormatRGBA8)
	if err != nil {
		return nil, err
	}
	return rgba.ToStdImage()
}

func (b *Bitmap) copyOut(pix []byte, stride int) {
	for y := range b.height {
		copy(pix[y*stride:], b.Row(y))
	}
}

// EncodePNG encodes the bitmap as PNG to the given writer.
func (b *Bitmap) EncodePNG(w io.Writer) error {
	img, err := b.ToStdImage()
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// Encode writes the bitmap in the container named by ext: ".png", ".jpg",
// ".jpeg", ".bmp", ".tif" or ".tiff".
func (b *Bitmap) Encode(w io.Writer, ext string) error {
	ext = strings.ToLower(ext)
	if ext == ".png" {
		return b.EncodePNG(w)
	}

	img, err := b.ToStdImage()
	if err != nil {
		return err
	}
	switch ext {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case ".bmp":
		err = bmp.Encode(w, img)
	case ".tif", ".tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", ext, err)
	}
	return nil
}

// Save writes the bitmap to path, choosing the container from the file
// extension.
func (b *Bitmap) Save(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	if err := b.Encode(f, filepath.Ext(path)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
