package pixfmt

import (
	"context"
	"fmt"
	"log/slog"
	"math"
)

// ConvertBuffer converts count pixels from src (in srcFormat) into dst (in
// dstFormat). len(src) must equal count*srcFormat.BytesPerPixel() and
// len(dst) must equal count*dstFormat.BytesPerPixel().
//
// All checks happen before the first write: on error dst is untouched.
// Pixel i of dst depends only on pixel i of src, so callers may split a
// buffer into disjoint ranges and convert them concurrently. src and dst may
// be the same slice when both formats have the same storage width; otherwise
// they must not overlap.
//
// Identity pairs are a raw copy. Pairs with a batched kernel run it over
// whole batches and finish the tail pixel by pixel; the result is identical
// to calling ConvertPixel for every pixel.
func ConvertBuffer(srcFormat, dstFormat Format, src, dst []byte, count int) error {
	c, err := lookup(srcFormat, dstFormat)
	if err != nil {
		Logger().Debug("pixfmt: buffer conversion rejected", "src", srcFormat, "dst", dstFormat, "err", err)
		return err
	}
	if count < 0 {
		return fmt.Errorf("%w: negative pixel count %d", ErrBufferSize, count)
	}
	sb, db := srcFormat.BytesPerPixel(), dstFormat.BytesPerPixel()
	if !fits(src, count, sb) {
		return &SizeError{Buffer: "source", Format: srcFormat, Got: len(src), Want: spanBytes(count, sb)}
	}
	if !fits(dst, count, db) {
		return &SizeError{Buffer: "destination", Format: dstFormat, Got: len(dst), Want: spanBytes(count, db)}
	}

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("pixfmt: convert buffer",
			"src", srcFormat, "dst", dstFormat, "count", count,
			"path", c.kind, "batched", c.span != nil)
	}

	if c.kind == PathIdentity {
		copy(dst, src)
		return nil
	}

	done := 0
	if c.span != nil && count > 0 {
		done = c.span(dst, src, count)
	}
	for i := done; i < count; i++ {
		c.pixel(dst[i*db:(i+1)*db], src[i*sb:(i+1)*sb])
	}
	return nil
}

// fits reports whether len(b) is exactly count pixels of bpp bytes.
// The division comes first so count*bpp is only formed when it cannot overflow.
func fits(b []byte, count, bpp int) bool {
	return count <= len(b)/bpp && len(b) == count*bpp
}

// spanBytes returns count*bpp, or -1 when the product does not fit an int.
func spanBytes(count, bpp int) int {
	if count > math.MaxInt/bpp {
		return -1
	}
	return count * bpp
}
