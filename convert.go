package pixfmt

// ConvertPixel converts one pixel from src to dst format and returns the
// new pixel bytes. pixel must be exactly src.BytesPerPixel() long.
//
// Converting a format to itself returns an exact copy.
func ConvertPixel(src, dst Format, pixel []byte) ([]byte, error) {
	c, err := lookup(src, dst)
	if err != nil {
		return nil, err
	}
	if want := src.BytesPerPixel(); len(pixel) != want {
		return nil, &SizeError{Buffer: "source", Format: src, Got: len(pixel), Want: want}
	}
	out := make([]byte, dst.BytesPerPixel())
	c.pixel(out, pixel)
	return out, nil
}

// ConvertPixelInto converts one pixel without allocating. srcPixel and
// dstPixel must be exactly one pixel of their formats.
func ConvertPixelInto(src, dst Format, srcPixel, dstPixel []byte) error {
	c, err := lookup(src, dst)
	if err != nil {
		return err
	}
	if want := src.BytesPerPixel(); len(srcPixel) != want {
		return &SizeError{Buffer: "source", Format: src, Got: len(srcPixel), Want: want}
	}
	if want := dst.BytesPerPixel(); len(dstPixel) != want {
		return &SizeError{Buffer: "destination", Format: dst, Got: len(dstPixel), Want: want}
	}
	c.pixel(dstPixel, srcPixel)
	return nil
}
