package pixfmt

import (
	"errors"
	"testing"
)

var decodeOnly = []Format{FormatGray16, FormatGrayF32, FormatBGRA5551, FormatBGRA4444}

func TestIsDecodeOnly(t *testing.T) {
	want := make(map[Format]bool)
	for _, f := range decodeOnly {
		want[f] = true
	}
	for _, f := range Formats() {
		if got := IsDecodeOnly(f); got != want[f] {
			t.Errorf("IsDecodeOnly(%s) = %v, want %v", f, got, want[f])
		}
	}
	if IsDecodeOnly(formatCount) {
		t.Error("IsDecodeOnly(invalid) = true")
	}
}

func TestUnsupportedPairs(t *testing.T) {
	for _, dst := range decodeOnly {
		for _, src := range Formats() {
			if src == dst {
				continue
			}
			t.Run(src.String()+"->"+dst.String(), func(t *testing.T) {
				if IsConversionSupported(src, dst) {
					t.Fatal("IsConversionSupported() = true")
				}

				_, err := ConvertPixel(src, dst, make([]byte, src.BytesPerPixel()))
				if !errors.Is(err, ErrUnsupportedConversion) {
					t.Fatalf("ConvertPixel() error = %v, want ErrUnsupportedConversion", err)
				}
				var ce *ConversionError
				if !errors.As(err, &ce) || ce.Src != src || ce.Dst != dst {
					t.Fatalf("ConvertPixel() error = %#v, want ConversionError{%s, %s}", err, src, dst)
				}

				out := []byte{0xAB, 0xAB, 0xAB, 0xAB}
				out = out[:dst.BytesPerPixel()]
				err = ConvertBuffer(src, dst, make([]byte, src.BytesPerPixel()), out, 1)
				if !errors.Is(err, ErrUnsupportedConversion) {
					t.Fatalf("ConvertBuffer() error = %v, want ErrUnsupportedConversion", err)
				}
				for i, b := range out {
					if b != 0xAB {
						t.Fatalf("destination byte %d written on error", i)
					}
				}
			})
		}
	}
}

// TestUnsupportedBeforeSize checks a pair error wins over a size error, so
// support can be decided without looking at the data.
func TestUnsupportedBeforeSize(t *testing.T) {
	err := ConvertBuffer(FormatRGBA8, FormatGray16, make([]byte, 3), nil, 5)
	if !errors.Is(err, ErrUnsupportedConversion) {
		t.Errorf("ConvertBuffer() error = %v, want ErrUnsupportedConversion", err)
	}
}

func TestInvalidFormatPairs(t *testing.T) {
	bad := Format(99)
	if IsConversionSupported(bad, FormatRGBA8) || IsConversionSupported(FormatRGBA8, bad) {
		t.Error("invalid formats reported as supported")
	}
	if _, err := ConvertPixel(bad, FormatRGBA8, []byte{0}); !errors.Is(err, ErrUnsupportedConversion) {
		t.Errorf("ConvertPixel(invalid) error = %v", err)
	}
}

func TestSupportMatrix(t *testing.T) {
	m := SupportMatrix()
	if len(m) != int(formatCount) {
		t.Fatalf("len(SupportMatrix()) = %d, want %d", len(m), formatCount)
	}

	supported := 0
	for s, row := range m {
		for d, ok := range row {
			src, dst := Format(s), Format(d)
			if ok != IsConversionSupported(src, dst) {
				t.Errorf("matrix[%s][%s] = %v disagrees with IsConversionSupported", src, dst, ok)
			}
			if src == dst && !ok {
				t.Errorf("identity %s unsupported", src)
			}
			if ok {
				supported++
			}
		}
	}
	// Every pair except non-identity pairs into the four decode-only formats.
	if want := 18*18 - 4*17; supported != want {
		t.Errorf("supported pairs = %d, want %d", supported, want)
	}

	// The matrix is a copy.
	m[FormatRGBA8][FormatGray16] = true
	if IsConversionSupported(FormatRGBA8, FormatGray16) {
		t.Error("mutating SupportMatrix() changed the capability")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		src, dst Format
		kind     PathKind
	}{
		{FormatRGBA8, FormatRGBA8, PathIdentity},
		{FormatGray16, FormatGray16, PathIdentity},
		{FormatRGBA8, FormatBGRA8, PathDirect},
		{FormatRGBA8, FormatRGBAPremul, PathDirect},
		{FormatGray8, FormatRGBA32F, PathDirect},
		{FormatRGBA8, FormatARGB8, PathHub},
		{FormatBGR565, FormatGray8, PathHub},
		{FormatRGB16F, FormatRGBAPremul32F, PathHub},
		{FormatRGBA8, FormatRGB16F, PathCrossHub},
		{FormatGray16, FormatRGBA8, PathCrossHub},
		{FormatRGBA8, FormatGray16, PathUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.src.String()+"->"+tt.dst.String(), func(t *testing.T) {
			p, err := Resolve(tt.src, tt.dst)
			if (err != nil) != (tt.kind == PathUnsupported) {
				t.Fatalf("Resolve() error = %v", err)
			}
			if p.Kind != tt.kind {
				t.Errorf("Resolve().Kind = %s, want %s", p.Kind, tt.kind)
			}
		})
	}

	p, _ := Resolve(FormatRGBA8, FormatRGBAPremul)
	if got, want := p.String(), "RGBA8 -> RGBAPremul (Direct)"; got != want {
		t.Errorf("ConversionPath.String() = %q, want %q", got, want)
	}
}

func TestFastPathsDistinct(t *testing.T) {
	seen := make(map[[2]Format]bool)
	for _, fp := range fastPaths {
		k := [2]Format{fp.src, fp.dst}
		if seen[k] {
			t.Errorf("duplicate fast path %s -> %s", fp.src, fp.dst)
		}
		seen[k] = true
		if fp.src == fp.dst {
			t.Errorf("fast path on identity pair %s", fp.src)
		}
		if fp.span == nil {
			t.Errorf("fast path %s -> %s has no span kernel", fp.src, fp.dst)
		}
	}
}

func BenchmarkConvertBuffer(b *testing.B) {
	benchmarks := []struct {
		src, dst Format
	}{
		{FormatRGBA8, FormatBGRA8},
		{FormatRGBA8, FormatRGBAPremul},
		{FormatRGBAPremul, FormatRGBA8},
		{FormatRGBA8, FormatRGBA32F},
		{FormatRGBA32F, FormatRGBA8},
		{FormatRGBA8, FormatARGB8},
		{FormatRGB16F, FormatRGBA8},
	}

	const count = 4096
	for _, bm := range benchmarks {
		b.Run(bm.src.String()+"->"+bm.dst.String(), func(b *testing.B) {
			src := randomPixels(bm.src, count, 1)
			dst := make([]byte, count*bm.dst.BytesPerPixel())
			b.SetBytes(int64(len(src)))
			b.ReportAllocs()
			for b.Loop() {
				_ = ConvertBuffer(bm.src, bm.dst, src, dst, count)
			}
		})
	}
}
