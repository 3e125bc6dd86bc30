package pixfmt

import "github.com/gogpu/pixfmt/internal/color"

// PathKind classifies how a conversion pair is computed.
type PathKind uint8

const (
	// PathUnsupported means no formula exists for the pair.
	PathUnsupported PathKind = iota
	// PathIdentity is a raw byte copy.
	PathIdentity
	// PathDirect is a specialized formula, bit-identical to the hub path.
	PathDirect
	// PathHub converts through a single shared hub.
	PathHub
	// PathCrossHub converts through both hubs.
	PathCrossHub
)

// String returns a string representation of the path kind.
func (k PathKind) String() string {
	switch k {
	case PathUnsupported:
		return "Unsupported"
	case PathIdentity:
		return "Identity"
	case PathDirect:
		return "Direct"
	case PathHub:
		return "Hub"
	case PathCrossHub:
		return "CrossHub"
	default:
		return "Unknown"
	}
}

// ConversionPath is a resolved (source, destination) pair.
type ConversionPath struct {
	Src, Dst Format
	Kind     PathKind
}

// String returns e.g. "RGBA8 -> RGBAPremul (Direct)".
func (p ConversionPath) String() string {
	return p.Src.String() + " -> " + p.Dst.String() + " (" + p.Kind.String() + ")"
}

// pixelFunc converts exactly one pixel. dst and src hold one pixel each.
type pixelFunc func(dst, src []byte)

// spanFunc converts a leading run of count pixels in whole batches and
// returns how many pixels it completed.
type spanFunc func(dst, src []byte, count int) int

type conversion struct {
	kind  PathKind
	pixel pixelFunc
	span  spanFunc
}

// dispatchTable maps every ordered pair to its conversion. It is built once
// at package initialisation and never written afterwards.
var dispatchTable = buildDispatchTable()

func buildDispatchTable() *[formatCount][formatCount]conversion {
	var t [formatCount][formatCount]conversion
	for s := range formatCount {
		for d := range formatCount {
			src, dst := Format(s), Format(d)
			if src == dst {
				n := src.BytesPerPixel()
				t[s][d] = conversion{
					kind:  PathIdentity,
					pixel: func(dp, sp []byte) { copy(dp[:n], sp[:n]) },
				}
				continue
			}
			if fn, kind := hubPixelFunc(src, dst); fn != nil {
				t[s][d] = conversion{kind: kind, pixel: fn}
			}
		}
	}
	for _, fp := range fastPaths {
		c := &t[fp.src][fp.dst]
		if c.kind == PathUnsupported {
			// A direct formula never widens the capability matrix.
			panic("pixfmt: fast path for unsupported pair " + fp.src.String() + " -> " + fp.dst.String())
		}
		c.kind = PathDirect
		if fp.pixel != nil {
			c.pixel = fp.pixel
		}
		c.span = fp.span
	}
	return &t
}

// hubPixelFunc composes src's decoder with dst's encoder through the hubs.
// It returns nil when dst cannot be encoded.
func hubPixelFunc(src, dst Format) (pixelFunc, PathKind) {
	s, d := &codecs[src], &codecs[dst]
	if !d.canEncode() {
		return nil, PathUnsupported
	}

	switch {
	case s.hub == hubU8 && d.hub == hubU8:
		dec, enc := s.decodeU8, d.encodeU8
		return func(dp, sp []byte) { enc(dp, dec(sp)) }, PathHub
	case s.hub == hubF32 && d.hub == hubF32:
		dec, enc := s.decodeF32, d.encodeF32
		return func(dp, sp []byte) { enc(dp, dec(sp)) }, PathHub
	case s.hub == hubU8:
		dec, enc := s.decodeU8, d.encodeF32
		return func(dp, sp []byte) { enc(dp, color.U8ToF32(dec(sp))) }, PathCrossHub
	default:
		dec, enc := s.decodeF32, d.encodeU8
		return func(dp, sp []byte) { enc(dp, color.F32ToU8(dec(sp))) }, PathCrossHub
	}
}

// lookup returns the conversion for a pair or a typed error.
func lookup(src, dst Format) (*conversion, error) {
	if !src.IsValid() || !dst.IsValid() {
		return nil, &ConversionError{Src: src, Dst: dst}
	}
	c := &dispatchTable[src][dst]
	if c.kind == PathUnsupported {
		return nil, &ConversionError{Src: src, Dst: dst}
	}
	return c, nil
}

// IsConversionSupported reports whether src can be converted to dst.
// The answer depends only on the pair, never on pixel data, so callers can
// check before doing any per-pixel work.
func IsConversionSupported(src, dst Format) bool {
	_, err := lookup(src, dst)
	return err == nil
}

// Resolve returns how a pair is converted, or a *ConversionError.
func Resolve(src, dst Format) (ConversionPath, error) {
	c, err := lookup(src, dst)
	if err != nil {
		return ConversionPath{Src: src, Dst: dst}, err
	}
	return ConversionPath{Src: src, Dst: dst, Kind: c.kind}, nil
}

// SupportMatrix returns m where m[src][dst] reports IsConversionSupported.
func SupportMatrix() [][]bool {
	m := make([][]bool, formatCount)
	for s := range m {
		m[s] = make([]bool, formatCount)
		for d := range m[s] {
			m[s][d] = dispatchTable[s][d].kind != PathUnsupported
		}
	}
	return m
}

// IsDecodeOnly reports whether f can be a conversion source but never a
// destination (other than itself).
func IsDecodeOnly(f Format) bool {
	return f.IsValid() && !codecs[f].canEncode()
}
