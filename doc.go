// Package pixfmt converts pixels between in-memory layouts.
//
// # Overview
//
// pixfmt knows 18 pixel formats: 8-bit, packed 16-bit, half-float and
// float32 layouts with gray, RGB or RGBA channels, straight or
// premultiplied alpha. Every format describes itself through [FormatInfo]
// and converts to every other format it can be encoded into.
//
// # Quick Start
//
//	import "github.com/gogpu/pixfmt"
//
//	// One pixel
//	out, err := pixfmt.ConvertPixel(pixfmt.FormatRGBA8, pixfmt.FormatRGBAPremul,
//		[]byte{255, 0, 0, 128}) // {128, 0, 0, 128}
//
//	// A whole buffer
//	dst := make([]byte, n*pixfmt.FormatRGBA32F.BytesPerPixel())
//	err = pixfmt.ConvertBuffer(pixfmt.FormatBGRA8, pixfmt.FormatRGBA32F, src, dst, n)
//
// # Architecture
//
// Conversions go through one of two hubs: an 8-bit straight RGBA color for
// integer formats and a float32 straight RGBA color for float formats. Each
// format only knows how to decode to and encode from its hub. Any pair is
// then a decode followed by an encode, crossing hubs when needed.
//
// Frequently used pairs get a direct formula and a batched kernel that
// processes 16 pixels at a time. These produce exactly the bytes the hub
// path produces; they only change speed.
//
// The (source, destination) dispatch table is built once when the package
// is initialised and is read-only afterwards, so every function here is safe
// for concurrent use.
//
// # Rounding
//
// All integer arithmetic rounds half up. Premultiplication computes
// c*a/255; unpremultiplication computes c*255/a saturated at 255, and alpha
// zero always produces all-zero channels. Float to 8-bit quantisation is
// v*255+0.5 truncated, with NaN and negative values mapping to 0.
//
// # Capabilities
//
// Gray16, GrayF32, BGRA5551 and BGRA4444 are decode-only: they can be
// converted from but not into (except to themselves). Use
// [IsConversionSupported] or [SupportMatrix] to check a pair before doing
// any work; unsupported pairs fail with an error matching
// [ErrUnsupportedConversion].
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to receive debug
// records for buffer conversions.
package pixfmt

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
