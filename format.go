package pixfmt

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
)

// Format identifies one of the supported in-memory pixel encodings.
//
// All multi-byte words are little-endian. The zero value is FormatAlpha8.
type Format uint8

const (
	// FormatAlpha8 is 8-bit alpha only (1 byte per pixel).
	// Decodes as black with the stored alpha.
	FormatAlpha8 Format = iota

	// FormatGray8 is 8-bit luminance (1 byte per pixel).
	FormatGray8

	// FormatGray16 is 16-bit luminance (2 bytes per pixel, LE uint16).
	FormatGray16

	// FormatGrayF32 is 32-bit float luminance (4 bytes per pixel).
	FormatGrayF32

	// FormatBGR565 is 16-bit packed RGB: blue in bits 0-4, green 5-10, red 11-15.
	FormatBGR565

	// FormatBGRA5551 is 16-bit packed RGBA: blue 0-4, green 5-9, red 10-14,
	// alpha in bit 15.
	FormatBGRA5551

	// FormatBGRA4444 is 16-bit packed RGBA: blue 0-3, green 4-7, red 8-11,
	// alpha 12-15.
	FormatBGRA4444

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// FormatBGR8 is 24-bit BGR (3 bytes per pixel, no alpha).
	FormatBGR8

	// FormatRGBA8 is 32-bit RGBA with straight alpha (4 bytes per pixel).
	// This is the canonical 8-bit layout.
	FormatRGBA8

	// FormatBGRA8 is 32-bit BGRA with straight alpha (4 bytes per pixel).
	// Common on Windows and some GPU formats.
	FormatBGRA8

	// FormatARGB8 is 32-bit ARGB with straight alpha, alpha byte first.
	FormatARGB8

	// FormatRGBAPremul is 32-bit RGBA with premultiplied alpha (4 bytes per pixel).
	FormatRGBAPremul

	// FormatBGRAPremul is 32-bit BGRA with premultiplied alpha (4 bytes per pixel).
	FormatBGRAPremul

	// FormatRGB16F is 48-bit RGB, IEEE half precision per channel (6 bytes per pixel).
	FormatRGB16F

	// FormatRGB32F is 96-bit RGB, float32 per channel (12 bytes per pixel).
	FormatRGB32F

	// FormatRGBA32F is 128-bit RGBA, float32 per channel, straight alpha.
	FormatRGBA32F

	// FormatRGBAPremul32F is 128-bit RGBA, float32 per channel, premultiplied alpha.
	FormatRGBAPremul32F

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo describes the memory layout and semantics of a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the storage width of one pixel.
	BytesPerPixel int

	// Channels is the set of channels stored.
	Channels ChannelSet

	// Domain is the numeric domain of the channels.
	Domain Domain

	// BitsPerChannel is the width of the widest channel.
	BitsPerChannel int

	// Alpha is the alpha convention.
	Alpha AlphaMode

	// Layout describes the channel order in memory.
	Layout string

	// Texture is the WebGPU texture format with the same storage layout,
	// or TextureFormatUndefined.
	Texture gputypes.TextureFormat
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatAlpha8: {
		BytesPerPixel:  1,
		Channels:       ChannelsA,
		Domain:         DomainUnorm,
		BitsPerChannel: 8,
		Alpha:          AlphaStraight,
		Layout:         "A",
		Texture:        gputypes.TextureFormatR8Unorm,
	},
	FormatGray8: {
		BytesPerPixel:  1,
		Channels:       ChannelsL,
		Domain:         DomainUnorm,
		BitsPerChannel: 8,
		Alpha:          AlphaNone,
		Layout:         "L",
		Texture:        gputypes.TextureFormatR8Unorm,
	},
	FormatGray16: {
		BytesPerPixel:  2,
		Channels:       ChannelsL,
		Domain:         DomainUnorm,
		BitsPerChannel: 16,
		Alpha:          AlphaNone,
		Layout:         "L (LE uint16)",
		Texture:        gputypes.TextureFormatR16Unorm,
	},
	FormatGrayF32: {
		BytesPerPixel:  4,
		Channels:       ChannelsL,
		Domain:         DomainFloat,
		BitsPerChannel: 32,
		Alpha:          AlphaNone,
		Layout:         "L (LE float32)",
		Texture:        gputypes.TextureFormatR32Float,
	},
	FormatBGR565: {
		BytesPerPixel:  2,
		Channels:       ChannelsRGB,
		Domain:         DomainUnorm,
		BitsPerChannel: 6,
		Alpha:          AlphaNone,
		Layout:         "B5:G6:R5 (LE uint16)",
	},
	FormatBGRA5551: {
		BytesPerPixel:  2,
		Channels:       ChannelsRGBA,
		Domain:         DomainUnorm,
		BitsPerChannel: 5,
		Alpha:          AlphaStraight,
		Layout:         "B5:G5:R5:A1 (LE uint16)",
	},
	FormatBGRA4444: {
		BytesPerPixel:  2,
		Channels:       ChannelsRGBA,
		Domain:         DomainUnorm,
		BitsPerChannel: 4,
		Alpha:          AlphaStraight,
		Layout:         "B4:G4:R4:A4 (LE uint16)",
	},
	FormatRGB8: {
		BytesPerPixel:  3,
		Channels:       ChannelsRGB,
		Domain:         DomainUnorm,
		BitsPerChannel: 8,
		Alpha:          AlphaNone,
		Layout:         "R,G,B",
	},
	FormatBGR8: {
		BytesPerPixel:  3,
		Channels:       ChannelsRGB,
		Domain:         DomainUnorm,
		BitsPerChannel: 8,
		Alpha:          AlphaNone,
		Layout:         "B,G,R",
	},
	FormatRGBA8: {
		BytesPerPixel:  4,
		Channels:       ChannelsRGBA,
		Domain:         DomainUnorm,
		BitsPerChannel: 8,
		Alpha:          AlphaStraight,
		Layout:         "R,G,B,A",
		Texture:        gputypes.TextureFormatRGBA8Unorm,
	},
	FormatBGRA8: {
		BytesPerPixel:  4,
		Channels:       ChannelsRGBA,
		Domain:         DomainUnorm,
		BitsPerChannel: 8,
		Alpha:          AlphaStraight,
		Layout:         "B,G,R,A",
		Texture:        gputypes.TextureFormatBGRA8Unorm,
	},
	FormatARGB8: {
		BytesPerPixel:  4,
		Channels:       ChannelsRGBA,
		Domain:         DomainUnorm,
		BitsPerChannel: 8,
		Alpha:          AlphaStraight,
		Layout:         "A,R,G,B",
	},
	FormatRGBAPremul: {
		BytesPerPixel:  4,
		Channels:       ChannelsRGBA,
		Domain:         DomainUnorm,
		BitsPerChannel: 8,
		Alpha:          AlphaPremultiplied,
		Layout:         "R,G,B,A",
		Texture:        gputypes.TextureFormatRGBA8Unorm,
	},
	FormatBGRAPremul: {
		BytesPerPixel:  4,
		Channels:       ChannelsRGBA,
		Domain:         DomainUnorm,
		BitsPerChannel: 8,
		Alpha:          AlphaPremultiplied,
		Layout:         "B,G,R,A",
		Texture:        gputypes.TextureFormatBGRA8Unorm,
	},
	FormatRGB16F: {
		BytesPerPixel:  6,
		Channels:       ChannelsRGB,
		Domain:         DomainFloat,
		BitsPerChannel: 16,
		Alpha:          AlphaNone,
		Layout:         "R,G,B (LE binary16)",
	},
	FormatRGB32F: {
		BytesPerPixel:  12,
		Channels:       ChannelsRGB,
		Domain:         DomainFloat,
		BitsPerChannel: 32,
		Alpha:          AlphaNone,
		Layout:         "R,G,B (LE float32)",
	},
	FormatRGBA32F: {
		BytesPerPixel:  16,
		Channels:       ChannelsRGBA,
		Domain:         DomainFloat,
		BitsPerChannel: 32,
		Alpha:          AlphaStraight,
		Layout:         "R,G,B,A (LE float32)",
		Texture:        gputypes.TextureFormatRGBA32Float,
	},
	FormatRGBAPremul32F: {
		BytesPerPixel:  16,
		Channels:       ChannelsRGBA,
		Domain:         DomainFloat,
		BitsPerChannel: 32,
		Alpha:          AlphaPremultiplied,
		Layout:         "R,G,B,A (LE float32)",
		Texture:        gputypes.TextureFormatRGBA32Float,
	},
}

var formatNames = [formatCount]string{
	FormatAlpha8:        "Alpha8",
	FormatGray8:         "Gray8",
	FormatGray16:        "Gray16",
	FormatGrayF32:       "GrayF32",
	FormatBGR565:        "BGR565",
	FormatBGRA5551:      "BGRA5551",
	FormatBGRA4444:      "BGRA4444",
	FormatRGB8:          "RGB8",
	FormatBGR8:          "BGR8",
	FormatRGBA8:         "RGBA8",
	FormatBGRA8:         "BGRA8",
	FormatARGB8:         "ARGB8",
	FormatRGBAPremul:    "RGBAPremul",
	FormatBGRAPremul:    "BGRAPremul",
	FormatRGB16F:        "RGB16F",
	FormatRGB32F:        "RGB32F",
	FormatRGBA32F:       "RGBA32F",
	FormatRGBAPremul32F: "RGBAPremul32F",
}

// Formats returns every supported format in declaration order.
func Formats() []Format {
	out := make([]Format, formatCount)
	for i := range out {
		out[i] = Format(i)
	}
	return out
}

// Describe returns the descriptor for f, or ErrInvalidFormat.
func Describe(f Format) (FormatInfo, error) {
	if !f.IsValid() {
		return FormatInfo{}, ErrInvalidFormat
	}
	return formatInfoTable[f], nil
}

// ParseFormat looks up a format by name, ignoring case.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if strings.EqualFold(n, name) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, name)
}

// Info returns the FormatInfo for this format.
// Invalid formats return the zero FormatInfo.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the storage width of one pixel.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// Channels returns the set of stored channels.
func (f Format) Channels() ChannelSet {
	return f.Info().Channels
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().Alpha != AlphaNone
}

// IsPremultiplied returns true if alpha is premultiplied.
func (f Format) IsPremultiplied() bool {
	return f.Info().Alpha == AlphaPremultiplied
}

// IsGrayscale returns true if this is a luminance format.
func (f Format) IsGrayscale() bool {
	return f.Info().Channels.Has(ChannelL)
}

// IsFloat returns true if channels are floating point.
func (f Format) IsFloat() bool {
	return f.IsValid() && f.Info().Domain == DomainFloat
}

// BitsPerChannel returns the width of the widest channel.
func (f Format) BitsPerChannel() int {
	return f.Info().BitsPerChannel
}

// TextureFormat returns the WebGPU texture format with the same storage
// layout. Premultiplication is not part of a texture format, so straight and
// premultiplied variants map to the same value.
func (f Format) TextureFormat() gputypes.TextureFormat {
	return f.Info().Texture
}

// FormatFromTexture returns the straight-alpha format that stores the given
// WebGPU texture format. R8Unorm maps to FormatGray8.
func FormatFromTexture(tf gputypes.TextureFormat) (Format, bool) {
	switch tf {
	case gputypes.TextureFormatR8Unorm:
		return FormatGray8, true
	case gputypes.TextureFormatR16Unorm:
		return FormatGray16, true
	case gputypes.TextureFormatR32Float:
		return FormatGrayF32, true
	case gputypes.TextureFormatRGBA8Unorm:
		return FormatRGBA8, true
	case gputypes.TextureFormatBGRA8Unorm:
		return FormatBGRA8, true
	case gputypes.TextureFormatRGBA32Float:
		return FormatRGBA32F, true
	default:
		return 0, false
	}
}

// String returns a string representation of the format.
func (f Format) String() string {
	if !f.IsValid() {
		return "Unknown"
	}
	return formatNames[f]
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// PremultipliedVersion returns the premultiplied version of this format.
// Returns the same format if already premultiplied or no variant exists.
func (f Format) PremultipliedVersion() Format {
	switch f {
	case FormatRGBA8:
		return FormatRGBAPremul
	case FormatBGRA8:
		return FormatBGRAPremul
	case FormatRGBA32F:
		return FormatRGBAPremul32F
	default:
		return f
	}
}

// UnpremultipliedVersion returns the straight-alpha version of this format.
// Returns the same format if already straight or has no alpha.
func (f Format) UnpremultipliedVersion() Format {
	switch f {
	case FormatRGBAPremul:
		return FormatRGBA8
	case FormatBGRAPremul:
		return FormatBGRA8
	case FormatRGBAPremul32F:
		return FormatRGBA32F
	default:
		return f
	}
}
