package pixfmt

import "strings"

// Channel is one scalar component of a pixel.
type Channel uint8

const (
	ChannelR Channel = 1 << iota
	ChannelG
	ChannelB
	ChannelA
	ChannelL // luminance
)

// ChannelSet is a bitmask of the channels a format stores.
type ChannelSet uint8

const (
	ChannelsA    = ChannelSet(ChannelA)
	ChannelsL    = ChannelSet(ChannelL)
	ChannelsRGB  = ChannelSet(ChannelR | ChannelG | ChannelB)
	ChannelsRGBA = ChannelSet(ChannelR | ChannelG | ChannelB | ChannelA)
)

// Has reports whether c is part of the set.
func (s ChannelSet) Has(c Channel) bool {
	return s&ChannelSet(c) != 0
}

// Count returns the number of channels in the set.
func (s ChannelSet) Count() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// String returns the channels in R, G, B, A, L order, e.g. "RGBA".
func (s ChannelSet) String() string {
	var sb strings.Builder
	for _, c := range []struct {
		ch   Channel
		name byte
	}{{ChannelR, 'R'}, {ChannelG, 'G'}, {ChannelB, 'B'}, {ChannelA, 'A'}, {ChannelL, 'L'}} {
		if s.Has(c.ch) {
			sb.WriteByte(c.name)
		}
	}
	if sb.Len() == 0 {
		return "None"
	}
	return sb.String()
}

// Domain is the numeric domain of a format's channels.
type Domain uint8

const (
	// DomainUnorm is an unsigned normalized integer [0, 2^bits-1].
	DomainUnorm Domain = iota
	// DomainFloat is IEEE floating point, conventionally [0,1].
	DomainFloat
)

// String returns a string representation of the domain.
func (d Domain) String() string {
	switch d {
	case DomainUnorm:
		return "Unorm"
	case DomainFloat:
		return "Float"
	default:
		return "Unknown"
	}
}

// AlphaMode describes how color channels relate to alpha.
type AlphaMode uint8

const (
	// AlphaNone means the format has no alpha channel; it decodes as opaque.
	AlphaNone AlphaMode = iota
	// AlphaStraight stores color independent of transparency.
	AlphaStraight
	// AlphaPremultiplied stores color multiplied by alpha.
	AlphaPremultiplied
)

// String returns a string representation of the alpha mode.
func (m AlphaMode) String() string {
	switch m {
	case AlphaNone:
		return "None"
	case AlphaStraight:
		return "Straight"
	case AlphaPremultiplied:
		return "Premultiplied"
	default:
		return "Unknown"
	}
}
