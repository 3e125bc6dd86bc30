package wide

// BatchPixels is the number of pixels a BatchState holds.
const BatchPixels = 16

// BatchState holds 16 four-channel 8-bit pixels in SoA layout.
// C0..C2 are the color channels in memory order, A is the fourth byte.
type BatchState struct {
	C0, C1, C2, A U16x16
}

// Load reads 16 pixels (64 bytes) from src.
func (b *BatchState) Load(src []byte) {
	_ = src[63]
	for i := range BatchPixels {
		offset := i * 4
		b.C0[i] = uint16(src[offset+0])
		b.C1[i] = uint16(src[offset+1])
		b.C2[i] = uint16(src[offset+2])
		b.A[i] = uint16(src[offset+3])
	}
}

// Store writes 16 pixels (64 bytes) to dst.
func (b *BatchState) Store(dst []byte) {
	_ = dst[63]
	for i := range BatchPixels {
		offset := i * 4
		// Values are guaranteed to be in [0, 255]
		dst[offset+0] = uint8(b.C0[i]) // #nosec G115
		dst[offset+1] = uint8(b.C1[i]) // #nosec G115
		dst[offset+2] = uint8(b.C2[i]) // #nosec G115
		dst[offset+3] = uint8(b.A[i])  // #nosec G115
	}
}

// Premultiply multiplies the color channels by alpha.
func (b *BatchState) Premultiply() {
	b.C0 = b.C0.MulDiv255(b.A)
	b.C1 = b.C1.MulDiv255(b.A)
	b.C2 = b.C2.MulDiv255(b.A)
}

// Unpremultiply divides the color channels by alpha.
func (b *BatchState) Unpremultiply() {
	b.C0 = b.C0.Unmultiply(b.A)
	b.C1 = b.C1.Unmultiply(b.A)
	b.C2 = b.C2.Unmultiply(b.A)
}

// SwapC0C2 exchanges the first and third channel (RGBA <-> BGRA).
func (b *BatchState) SwapC0C2() {
	b.C0, b.C2 = b.C2, b.C0
}
