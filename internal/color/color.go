// Package color defines the two canonical hub representations every pixel
// format converts through, and the quantization rules between them.
//
// ColorU8 is the integer hub: 8 bits per channel, straight alpha.
// ColorF32 is the float hub: 32-bit float per channel, straight alpha,
// conventionally in [0,1].
package color

// ColorF32 represents a color with float32 components in [0,1].
// Alpha is straight (not premultiplied).
type ColorF32 struct {
	R, G, B, A float32
}

// ColorU8 represents a color with uint8 components in [0,255].
// Alpha is straight (not premultiplied).
type ColorU8 struct {
	R, G, B, A uint8
}
