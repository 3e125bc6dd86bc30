package color

// unorm8ToF32LUT maps a byte v to float32(v)/255.
// Entries are computed with the same float32 expression the scalar path
// would use, so table and arithmetic agree bit for bit.
var unorm8ToF32LUT = func() [256]float32 {
	var t [256]float32
	for i := range t {
		t[i] = float32(i) / 255
	}
	return t
}()

// Unorm8ToF32 converts a byte [0,255] to float32 [0,1] using a lookup table.
func Unorm8ToF32(v uint8) float32 {
	return unorm8ToF32LUT[v]
}

// Unorm8Table returns the byte-to-float table for batch kernels that index
// it directly. The returned pointer must not be written through.
func Unorm8Table() *[256]float32 {
	return &unorm8ToF32LUT
}
