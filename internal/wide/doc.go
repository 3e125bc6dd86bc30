// Package wide provides SIMD-friendly wide types and the batched pixel
// kernels behind pixfmt's bulk fast paths.
//
// The wide types (U16x16, F32x8) are fixed-size arrays processed with simple
// loops so the Go compiler can auto-vectorize them. No assembly and no unsafe.
//
// # Kernels
//
// Every kernel handles whole batches only and reports how much of the input
// it consumed. The caller finishes the tail with the scalar per-pixel
// converter. Kernels call the same arithmetic as the scalar path
// (internal/premul, internal/color), so a batched conversion is bit-identical
// to converting pixel by pixel.
//
// # BatchState
//
// BatchState holds 16 four-channel 8-bit pixels in Structure-of-Arrays
// layout:
//
//	AoS: [C0 C1 C2 A][C0 C1 C2 A]...
//	SoA: C0[16] C1[16] C2[16] A[16]
//
// The kernels are channel-order agnostic: RGBA and BGRA both keep alpha in
// the fourth byte, so the same kernel serves both.
package wide
