// Package wide provides SIMD-friendly lane types for batch pixel processing.
//
// This package implements fixed-width lane types (F32x8, U32x8, M32x8) that are
// designed to enable Go compiler auto-vectorization. By using fixed-size arrays
// and simple loops, these types allow the compiler to generate SIMD instructions
// on supported architectures (SSE, AVX, NEON) while the same code remains a
// portable scalar implementation everywhere else.
//
// # Lane Types
//
// F32x8: 8 float32 values for the linear-space blend math.
// U32x8: 8 uint32 values for packed ARGB pixels and 8-bit channel values.
// M32x8: 8 lane masks (all bits set or clear) produced by comparisons and
// consumed by Select and StoreMasked.
//
// # Numeric contract
//
// Every lane operation produces exactly the value the equivalent scalar
// float32 expression produces. Products are explicitly rounded to float32
// so the compiler never fuses a multiply with a following add, which keeps
// batched results bit-identical to a scalar reference.
//
// # Usage Example
//
//	// Blend 8 pixels, store only the lanes inside the rectangle
//	var b wide.PixelBatch
//	b.Load(src, dst, n)
//	out := blendLanes(&b)
//	out.StoreMasked(row, b.Write)
package wide

// Lanes is the number of pixels processed per batch.
const Lanes = 8
