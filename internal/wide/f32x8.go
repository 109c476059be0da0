package wide

import "math"

// F32x8 represents 8 float32 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
type F32x8 [Lanes]float32

// SplatF32 creates F32x8 with all elements set to n.
// This is useful for initializing constants or broadcasting a single value.
func SplatF32(n float32) F32x8 {
	var result F32x8
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs element-wise addition.
func (v F32x8) Add(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v F32x8) Sub(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
// Each product is rounded to float32 before it is stored.
func (v F32x8) Mul(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = float32(v[i] * other[i])
	}
	return result
}

// Recip computes 1/v for each element.
// Zero lanes produce +Inf according to IEEE 754; callers mask them out.
func (v F32x8) Recip() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = 1 / v[i]
	}
	return result
}

// Sqrt computes square root of each element.
// Negative values result in NaN according to IEEE 754.
func (v F32x8) Sqrt() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = float32(math.Sqrt(float64(v[i])))
	}
	return result
}

// Clamp clamps each element to [minVal, maxVal].
func (v F32x8) Clamp(minVal, maxVal float32) F32x8 {
	var result F32x8
	for i := range v {
		switch {
		case v[i] < minVal:
			result[i] = minVal
		case v[i] > maxVal:
			result[i] = maxVal
		default:
			result[i] = v[i]
		}
	}
	return result
}

// Gt compares element-wise and sets the mask where v[i] > other[i].
func (v F32x8) Gt(other F32x8) M32x8 {
	var result M32x8
	for i := range v {
		if v[i] > other[i] {
			result[i] = laneOn
		}
	}
	return result
}

// Trunc converts each element to uint32, truncating toward zero.
// Elements must be non-negative and fit in uint32.
func (v F32x8) Trunc() U32x8 {
	var result U32x8
	for i := range v {
		result[i] = uint32(v[i])
	}
	return result
}

// Select returns a where the mask is set and b elsewhere.
func (m M32x8) Select(a, b F32x8) F32x8 {
	var result F32x8
	for i := range m {
		if m[i] != 0 {
			result[i] = a[i]
		} else {
			result[i] = b[i]
		}
	}
	return result
}
