package wide

// U32x8 represents 8 uint32 values, typically packed ARGB pixels or the
// 8-bit channel values extracted from them.
type U32x8 [Lanes]uint32

// SplatU32 creates U32x8 with all elements set to n.
func SplatU32(n uint32) U32x8 {
	var result U32x8
	for i := range result {
		result[i] = n
	}
	return result
}

// Channel extracts the 8-bit channel starting at bit shift from each element.
func (v U32x8) Channel(shift uint) U32x8 {
	var result U32x8
	for i := range v {
		result[i] = (v[i] >> shift) & 0xFF
	}
	return result
}

// Lookup maps the 8-bit channel at bit shift of each element through lut.
// This is the gather used for table-driven channel decoding.
func (v U32x8) Lookup(lut *[256]float32, shift uint) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = lut[(v[i]>>shift)&0xFF]
	}
	return result
}

// ToF32 converts each element to float32.
func (v U32x8) ToF32() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = float32(v[i])
	}
	return result
}

// Eq sets the mask where v[i] == other[i].
func (v U32x8) Eq(other U32x8) M32x8 {
	var result M32x8
	for i := range v {
		if v[i] == other[i] {
			result[i] = laneOn
		}
	}
	return result
}

// PackARGB combines four channel vectors (each element in [0, 255]) into
// packed A<<24 | R<<16 | G<<8 | B pixels.
func PackARGB(a, r, g, b U32x8) U32x8 {
	var result U32x8
	for i := range result {
		result[i] = a[i]<<24 | r[i]<<16 | g[i]<<8 | b[i]
	}
	return result
}

// SelectU32 returns a where the mask is set and b elsewhere.
func (m M32x8) SelectU32(a, b U32x8) U32x8 {
	var result U32x8
	for i := range m {
		if m[i] != 0 {
			result[i] = a[i]
		} else {
			result[i] = b[i]
		}
	}
	return result
}

// StoreMasked writes the lanes whose mask is set to dst[i].
// Lanes with a clear mask are never touched, so dst may be shorter than
// Lanes as long as every set lane indexes inside it.
func (v U32x8) StoreMasked(dst []uint32, m M32x8) {
	for i := range v {
		if m[i] != 0 {
			dst[i] = v[i]
		}
	}
}
