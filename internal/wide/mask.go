package wide

const laneOn = ^uint32(0)

// M32x8 is a per-lane predicate. A lane is set when all of its bits are set.
type M32x8 [Lanes]uint32

// MaskFirst returns a mask with the first n lanes set.
func MaskFirst(n int) M32x8 {
	var result M32x8
	for i := range result {
		if i < n {
			result[i] = laneOn
		}
	}
	return result
}

// And returns the lane-wise conjunction.
func (m M32x8) And(other M32x8) M32x8 {
	var result M32x8
	for i := range m {
		result[i] = m[i] & other[i]
	}
	return result
}

// Or returns the lane-wise disjunction.
func (m M32x8) Or(other M32x8) M32x8 {
	var result M32x8
	for i := range m {
		result[i] = m[i] | other[i]
	}
	return result
}

// Not inverts every lane.
func (m M32x8) Not() M32x8 {
	var result M32x8
	for i := range m {
		result[i] = ^m[i]
	}
	return result
}

// Any reports whether at least one lane is set.
func (m M32x8) Any() bool {
	var acc uint32
	for i := range m {
		acc |= m[i]
	}
	return acc != 0
}

// Lane reports whether lane i is set.
func (m M32x8) Lane(i int) bool {
	return m[i] != 0
}
