package pixel

// ChangeDetector decides whether a frame must be rendered again.
//
// Changed summarizes everything that can affect the rendered pixels of a
// frame and compares it to the frame seen before the last Swap. Swap is
// called exactly once at the end of every Render, whether or not the frame
// was drawn. A grid-of-cells scheme can implement this interface without
// changing the compositor or the blit.
type ChangeDetector interface {
	Changed(cmds []Command, width, height int) bool
	Swap()
}

// FNV-1a 32-bit parameters.
const (
	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619
)

// FrameHash computes a 32-bit FNV-1a hash over the physical dimensions and
// every field of every command, in submission order. Integers are fed
// little-endian, one byte at a time: width and height (8 bytes each), then
// per command Rect.Min.X, Rect.Min.Y, Rect.Max.X, Rect.Max.Y, Sprite.X,
// Sprite.Y (8 bytes each) and Tint (4 bytes).
//
// The hash is for change detection only; it is not collision resistant.
func FrameHash(cmds []Command, width, height int) uint32 {
	h := uint32(fnvOffset32)
	h = hashInt(h, width)
	h = hashInt(h, height)
	for i := range cmds {
		h = hashCommand(h, &cmds[i])
	}
	return h
}

func hashCommand(h uint32, c *Command) uint32 {
	h = hashInt(h, c.Rect.Min.X)
	h = hashInt(h, c.Rect.Min.Y)
	h = hashInt(h, c.Rect.Max.X)
	h = hashInt(h, c.Rect.Max.Y)
	h = hashInt(h, c.Sprite.X)
	h = hashInt(h, c.Sprite.Y)
	return hashUint32(h, uint32(c.Tint))
}

func hashInt(h uint32, v int) uint32 {
	u := uint64(v)
	for i := 0; i < 8; i++ {
		h ^= uint32(u & 0xFF)
		h *= fnvPrime32
		u >>= 8
	}
	return h
}

func hashUint32(h, v uint32) uint32 {
	for i := 0; i < 4; i++ {
		h ^= v & 0xFF
		h *= fnvPrime32
		v >>= 8
	}
	return h
}

// hashState is the whole-frame ChangeDetector. It keeps two hash slots and a
// flip flag selecting which one is current, so the previous frame's hash is
// available until Swap rotates the roles at the end of the frame.
type hashState struct {
	slots  [2]uint32
	flip   bool
	primed bool // previous slot holds a real frame hash
}

// NewFrameHashDetector returns the default whole-frame ChangeDetector.
func NewFrameHashDetector() ChangeDetector {
	return &hashState{}
}

func (s *hashState) cur() *uint32 {
	if s.flip {
		return &s.slots[1]
	}
	return &s.slots[0]
}

func (s *hashState) prev() *uint32 {
	if s.flip {
		return &s.slots[0]
	}
	return &s.slots[1]
}

// Changed resets the current slot to the hash of this frame and compares it
// with the previous slot. The first frame is always reported as changed.
func (s *hashState) Changed(cmds []Command, width, height int) bool {
	*s.cur() = FrameHash(cmds, width, height)
	return !s.primed || *s.cur() != *s.prev()
}

// Swap rotates the slots: the current hash becomes the previous one.
func (s *hashState) Swap() {
	s.flip = !s.flip
	s.primed = true
}
