package wide

// PixelBatch holds 8 source and 8 destination ARGB pixels for batch processing,
// together with the predicate deciding which lanes may be stored.
//
// Pixels stay packed (Array-of-Structures) until a blend splits them into
// per-channel lanes with Channel or Lookup (Structure-of-Arrays):
//
//	Src:   [ARGB0, ARGB1, ..., ARGB7]
//	Alpha: [A0, A1, ..., A7]
//	Red:   [R0, R1, ..., R7]
//
// Lanes beyond the loaded count hold zero pixels. They may be computed
// speculatively but Write is clear for them.
type PixelBatch struct {
	Src, Dst U32x8
	Write    M32x8
}

// Load copies up to Lanes pixels from src and dst and sets Write for the
// first n lanes. n is clamped to [0, Lanes] and to the slice lengths.
func (b *PixelBatch) Load(src, dst []uint32, n int) {
	n = min(n, Lanes, len(src), len(dst))
	n = max(n, 0)
	b.Src = U32x8{}
	b.Dst = U32x8{}
	copy(b.Src[:n], src)
	copy(b.Dst[:n], dst)
	b.Write = MaskFirst(n)
}

// Store writes v into dst for the lanes selected by Write.
func (b *PixelBatch) Store(dst []uint32, v U32x8) {
	v.StoreMasked(dst, b.Write)
}
