package domain

// Tour is an ordered visiting sequence over a set of points, anchored by an
// implicit start location that precedes the first element. A Tour built from
// an input set S is always a permutation of S: every point appears exactly
// once.
type Tour []*Point

// Clone returns an independent copy of the ordering. The points themselves
// are shared, not duplicated.
func (t Tour) Clone() Tour {
	out := make(Tour, len(t))
	copy(out, t)
	return out
}

// AnchoredLength is the total geometric tour length in meters, including the
// leg from the start anchor to the first stop.
func (t Tour) AnchoredLength(start Coordinates) float64 {
	if len(t) == 0 {
		return 0
	}

	total := Haversine(start, t[0].Coord)
	for i := 0; i < len(t)-1; i++ {
		total += Haversine(t[i].Coord, t[i+1].Coord)
	}
	return total
}
