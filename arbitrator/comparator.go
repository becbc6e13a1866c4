package arbitrator

// compare orders two paths by the six-key comparator of spec §3: payload
// length (larger preferred), segment count (fewer preferred), span (larger
// preferred), path end (larger preferred), X-weight (larger preferred),
// P-weight (larger preferred). It returns a negative number if a is
// preferred over b, positive if b is preferred, zero if every key ties.
func compare(a, b *Path) int {
	if d := a.PayloadLength - b.PayloadLength; d != 0 {
		return -d
	}
	if d := a.Size() - b.Size(); d != 0 {
		return d
	}
	if d := a.Span() - b.Span(); d != 0 {
		return -d
	}
	if d := a.End - b.End; d != 0 {
		return -d
	}
	if d := a.XWeight() - b.XWeight(); d != 0 {
		return -d
	}
	if d := a.PWeight() - b.PWeight(); d != 0 {
		return -d
	}
	return 0
}
