// Package arbitrator resolves overlapping candidate lexemes into per-group
// disambiguation paths: cross-group partitioning followed, in SEARCH mode,
// by forward/backtrack option enumeration scored by the path comparator.
package arbitrator

import (
	"sort"

	"github.com/aosen/ik/lexeme"
)

// Path is an ordered run of lexemes together with its span bookkeeping.
// Used two ways: as a "cross" accumulator (AddCross, lexemes may overlap,
// representing an unresolved ambiguity group) and as a disambiguation
// "option" (AddNotCross, lexemes are pairwise non-crossing).
type Path struct {
	Begin         int
	End           int
	PayloadLength int
	Lexemes       []lexeme.Lexeme
}

// New returns an empty Path.
func New() Path { return Path{Begin: -1, End: -1} }

// Empty reports whether the path holds no lexemes.
func (p *Path) Empty() bool { return len(p.Lexemes) == 0 }

// Size is the number of lexemes in the path (the "segment count" key of the
// path comparator).
func (p *Path) Size() int { return len(p.Lexemes) }

// Span is path_end - path_begin.
func (p *Path) Span() int {
	if p.Empty() {
		return 0
	}
	return p.End - p.Begin
}

// CheckCross reports whether l overlaps the path's current [Begin, End)
// span, or the path's span overlaps l's.
func (p *Path) CheckCross(l lexeme.Lexeme) bool {
	if p.Empty() {
		return false
	}
	lb, le := l.Begin, l.Begin+l.Length
	return (lb >= p.Begin && lb < p.End) || (p.Begin >= lb && p.Begin < le)
}

// AddCross appends l if the path is empty or l overlaps the current span,
// extending End to cover l and recomputing PayloadLength as the span. It
// reports whether the insert happened.
func (p *Path) AddCross(l lexeme.Lexeme) bool {
	if p.Empty() {
		p.Lexemes = append(p.Lexemes, l)
		p.Begin = l.Begin
		p.End = l.Begin + l.Length
		p.PayloadLength = l.Length
		return true
	}
	if !p.CheckCross(l) {
		return false
	}
	p.Lexemes = append(p.Lexemes, l)
	if end := l.Begin + l.Length; end > p.End {
		p.End = end
	}
	p.PayloadLength = p.End - p.Begin
	return true
}

// AddNotCross inserts l, in natural (begin asc, length desc) order, only if
// it does not overlap any lexeme already in the path, extending the path's
// [Begin, End) to include l. The path's lexeme list is kept sorted rather
// than append-ordered, since a backtrack replay can reintroduce an earlier
// lexeme after a later one is already present (see DESIGN.md — this
// mirrors the source's ordered-set-backed LexemePath).
func (p *Path) AddNotCross(l lexeme.Lexeme) bool {
	if p.Empty() {
		p.Lexemes = append(p.Lexemes, l)
		p.Begin = l.Begin
		p.End = l.Begin + l.Length
		p.PayloadLength = l.Length
		return true
	}
	if p.CheckCross(l) {
		return false
	}
	p.insertSorted(l)
	p.PayloadLength += l.Length
	p.Begin = p.Lexemes[0].Begin
	last := p.Lexemes[len(p.Lexemes)-1]
	p.End = last.Begin + last.Length
	return true
}

func (p *Path) insertSorted(l lexeme.Lexeme) {
	i := sort.Search(len(p.Lexemes), func(i int) bool { return !p.Lexemes[i].Less(l) })
	p.Lexemes = append(p.Lexemes, lexeme.Lexeme{})
	copy(p.Lexemes[i+1:], p.Lexemes[i:])
	p.Lexemes[i] = l
}

// RemoveTail pops the last lexeme from the path, reports it and whether
// there was one to pop.
func (p *Path) RemoveTail() (lexeme.Lexeme, bool) {
	if p.Empty() {
		return lexeme.Lexeme{}, false
	}
	tail := p.Lexemes[len(p.Lexemes)-1]
	p.Lexemes = p.Lexemes[:len(p.Lexemes)-1]
	if p.Empty() {
		p.Begin, p.End, p.PayloadLength = -1, -1, 0
		return tail, true
	}
	p.PayloadLength -= tail.Length
	newTail := p.Lexemes[len(p.Lexemes)-1]
	p.End = newTail.Begin + newTail.Length
	return tail, true
}

// XWeight is the product of each lexeme's length.
func (p *Path) XWeight() int {
	w := 1
	for _, l := range p.Lexemes {
		w *= l.Length
	}
	return w
}

// PWeight is the 1-based-positional-index-weighted sum of lexeme lengths.
func (p *Path) PWeight() int {
	w := 0
	for i, l := range p.Lexemes {
		w += (i + 1) * l.Length
	}
	return w
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	lexemes := append([]lexeme.Lexeme(nil), p.Lexemes...)
	p.Lexemes = lexemes
	return p
}
