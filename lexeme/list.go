package lexeme

import "sort"

// List is a sorted container of Lexemes in natural order (see Lexeme.Less).
// It aggregates sub-segmenter output and dedups lexemes that are equal by
// (offset, begin, length) on insertion, matching the source's ordered
// linked list, re-expressed here as a sorted slice per SPEC_FULL/DESIGN.md.
type List struct {
	items []Lexeme
}

// NewList returns an empty ordered list.
func NewList() *List { return &List{} }

// Insert adds l to the list in sorted position, dropping it if an equal
// lexeme (same offset/begin/length) is already present.
func (lst *List) Insert(l Lexeme) {
	i := sort.Search(len(lst.items), func(i int) bool { return !lst.items[i].Less(l) })
	if i < len(lst.items) && lst.items[i].Equal(l) {
		return
	}
	lst.items = append(lst.items, Lexeme{})
	copy(lst.items[i+1:], lst.items[i:])
	lst.items[i] = l
}

// InsertAll inserts every lexeme in ls.
func (lst *List) InsertAll(ls []Lexeme) {
	for _, l := range ls {
		lst.Insert(l)
	}
}

// Items returns the list's contents in sorted order. The returned slice
// must not be mutated by the caller.
func (lst *List) Items() []Lexeme { return lst.items }

// Len returns the number of lexemes currently held.
func (lst *List) Len() int { return len(lst.items) }
