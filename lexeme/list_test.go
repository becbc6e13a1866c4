package lexeme

import "testing"

func TestListSortsAndDedups(t *testing.T) {
	lst := NewList()
	lst.Insert(Lexeme{Begin: 2, Length: 1, Type: CNChar})
	lst.Insert(Lexeme{Begin: 0, Length: 2, Type: CNWord})
	lst.Insert(Lexeme{Begin: 0, Length: 1, Type: CNChar})
	lst.Insert(Lexeme{Begin: 0, Length: 2, Type: CNWord}) // duplicate, dropped

	items := lst.Items()
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3: %+v", len(items), items)
	}
	// begin asc, ties broken by length desc.
	if items[0].Begin != 0 || items[0].Length != 2 {
		t.Errorf("items[0] = %+v, want begin=0 length=2", items[0])
	}
	if items[1].Begin != 0 || items[1].Length != 1 {
		t.Errorf("items[1] = %+v, want begin=0 length=1", items[1])
	}
	if items[2].Begin != 2 {
		t.Errorf("items[2] = %+v, want begin=2", items[2])
	}
}

func TestLexemeEquality(t *testing.T) {
	a := Lexeme{Offset: 0, Begin: 1, Length: 2, Type: CNWord}
	b := Lexeme{Offset: 0, Begin: 1, Length: 2, Type: CNChar}
	if !a.Equal(b) {
		t.Error("lexemes with equal (offset, begin, length) must be Equal regardless of Type")
	}
}
