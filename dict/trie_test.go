package dict

import "testing"

func TestTrieMatchEmitsIntermediateAndTerminalHits(t *testing.T) {
	tr := NewTrie()
	tr.Insert([]rune("一二"))
	tr.Insert([]rune("一二三"))

	buf := []rune("一二三四")
	hits := tr.Match(buf, 0, len(buf))

	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2: %+v", len(hits), hits)
	}
	if hits[0].Begin != 0 || hits[0].End != 1 || !hits[0].IsMatch() {
		t.Errorf("hit[0] = %+v, want MATCH 一二", hits[0])
	}
	if hits[1].Begin != 0 || hits[1].End != 2 || !hits[1].IsMatch() {
		t.Errorf("hit[1] = %+v, want MATCH 一二三", hits[1])
	}
	// hits must be strictly increasing in End.
	if hits[1].End <= hits[0].End {
		t.Errorf("hits not strictly increasing in End: %+v", hits)
	}
}

func TestTrieMatchNoWordPresent(t *testing.T) {
	tr := NewTrie()
	tr.Insert([]rune("中国"))

	buf := []rune("美国")
	hits := tr.Match(buf, 0, len(buf))
	for _, h := range hits {
		if h.IsMatch() {
			t.Errorf("unexpected MATCH hit for absent word: %+v", h)
		}
	}
}

func TestTrieDeleteRetainsStructure(t *testing.T) {
	tr := NewTrie()
	tr.Insert([]rune("十八日"))
	tr.Insert([]rune("十八"))

	if !tr.Exist([]rune("十八")) {
		t.Fatal("十八 should exist before delete")
	}
	if !tr.Delete([]rune("十八")) {
		t.Fatal("Delete should report success for an existing word")
	}
	if tr.Exist([]rune("十八")) {
		t.Fatal("十八 should no longer be a complete word after delete")
	}
	// Structure survives: 十八日 must still match, since delete only clears
	// the final-state flag on 十八's node rather than removing it.
	if !tr.Exist([]rune("十八日")) {
		t.Fatal("十八日 must still exist after deleting the shorter 十八")
	}
}

func TestTrieMatchOutOfRange(t *testing.T) {
	tr := NewTrie()
	tr.Insert([]rune("中国"))
	buf := []rune("中")
	if hits := tr.Match(buf, 0, 5); hits != nil {
		t.Errorf("Match with length beyond buffer should return nil, got %+v", hits)
	}
}
