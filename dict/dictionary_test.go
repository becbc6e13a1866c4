package dict

import "testing"

func TestNewDefaultLoadsEmbeddedWords(t *testing.T) {
	d := NewDefault()
	buf := []rune("我家的后面有")
	hits := d.MatchMain(buf, 0, len(buf))
	var gotWoJia bool
	for _, h := range hits {
		if h.IsMatch() && h.Begin == 0 && h.End == 1 {
			gotWoJia = true
		}
	}
	if !gotWoJia {
		t.Fatalf("expected 我家 to match from the embedded main dictionary, hits=%+v", hits)
	}
}

func TestIsStopWord(t *testing.T) {
	d := NewDefault()
	buf := []rune("is")
	if !d.IsStopWord(buf, 0, 2) {
		t.Error("'is' should be a stop word")
	}
	buf2 := []rune("issue")
	if d.IsStopWord(buf2, 0, 5) {
		t.Error("'issue' should not be a stop word")
	}
}

func TestAddWordsThenDisableWords(t *testing.T) {
	d := New()
	d.AddWords("中国")
	buf := []rune("中国人")
	hits := d.MatchMain(buf, 0, len(buf))
	found := false
	for _, h := range hits {
		if h.IsMatch() && h.Begin == 0 && h.End == 1 {
			found = true
		}
	}
	if !found {
		t.Fatal("中国 should match after AddWords")
	}

	d.DisableWords("中国")
	hits = d.MatchMain(buf, 0, len(buf))
	for _, h := range hits {
		if h.IsMatch() && h.Begin == 0 && h.End == 1 {
			t.Fatal("中国 should no longer match after DisableWords")
		}
	}
}

func TestLoadMainMissingFile(t *testing.T) {
	d := New()
	if err := d.LoadMain("/nonexistent/path/does-not-exist.dic"); err == nil {
		t.Fatal("expected a LoadError for a missing dictionary file")
	}
}
