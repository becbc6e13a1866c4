package ik

import (
	"testing"

	"github.com/aosen/ik/dict"
)

func texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

func assertTexts(t *testing.T, got []Token, want []string) {
	t.Helper()
	gotTexts := texts(got)
	if len(gotTexts) != len(want) {
		t.Fatalf("got %v, want %v", gotTexts, want)
	}
	for i := range want {
		if gotTexts[i] != want[i] {
			t.Fatalf("got %v, want %v", gotTexts, want)
		}
	}
}

func TestScenario1Normalization(t *testing.T) {
	d := dict.NewDefault()
	tok := New(d, ModeIndex)
	got := tok.TokenStream("Ａｄｅ")
	assertTexts(t, got, []string{"Ade"})
}

func TestScenario2ChineseQuantifier(t *testing.T) {
	d := dict.NewDefault()
	text := "一二三四五六七八九十"

	index := New(d, ModeIndex).TokenStream(text)
	assertTexts(t, index, []string{
		"一二三四五六七八九十", "二三", "四五", "六七", "七八", "八九", "十",
	})

	search := New(d, ModeSearch).TokenStream(text)
	assertTexts(t, search, []string{"一二三四五六七八九十"})
}

func TestScenario3StopWords(t *testing.T) {
	d := dict.NewDefault()
	tok := New(d, ModeIndex)
	got := tok.TokenStream("is：issue：feed")
	assertTexts(t, got, []string{"issue", "feed"})
}

func TestScenario4GapAndOverlap(t *testing.T) {
	d := dict.NewDefault()
	text := "我家的后面有"

	index := New(d, ModeIndex).TokenStream(text)
	assertTexts(t, index, []string{"我家", "的", "后面", "面有"})

	search := New(d, ModeSearch).TokenStream(text)
	assertTexts(t, search, []string{"我家", "的", "后", "面有"})
}

// scenario5Dict layers the single-character entries the full-sentence
// ground-truth corpus expects (百, 货, 我, 们, 有) on top of the default
// dictionary. These are deliberately NOT part of the embedded default word
// list: scenario4's smaller-dictionary case expects no standalone "我"
// lexeme crossing "我家", so the two scenarios are exercised against
// different dictionary content, same as upstream's own test fixtures.
func scenario5Dict() *dict.Dictionary {
	d := dict.NewDefault()
	d.AddWords("百", "货", "我", "们", "有")
	return d
}

func TestScenario5MultiSentenceSearch(t *testing.T) {
	d := scenario5Dict()
	text := "张华考上了北京大学；李萍进了中等技术学校；我在百货公司当售货员：我们都有光明的前途"
	got := New(d, ModeSearch).TokenStream(text)
	assertTexts(t, got, []string{
		"张华", "考", "上了", "北京大学", "李萍", "进了", "中等", "技术学校",
		"我", "在", "百货公司", "当", "售货员", "我们", "都有", "光明", "的", "前途",
	})
}

func TestScenario5MultiSentenceIndex(t *testing.T) {
	d := scenario5Dict()
	text := "张华考上了北京大学；李萍进了中等技术学校；我在百货公司当售货员：我们都有光明的前途"
	got := New(d, ModeIndex).TokenStream(text)
	assertTexts(t, got, []string{
		"张华", "考上", "上了", "北京大学", "北京大", "北京", "大学",
		"李萍", "进了", "中等", "技术学校", "技术", "学校",
		"我", "在", "百货公司", "百货", "百", "货", "公司",
		"当", "售货员", "售货", "货员", "货", "员",
		"我们", "我", "们", "都有", "有", "光明", "的", "前途",
	})
}

func TestScenario6MixedLetters(t *testing.T) {
	d := dict.NewDefault()
	got := New(d, ModeSearch).TokenStream("Lark Search 综搜质量小分队")
	assertTexts(t, got, []string{"Lark", "Search", "综", "搜", "质量", "小分队"})
}

// TestTokenOffsetsAlignToByteBoundaries exercises P3: offset_from < offset_to
// and both land on UTF-8 rune boundaries of the normalized text.
func TestTokenOffsetsAlignToByteBoundaries(t *testing.T) {
	d := dict.NewDefault()
	got := New(d, ModeSearch).TokenStream("我家的后面有")
	for _, tok := range got {
		if tok.OffsetFrom >= tok.OffsetTo {
			t.Errorf("token %+v has OffsetFrom >= OffsetTo", tok)
		}
		if len(tok.Text) != tok.OffsetTo-tok.OffsetFrom {
			t.Errorf("token %+v text byte length mismatch with offsets", tok)
		}
	}
}

// TestTokensNonDecreasingPosition exercises P1.
func TestTokensNonDecreasingPosition(t *testing.T) {
	d := dict.NewDefault()
	got := New(d, ModeIndex).TokenStream("张华考上了北京大学")
	prev := -1
	for _, tok := range got {
		if tok.Position < prev {
			t.Fatalf("position went backwards: %+v", got)
		}
		prev = tok.Position
	}
}

// TestSearchModeTokensDoNotOverlap exercises P6.
func TestSearchModeTokensDoNotOverlap(t *testing.T) {
	d := dict.NewDefault()
	got := New(d, ModeSearch).TokenStream("张华考上了北京大学；李萍进了中等技术学校")
	for i := 1; i < len(got); i++ {
		if got[i].Position < got[i-1].Position+got[i-1].PositionLength {
			t.Fatalf("overlapping tokens in SEARCH mode: %+v and %+v", got[i-1], got[i])
		}
	}
}

// TestNoStopWordSurvives exercises P4.
func TestNoStopWordSurvives(t *testing.T) {
	d := dict.NewDefault()
	got := New(d, ModeIndex).TokenStream("is：issue：feed")
	for _, tok := range got {
		if tok.Text == "is" {
			t.Fatalf("stop word 'is' survived in output: %+v", got)
		}
	}
}

// TestKnownAmbiguousWordsAreDocumentedNotFixed records one of the two cases
// spec.md §9 calls out as known ambiguity-resolution divergences: 十八日,
// which the embedded word lists carry in both the main and the quantifier
// dictionary (一两天, the other case, is in neither list and is not
// exercised here). This test only asserts that the tokenizer produces at
// least one token and non-overlapping SEARCH output over the input — it
// intentionally does not assert which specific split is chosen.
func TestKnownAmbiguousWordsAreDocumentedNotFixed(t *testing.T) {
	d := dict.NewDefault()
	got := New(d, ModeSearch).TokenStream("十八日天气晴")
	if len(got) == 0 {
		t.Fatal("expected at least one token")
	}
	for i := 1; i < len(got); i++ {
		if got[i].Position < got[i-1].Position+got[i-1].PositionLength {
			t.Fatalf("SEARCH output must still be non-overlapping even for the ambiguous case: %+v", got)
		}
	}
}
