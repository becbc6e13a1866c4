package arbitrator

import (
	"testing"

	"github.com/aosen/ik/lexeme"
)

func lex(begin, length int, typ lexeme.Type) lexeme.Lexeme {
	return lexeme.Lexeme{Begin: begin, Length: length, Type: typ}
}

func TestProcessSingleLexemeGroupKeptAsIs(t *testing.T) {
	candidates := []lexeme.Lexeme{lex(0, 2, lexeme.CNWord)}
	paths := Process(candidates, Search)
	p, ok := paths[0]
	if !ok || p.Size() != 1 {
		t.Fatalf("expected a single-lexeme path at 0, got %+v", paths)
	}
}

func TestProcessIndexModeKeepsOverlappingCandidates(t *testing.T) {
	// 百货公司(0,4) 百货(0,2) 公司(2,2) all overlap via the shared span.
	candidates := []lexeme.Lexeme{
		lex(0, 4, lexeme.CNWord),
		lex(0, 2, lexeme.CNWord),
		lex(2, 2, lexeme.CNWord),
	}
	paths := Process(candidates, Index)
	p := paths[0]
	if p.Size() != 3 {
		t.Fatalf("INDEX mode must keep every overlapping candidate, got %+v", p.Lexemes)
	}
}

func TestJudgePicksLargerEndOnTiedPrefix(t *testing.T) {
	// 考上(2,2) and 上了(3,2) overlap at position 3. Same payload/size/span;
	// 上了 has the larger path_end (5 vs 4) so it wins outright.
	group := []lexeme.Lexeme{lex(2, 2, lexeme.CNWord), lex(3, 2, lexeme.CNWord)}
	best := judge(group)
	if best.Size() != 1 || best.Lexemes[0].Begin != 3 {
		t.Fatalf("expected 上了(begin=3) to win, got %+v", best.Lexemes)
	}
}

func TestJudgePrefersLargerEndViaKeyFour(t *testing.T) {
	// 后面(3,2) and 面有(4,2) both single-segment with payload 2, span 2 —
	// but their path_end differs (5 vs 6), so 面有 wins outright on key 4
	// (larger path_end preferred). This never reaches a genuine six-key tie.
	group := []lexeme.Lexeme{lex(3, 2, lexeme.CNWord), lex(4, 2, lexeme.CNWord)}
	best := judge(group)
	if best.Size() != 1 || best.Lexemes[0].Begin != 4 {
		t.Fatalf("expected 面有(begin=4) to win on path_end, got %+v", best.Lexemes)
	}
}

func TestJudgeFirstWinsOnFullTie(t *testing.T) {
	// 十八日(0,3) as a plain CN word (main dict) and as a Count lexeme
	// (quantifier dict): identical Begin/Length, so every comparator key
	// ties (payload, size, span, end, X-weight, P-weight). The first
	// candidate built from the group — the CN word, since it leads the
	// begin-asc/length-desc-sorted group — must win, not the one produced
	// by the backtrack replay.
	group := []lexeme.Lexeme{lex(0, 3, lexeme.CNWord), lex(0, 3, lexeme.Count)}
	best := judge(group)
	if best.Size() != 1 || best.Lexemes[0].Type != lexeme.CNWord {
		t.Fatalf("expected the first-seen candidate (CNWord) to win the tie, got %+v", best.Lexemes)
	}
}

func TestJudgePrefersFewerSegmentsOnTiedPayload(t *testing.T) {
	// 百货公司(0,4) alone vs 百货(0,2)+公司(2,2): payload ties at 4, but the
	// single-segment option wins on segment count.
	group := []lexeme.Lexeme{
		lex(0, 4, lexeme.CNWord),
		lex(0, 2, lexeme.CNWord),
		lex(2, 2, lexeme.CNWord),
	}
	best := judge(group)
	if best.Size() != 1 || best.Lexemes[0].Length != 4 {
		t.Fatalf("expected the single 4-length lexeme to win, got %+v", best.Lexemes)
	}
}
