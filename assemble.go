package ik

import (
	"github.com/aosen/ik/arbitrator"
	"github.com/aosen/ik/charutil"
	"github.com/aosen/ik/dict"
	"github.com/aosen/ik/lexeme"
)

// assemble walks the buffer left to right, draining each position's
// resolved path (if any) in order and filling any CJK/OtherCJK gap between
// successive lexemes of the same path — or any uncovered position — with a
// single-character lexeme. Positions classified USELESS are skipped
// entirely; they never produce a lexeme.
func assemble(buffer []rune, paths map[int]*arbitrator.Path) []lexeme.Lexeme {
	var out []lexeme.Lexeme
	n := len(buffer)
	index := 0
	for index < n {
		if charutil.Classify(buffer[index]) == charutil.Useless {
			index++
			continue
		}
		if path, ok := paths[index]; ok {
			lexs := path.Lexemes
			for i, l := range lexs {
				out = append(out, l)
				index = l.Begin + l.Length
				if i+1 < len(lexs) {
					next := lexs[i+1]
					for index < next.Begin {
						out = append(out, gapLexeme(buffer, index)...)
						index++
					}
				}
			}
			continue
		}
		out = append(out, gapLexeme(buffer, index)...)
		index++
	}
	return out
}

func gapLexeme(buffer []rune, index int) []lexeme.Lexeme {
	switch charutil.Classify(buffer[index]) {
	case charutil.Chinese:
		return []lexeme.Lexeme{{Begin: index, Length: 1, Type: lexeme.CNChar}}
	case charutil.OtherCJK:
		return []lexeme.Lexeme{{Begin: index, Length: 1, Type: lexeme.OtherCJK}}
	default:
		return nil
	}
}

// compound merges adjacent ARABIC+CNUM/COUNT runs in SEARCH mode: an ARABIC
// lexeme immediately followed by a CNUM merges into a CNUM spanning both,
// immediately followed by a COUNT merges into a CQUAN; a CNUM immediately
// followed by a COUNT also merges into a CQUAN. Only ever looks one lexeme
// ahead, and only at the moment that lexeme would otherwise be emitted.
func compound(results []lexeme.Lexeme) []lexeme.Lexeme {
	out := make([]lexeme.Lexeme, 0, len(results))
	i := 0
	for i < len(results) {
		cur := results[i]
		i++
		if i < len(results) {
			next := results[i]
			if cur.Type == lexeme.Arabic && cur.EndPosition() == next.BeginPosition() {
				switch next.Type {
				case lexeme.CNum:
					cur.Length += next.Length
					cur.Type = lexeme.CNum
					i++
				case lexeme.Count:
					cur.Length += next.Length
					cur.Type = lexeme.CQuan
					i++
				}
			}
		}
		if cur.Type == lexeme.CNum && i < len(results) {
			next := results[i]
			if cur.EndPosition() == next.BeginPosition() && next.Type == lexeme.Count {
				cur.Length += next.Length
				cur.Type = lexeme.CQuan
				i++
			}
		}
		out = append(out, cur)
	}
	return out
}

// finalize drops stop words and fills in each surviving lexeme's text.
func finalize(buffer []rune, results []lexeme.Lexeme, d *dict.Dictionary) []lexeme.Lexeme {
	out := make([]lexeme.Lexeme, 0, len(results))
	for _, l := range results {
		if d.IsStopWord(buffer, l.Begin, l.Length) {
			continue
		}
		l.Text = string(buffer[l.Begin : l.Begin+l.Length])
		out = append(out, l)
	}
	return out
}
