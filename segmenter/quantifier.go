package segmenter

import (
	"github.com/aosen/ik/charutil"
	"github.com/aosen/ik/dict"
	"github.com/aosen/ik/lexeme"
)

// CNQuantifier recognizes Chinese numeral runs and the measure words that
// follow them. It runs in two passes, mirroring the source's separate
// number-pass/quantifier-pass structure rather than interleaving them: by
// the time the quantifier pass runs, the number pass's (n_start, n_end)
// state has always been flushed back to (-1, -1), so need_count_scan only
// ever needs to consult the completed CNUM list — see DESIGN.md.
type CNQuantifier struct{}

func (CNQuantifier) Analyze(buffer []rune, d *dict.Dictionary) []lexeme.Lexeme {
	cnums := scanNumberRuns(buffer)
	counts := scanQuantifiers(buffer, cnums, d)

	out := make([]lexeme.Lexeme, 0, len(cnums)+len(counts))
	out = append(out, cnums...)
	out = append(out, counts...)
	return out
}

func scanNumberRuns(buffer []rune) []lexeme.Lexeme {
	var out []lexeme.Lexeme
	nStart, nEnd := -1, -1
	flush := func() {
		if nStart != -1 {
			out = append(out, lexeme.Lexeme{Begin: nStart, Length: nEnd - nStart + 1, Type: lexeme.CNum})
			nStart, nEnd = -1, -1
		}
	}
	for p, c := range buffer {
		if charutil.Classify(c) == charutil.Chinese && charutil.IsChineseNumeral(c) {
			if nStart == -1 {
				nStart = p
			}
			nEnd = p
		} else {
			flush()
		}
	}
	flush()
	return out
}

func scanQuantifiers(buffer []rune, cnums []lexeme.Lexeme, d *dict.Dictionary) []lexeme.Lexeme {
	var out []lexeme.Lexeme
	n := len(buffer)
	for p := 0; p < n; p++ {
		if charutil.Classify(buffer[p]) != charutil.Chinese {
			continue
		}
		if !needCountScan(cnums, p) {
			continue
		}
		for _, h := range d.MatchQuantifier(buffer, p, n-p) {
			if h.IsMatch() {
				out = append(out, lexeme.Lexeme{Begin: h.Begin, Length: h.Length(), Type: lexeme.Count})
			}
		}
	}
	return out
}

// needCountScan reports whether a number run immediately precedes p. It
// walks cnums (sorted ascending by Begin) from the tail; Begin+Length==p
// means a run ends exactly at p, Begin+Length<p means no run starting
// further back can reach p either, so the scan can stop early.
func needCountScan(cnums []lexeme.Lexeme, p int) bool {
	for i := len(cnums) - 1; i >= 0; i-- {
		end := cnums[i].Begin + cnums[i].Length
		if end == p {
			return true
		}
		if end < p {
			break
		}
	}
	return false
}
