package segmenter

import (
	"github.com/aosen/ik/charutil"
	"github.com/aosen/ik/dict"
	"github.com/aosen/ik/lexeme"
)

// CJK is the dictionary-backed Chinese word matcher. For every position not
// classified USELESS it probes the main dictionary starting there and
// emits one CNWORD lexeme per MATCH hit, so every dictionary word starting
// at that position survives into the candidate list — longest-match
// resolution is left entirely to the arbitrator.
type CJK struct{}

func (CJK) Analyze(buffer []rune, d *dict.Dictionary) []lexeme.Lexeme {
	var out []lexeme.Lexeme
	n := len(buffer)
	for p := 0; p < n; p++ {
		if charutil.Classify(buffer[p]) == charutil.Useless {
			continue
		}
		for _, h := range d.MatchMain(buffer, p, n-p) {
			if !h.IsMatch() {
				continue
			}
			out = append(out, lexeme.Lexeme{Begin: h.Begin, Length: h.Length(), Type: lexeme.CNWord})
		}
	}
	return out
}
