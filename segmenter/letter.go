package segmenter

import (
	"github.com/aosen/ik/charutil"
	"github.com/aosen/ik/dict"
	"github.com/aosen/ik/lexeme"
)

// Letter runs four independent scans over the buffer: a continuous-English
// run, a continuous-Arabic run (tolerating ',' '.' connectors without
// extending the run's end), a mixed Arabic/English/connector run, and a
// one-lexeme-per-character emission of every SPECIAL character. Each scan
// keeps its own (start, end) state, reset at end of buffer.
type Letter struct{}

func (Letter) Analyze(buffer []rune, _ *dict.Dictionary) []lexeme.Lexeme {
	var out []lexeme.Lexeme
	out = append(out, scanEnglish(buffer)...)
	out = append(out, scanArabic(buffer)...)
	out = append(out, scanMixed(buffer)...)
	out = append(out, scanSpecial(buffer)...)
	return out
}

func scanEnglish(buffer []rune) []lexeme.Lexeme {
	var out []lexeme.Lexeme
	start, end := -1, -1
	n := len(buffer)
	for p, c := range buffer {
		ct := charutil.Classify(c)
		if start == -1 {
			if ct == charutil.English {
				start, end = p, p
			}
		} else if ct == charutil.English {
			end = p
		} else {
			out = append(out, lexeme.Lexeme{Begin: start, Length: end - start + 1, Type: lexeme.English})
			start, end = -1, -1
		}
	}
	if end == n-1 && start != -1 {
		out = append(out, lexeme.Lexeme{Begin: start, Length: end - start + 1, Type: lexeme.English})
	}
	return out
}

func scanArabic(buffer []rune) []lexeme.Lexeme {
	var out []lexeme.Lexeme
	start, end := -1, -1
	n := len(buffer)
	for p, c := range buffer {
		ct := charutil.Classify(c)
		switch {
		case ct == charutil.Arabic:
			if start == -1 {
				start = p
			}
			end = p
		case start != -1 && ct == charutil.Useless && isArabicConnector(c):
			// connectors keep the run alive without extending end.
		default:
			if start != -1 {
				out = append(out, lexeme.Lexeme{Begin: start, Length: end - start + 1, Type: lexeme.Arabic})
				start, end = -1, -1
			}
		}
	}
	if end == n-1 && start != -1 {
		out = append(out, lexeme.Lexeme{Begin: start, Length: end - start + 1, Type: lexeme.Arabic})
	}
	return out
}

func scanMixed(buffer []rune) []lexeme.Lexeme {
	var out []lexeme.Lexeme
	start, end := -1, -1
	n := len(buffer)
	for p, c := range buffer {
		ct := charutil.Classify(c)
		isLetterish := ct == charutil.Arabic || ct == charutil.English
		isConnector := ct == charutil.Useless && isMixedConnector(c)
		switch {
		case start == -1:
			if isLetterish {
				start, end = p, p
			}
		case isLetterish:
			end = p
		case isConnector:
			// connectors keep the run alive without extending end.
		default:
			out = append(out, lexeme.Lexeme{Begin: start, Length: end - start + 1, Type: lexeme.Letter})
			start, end = -1, -1
		}
	}
	if end == n-1 && start != -1 {
		out = append(out, lexeme.Lexeme{Begin: start, Length: end - start + 1, Type: lexeme.Letter})
	}
	return out
}

func scanSpecial(buffer []rune) []lexeme.Lexeme {
	var out []lexeme.Lexeme
	for p, c := range buffer {
		if charutil.Classify(c) == charutil.Special {
			out = append(out, lexeme.Lexeme{Begin: p, Length: 1, Type: lexeme.Special})
		}
	}
	return out
}

func isArabicConnector(r rune) bool {
	_, ok := charutil.ArabicConnectors[r]
	return ok
}

func isMixedConnector(r rune) bool {
	_, ok := charutil.MixedConnectors[r]
	return ok
}
