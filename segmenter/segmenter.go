// Package segmenter holds the independent sub-segmenters that each scan the
// full normalized character buffer and emit candidate lexemes, one file per
// concern — the CJK dictionary matcher, the Chinese numeric/quantifier
// recognizer, and the Latin/digit/mixed/special-character scanner — mirroring
// the teacher's convention of a dedicated subpackage per segmentation
// concern (formerly `ChinaCut`, now split along IK's sub-segmenter lines).
package segmenter

import (
	"github.com/aosen/ik/dict"
	"github.com/aosen/ik/lexeme"
)

// Segmenter analyzes the full character buffer and returns every candidate
// lexeme it recognizes. Segmenters may hold private recognition state
// between positions within one Analyze call, but that state is local to the
// call — nothing persists across calls, and implementations need not be
// safe for concurrent reuse of a single Segmenter value across goroutines
// scanning different buffers.
type Segmenter interface {
	Analyze(buffer []rune, d *dict.Dictionary) []lexeme.Lexeme
}

// All returns the three Segmenter values the tokenizer facade runs over
// every buffer, in the order the source registers them: CJK, Chinese
// quantifier, then the letter segmenter, which also covers the
// special-character emitter (Letter.Analyze runs its English, Arabic,
// mixed and special scans one after another, each in its own loop).
func All() []Segmenter {
	return []Segmenter{CJK{}, CNQuantifier{}, Letter{}}
}
