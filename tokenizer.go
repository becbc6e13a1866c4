// Package ik implements an IK-style Chinese/English mixed-text tokenizer:
// dictionary-backed sub-segmenters emit overlapping candidate lexemes, an
// arbitrator resolves cross-cutting ambiguity, and an assembler fills gaps
// and drops stop words to produce the final token stream.
package ik

import (
	"unicode/utf8"

	"github.com/aosen/ik/arbitrator"
	"github.com/aosen/ik/charutil"
	"github.com/aosen/ik/dict"
	"github.com/aosen/ik/lexeme"
	"github.com/aosen/ik/segmenter"
)

// Token is one emitted unit of text: offsets are byte offsets into the
// normalized text, position/position_length are character-index based.
type Token struct {
	OffsetFrom     int
	OffsetTo       int
	Position       int
	PositionLength int
	Text           string
}

// Tokenizer drives the sub-segmenters, arbitrator, and assembler over
// normalized input for a fixed mode and dictionary. A Tokenizer is
// immutable after construction and safe for concurrent use by multiple
// goroutines tokenizing independent texts against the same Dictionary, as
// long as the Dictionary itself isn't being mutated concurrently (see
// dict.Dictionary and spec §5).
type Tokenizer struct {
	mode       Mode
	dictionary *dict.Dictionary
	segmenters []segmenter.Segmenter
	arbitrator arbitrator.Mode
}

// New returns a Tokenizer bound to d and mode.
func New(d *dict.Dictionary, mode Mode) *Tokenizer {
	am := arbitrator.Index
	if mode == ModeSearch {
		am = arbitrator.Search
	}
	return &Tokenizer{mode: mode, dictionary: d, segmenters: segmenter.All(), arbitrator: am}
}

// Mode returns the tokenizer's configured mode.
func (t *Tokenizer) Mode() Mode { return t.mode }

// TokenStream normalizes text, runs the full C1-C7 pipeline, and returns
// the resulting Token sequence. Tokenization never fails: malformed or
// unrecognized input simply yields fewer tokens.
func (t *Tokenizer) TokenStream(text string) []Token {
	buffer := charutil.NormalizeString(text)
	byteIndex := buildByteIndex(buffer)

	candidates := lexeme.NewList()
	for _, s := range t.segmenters {
		candidates.InsertAll(s.Analyze(buffer, t.dictionary))
	}

	paths := arbitrator.Process(candidates.Items(), t.arbitrator)
	results := assemble(buffer, paths)
	if t.mode == ModeSearch {
		results = compound(results)
	}
	results = finalize(buffer, results, t.dictionary)

	tokens := make([]Token, 0, len(results))
	for _, l := range results {
		tokens = append(tokens, Token{
			OffsetFrom:     byteIndex[l.Begin],
			OffsetTo:       byteIndex[l.Begin+l.Length],
			Position:       l.Begin,
			PositionLength: l.Length,
			Text:           l.Text,
		})
	}
	return tokens
}

// buildByteIndex maps each character index in buffer to its byte offset in
// buffer's own UTF-8 encoding, plus one trailing entry for the total byte
// length. Built once per call, since normalization can change a rune's
// UTF-8 width (a full-width character folds to a single-byte ASCII one).
func buildByteIndex(buffer []rune) []int {
	idx := make([]int, len(buffer)+1)
	pos := 0
	for i, r := range buffer {
		idx[i] = pos
		pos += utf8.RuneLen(r)
	}
	idx[len(buffer)] = pos
	return idx
}
