// Package indexing is a thin inverted-index + BM25 ranking sample built on
// top of the ik tokenizer, adapted from the teacher's Indexer/Ranker/Engine
// stack in search.go, indexer.go, ranker.go and ranker/wukongranker.go. It
// is example/support code demonstrating the tokenizer's output feeding a
// search engine, not part of the tokenizer's own tested surface.
package indexing

// These constants name the three supported inverted-index payload shapes.
const (
	// DocIdsIndex stores only the document id each keyword occurs in.
	DocIdsIndex = 0

	// FrequenciesIndex additionally stores keyword frequency, for BM25.
	FrequenciesIndex = 1

	// LocationsIndex additionally stores every byte position a keyword
	// occurs at, enabling token-proximity scoring.
	LocationsIndex = 2
)

// DocumentIndexData is one document submitted for indexing: either raw
// text (tokenized internally via a Tokenizer) or a pre-tokenized Tokens
// list, plus untokenized Labels and an opaque Fields value carried through
// to ranking.
type DocumentIndexData struct {
	Content string
	Tokens  []TokenData
	Labels  []string
	Fields  interface{}
}

// TokenData is one pre-tokenized keyword and the byte positions it starts
// at in the document.
type TokenData struct {
	Text      string
	Locations []int
}

// KeywordIndex is one (keyword, document) pair queued for insertion into
// the inverted index.
type KeywordIndex struct {
	Text      string
	Frequency float32
	Starts    []int
}

// DocumentIndex is a document's full set of keywords, ready for
// Index.AddDocument.
type DocumentIndex struct {
	DocId       uint64
	TokenLength float32
	Keywords    []KeywordIndex
}

// IndexedDocument is one Lookup result: a document id plus whatever scoring
// inputs its IndexType produced.
type IndexedDocument struct {
	DocId                 uint64
	BM25                  float32
	TokenProximity        int32
	TokenSnippetLocations []int
	TokenLocations        [][]int
}

// InitOptions configures an Index: which payload shape to store, and the
// BM25 constants to score with.
type InitOptions struct {
	IndexType      int
	BM25Parameters *BM25Parameters
}

// BM25Parameters are the two free Okapi BM25 constants.
// See http://en.wikipedia.org/wiki/Okapi_BM25.
type BM25Parameters struct {
	K1 float32
	B  float32
}

// DefaultBM25Parameters matches the teacher's EngineInitOptions defaults.
var DefaultBM25Parameters = BM25Parameters{K1: 2.0, B: 0.75}
