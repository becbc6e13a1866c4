package indexing

// ScoringCriteria scores a document during ranking. Documents sort by the
// first score, ties broken by the second, and so on; an empty slice drops
// the document from the result set entirely.
type ScoringCriteria interface {
	Score(doc IndexedDocument, fields interface{}) []float32
}

// RankByBM25 is the default ScoringCriteria: a document's sole score is its
// precomputed BM25 value from Index.Lookup.
type RankByBM25 struct{}

func (RankByBM25) Score(doc IndexedDocument, fields interface{}) []float32 {
	return []float32{doc.BM25}
}

// BM25Scorer is the named, constructible equivalent of RankByBM25, ported
// from scorer/BM25.go. The teacher's BM25Scorer is itself a thin wrapper
// over the BM25 value Indexer.Lookup already computed — all of the actual
// Okapi math lives in Index.Lookup, not in the scorer — and this keeps that
// division of labor rather than duplicating the formula here.
type BM25Scorer struct{}

// NewBM25Scorer returns a BM25Scorer.
func NewBM25Scorer() *BM25Scorer { return &BM25Scorer{} }

func (*BM25Scorer) Score(doc IndexedDocument, fields interface{}) []float32 {
	return []float32{doc.BM25}
}
