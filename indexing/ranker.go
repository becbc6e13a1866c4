package indexing

import (
	"log"
	"sort"
	"sync"

	"github.com/aosen/ik/utils"
)

// RankOptions controls how Ranker.Rank scores, orders, and pages a Lookup
// result set.
type RankOptions struct {
	ScoringCriteria ScoringCriteria
	ReverseOrder    bool
	OutputOffset    int
	MaxOutputs      int
}

// ScoredDocument is one ranked result: a document id plus the scores
// ScoringCriteria assigned it.
type ScoredDocument struct {
	DocId                 uint64
	Scores                []float32
	TokenSnippetLocations []int
	TokenLocations        [][]int
}

// ScoredDocuments sorts descending by Scores, comparing lexicographically
// and preferring the document with more score components on a tie.
type ScoredDocuments []ScoredDocument

func (docs ScoredDocuments) Len() int      { return len(docs) }
func (docs ScoredDocuments) Swap(i, j int) { docs[i], docs[j] = docs[j], docs[i] }
func (docs ScoredDocuments) Less(i, j int) bool {
	for k := 0; k < utils.MinInt(len(docs[i].Scores), len(docs[j].Scores)); k++ {
		if docs[i].Scores[k] > docs[j].Scores[k] {
			return true
		} else if docs[i].Scores[k] < docs[j].Scores[k] {
			return false
		}
	}
	return len(docs[i].Scores) > len(docs[j].Scores)
}

// Ranker holds out-of-band scoring fields per document (e.g. freshness,
// popularity) and produces a ScoredDocuments from an Index's Lookup
// results, ported from ranker/wukongranker.go.
type Ranker struct {
	mu          sync.RWMutex
	fields      map[uint64]interface{}
	initialized bool
}

// NewRanker returns a ready-to-use Ranker.
func NewRanker() *Ranker {
	return &Ranker{fields: make(map[uint64]interface{}), initialized: true}
}

// AddScoringFields associates fields with docId for later Rank calls.
func (r *Ranker) AddScoringFields(docId uint64, fields interface{}) {
	if !r.initialized {
		log.Fatal("ik/indexing: Ranker used before NewRanker")
	}
	r.mu.Lock()
	r.fields[docId] = fields
	r.mu.Unlock()
}

// RemoveScoringFields drops docId's scoring fields.
func (r *Ranker) RemoveScoringFields(docId uint64) {
	if !r.initialized {
		log.Fatal("ik/indexing: Ranker used before NewRanker")
	}
	r.mu.Lock()
	delete(r.fields, docId)
	r.mu.Unlock()
}

// Rank scores docs per options.ScoringCriteria, sorts, and returns the
// requested output page.
func (r *Ranker) Rank(docs []IndexedDocument, options RankOptions) (outputDocs ScoredDocuments) {
	if !r.initialized {
		log.Fatal("ik/indexing: Ranker used before NewRanker")
	}

	for _, d := range docs {
		r.mu.RLock()
		fields := r.fields[d.DocId]
		r.mu.RUnlock()
		scores := options.ScoringCriteria.Score(d, fields)
		if len(scores) > 0 {
			outputDocs = append(outputDocs, ScoredDocument{
				DocId:                 d.DocId,
				Scores:                scores,
				TokenSnippetLocations: d.TokenSnippetLocations,
				TokenLocations:        d.TokenLocations,
			})
		}
	}

	if options.ReverseOrder {
		sort.Sort(sort.Reverse(outputDocs))
	} else {
		sort.Sort(outputDocs)
	}

	var start, end int
	if options.MaxOutputs != 0 {
		start = utils.MinInt(options.OutputOffset, len(outputDocs))
		end = utils.MinInt(options.OutputOffset+options.MaxOutputs, len(outputDocs))
	} else {
		start = utils.MinInt(options.OutputOffset, len(outputDocs))
		end = len(outputDocs)
	}
	return outputDocs[start:end]
}
