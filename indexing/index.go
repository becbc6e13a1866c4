package indexing

import (
	"log"
	"math"
	"sync"

	"github.com/aosen/ik/utils"
)

// keywordIndices is one inverted-index row: every document a keyword
// occurs in, sorted ascending by DocId, with parallel per-type payload
// slices — same layout as the teacher's KeywordIndices in search.go.
type keywordIndices struct {
	docIds      []uint64
	frequencies []float32
	locations   [][]int
}

// Index is an in-memory inverted index from keyword to document list. A
// single Index corresponds to one shard of the teacher's sharded Indexer;
// SPEC_FULL's sample layer runs unsharded, since sharding there exists to
// parallelize across goroutines, not to change indexing semantics.
type Index struct {
	mu    sync.RWMutex
	table map[string]*keywordIndices

	initOptions InitOptions
	initialized bool

	numDocuments     uint64
	totalTokenLength float32
	docTokenLengths  map[uint64]float32
}

// NewIndex returns an Index configured by options.
func NewIndex(options InitOptions) *Index {
	if options.BM25Parameters == nil {
		options.BM25Parameters = &DefaultBM25Parameters
	}
	return &Index{
		table:           make(map[string]*keywordIndices),
		initOptions:     options,
		initialized:     true,
		docTokenLengths: make(map[uint64]float32),
	}
}

// AddDocument inserts or updates document's keywords in the inverted index.
func (idx *Index) AddDocument(document *DocumentIndex) {
	if !idx.initialized {
		log.Fatal("ik/indexing: Index used before NewIndex")
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if document.TokenLength != 0 {
		originalLength, found := idx.docTokenLengths[document.DocId]
		idx.docTokenLengths[document.DocId] = document.TokenLength
		if found {
			idx.totalTokenLength += document.TokenLength - originalLength
		} else {
			idx.totalTokenLength += document.TokenLength
		}
	}

	docIdIsNew := true
	for _, keyword := range document.Keywords {
		indices, foundKeyword := idx.table[keyword.Text]
		if !foundKeyword {
			ti := keywordIndices{docIds: []uint64{document.DocId}}
			switch idx.initOptions.IndexType {
			case LocationsIndex:
				ti.locations = [][]int{keyword.Starts}
			case FrequenciesIndex:
				ti.frequencies = []float32{keyword.Frequency}
			}
			idx.table[keyword.Text] = &ti
			continue
		}

		position, found := idx.searchIndex(indices, 0, len(indices.docIds)-1, document.DocId)
		if found {
			docIdIsNew = false
			switch idx.initOptions.IndexType {
			case LocationsIndex:
				indices.locations[position] = keyword.Starts
			case FrequenciesIndex:
				indices.frequencies[position] = keyword.Frequency
			}
			continue
		}

		switch idx.initOptions.IndexType {
		case LocationsIndex:
			indices.locations = append(indices.locations, nil)
			copy(indices.locations[position+1:], indices.locations[position:])
			indices.locations[position] = keyword.Starts
		case FrequenciesIndex:
			indices.frequencies = append(indices.frequencies, 0)
			copy(indices.frequencies[position+1:], indices.frequencies[position:])
			indices.frequencies[position] = keyword.Frequency
		}
		indices.docIds = append(indices.docIds, 0)
		copy(indices.docIds[position+1:], indices.docIds[position:])
		indices.docIds[position] = document.DocId
	}

	if docIdIsNew {
		idx.numDocuments++
	}
}

// Lookup finds documents containing every one of tokens and labels (an AND
// query), restricted to docIds when non-nil, scored by BM25 (or annotated
// with token-proximity locations) according to the Index's IndexType.
func (idx *Index) Lookup(tokens, labels []string, docIds map[uint64]bool) (docs []IndexedDocument) {
	if !idx.initialized {
		log.Fatal("ik/indexing: Index used before NewIndex")
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.numDocuments == 0 {
		return nil
	}

	keywords := make([]string, 0, len(tokens)+len(labels))
	keywords = append(keywords, tokens...)
	keywords = append(keywords, labels...)

	table := make([]*keywordIndices, len(keywords))
	for i, keyword := range keywords {
		indices, found := idx.table[keyword]
		if !found {
			return nil
		}
		table[i] = indices
	}
	if len(table) == 0 {
		return nil
	}

	indexPointers := make([]int, len(table))
	for i := range table {
		indexPointers[i] = len(table[i].docIds) - 1
	}
	avgDocLength := idx.totalTokenLength / float32(idx.numDocuments)

	for ; indexPointers[0] >= 0; indexPointers[0]-- {
		baseDocId := table[0].docIds[indexPointers[0]]

		if docIds != nil && !docIds[baseDocId] {
			continue
		}

		found := true
		for i := 1; i < len(table); i++ {
			position, foundBase := idx.searchIndex(table[i], 0, indexPointers[i], baseDocId)
			if foundBase {
				indexPointers[i] = position
				continue
			}
			if position == 0 {
				return docs
			}
			indexPointers[i] = position - 1
			found = false
			break
		}
		if !found {
			continue
		}

		indexedDoc := IndexedDocument{DocId: baseDocId}

		if idx.initOptions.IndexType == LocationsIndex {
			numWithLocations := 0
			for i, t := range table[:len(tokens)] {
				if len(t.locations[indexPointers[i]]) > 0 {
					numWithLocations++
				}
			}
			if numWithLocations != len(tokens) {
				docs = append(docs, indexedDoc)
				continue
			}
			proximity, snippetLocations := computeTokenProximity(table[:len(tokens)], indexPointers, tokens)
			indexedDoc.TokenProximity = int32(proximity)
			indexedDoc.TokenSnippetLocations = snippetLocations
			indexedDoc.TokenLocations = make([][]int, len(tokens))
			for i, t := range table[:len(tokens)] {
				indexedDoc.TokenLocations[i] = t.locations[indexPointers[i]]
			}
		}

		if idx.initOptions.IndexType == LocationsIndex || idx.initOptions.IndexType == FrequenciesIndex {
			var bm25 float32
			docLength := idx.docTokenLengths[baseDocId]
			k1 := idx.initOptions.BM25Parameters.K1
			b := idx.initOptions.BM25Parameters.B
			for i, t := range table[:len(tokens)] {
				var frequency float32
				if idx.initOptions.IndexType == LocationsIndex {
					frequency = float32(len(t.locations[indexPointers[i]]))
				} else {
					frequency = t.frequencies[indexPointers[i]]
				}
				if len(t.docIds) > 0 && frequency > 0 && avgDocLength != 0 {
					idf := float32(math.Log2(float64(idx.numDocuments)/float64(len(t.docIds)) + 1))
					bm25 += idf * frequency * (k1 + 1) / (frequency + k1*(1-b+b*docLength/avgDocLength))
				}
			}
			indexedDoc.BM25 = bm25
		}

		docs = append(docs, indexedDoc)
	}
	return docs
}

// searchIndex binary-searches indices for docId, returning either its
// position (found=true) or the position a new entry for it belongs at.
func (idx *Index) searchIndex(indices *keywordIndices, start, end int, docId uint64) (int, bool) {
	if len(indices.docIds) == start {
		return start, false
	}
	if docId < indices.docIds[start] {
		return start, false
	} else if docId == indices.docIds[start] {
		return start, true
	}
	if docId > indices.docIds[end] {
		return end + 1, false
	} else if docId == indices.docIds[end] {
		return end, true
	}

	for end-start > 1 {
		middle := (start + end) / 2
		switch {
		case docId == indices.docIds[middle]:
			return middle, true
		case docId > indices.docIds[middle]:
			start = middle
		default:
			end = middle
		}
	}
	return end, false
}

// computeTokenProximity finds the arrangement of keyword occurrences that
// minimizes Sum(Abs(P_(i+1) - P_i - L_i)) across consecutive tokens, via
// dynamic programming over each token's occurrence list in turn.
func computeTokenProximity(table []*keywordIndices, indexPointers []int, tokens []string) (minProximity int, locations []int) {
	minProximity = -1
	locations = make([]int, len(tokens))

	path := make([][]int, len(tokens))
	for i := 1; i < len(path); i++ {
		path[i] = make([]int, len(table[i].locations[indexPointers[i]]))
	}

	currentLocations := table[0].locations[indexPointers[0]]
	currentMinValues := make([]int, len(currentLocations))
	for i := 1; i < len(tokens); i++ {
		nextLocations := table[i].locations[indexPointers[i]]
		nextMinValues := make([]int, len(nextLocations))
		for j := range nextMinValues {
			nextMinValues[j] = -1
		}

		var iNext int
		for iCurrent, currentLocation := range currentLocations {
			if currentMinValues[iCurrent] == -1 {
				continue
			}
			for iNext+1 < len(nextLocations) && nextLocations[iNext+1] < currentLocation {
				iNext++
			}

			update := func(from, to int) {
				if to >= len(nextLocations) {
					return
				}
				value := currentMinValues[from] + utils.AbsInt(nextLocations[to]-currentLocations[from]-len(tokens[i-1]))
				if nextMinValues[to] == -1 || value < nextMinValues[to] {
					nextMinValues[to] = value
					path[i][to] = from
				}
			}
			update(iCurrent, iNext)
			update(iCurrent, iNext+1)
		}

		currentLocations = nextLocations
		currentMinValues = nextMinValues
	}

	var cursor int
	for i, value := range currentMinValues {
		if value == -1 {
			continue
		}
		if minProximity == -1 || value < minProximity {
			minProximity = value
			cursor = i
		}
	}

	for i := len(tokens) - 1; i >= 0; i-- {
		if i != len(tokens)-1 {
			cursor = path[i+1][cursor]
		}
		locations[i] = table[i].locations[indexPointers[i]][cursor]
	}
	return minProximity, locations
}
