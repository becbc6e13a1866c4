package indexing

import "github.com/aosen/ik"

// BuildDocumentIndex tokenizes data.Content with tok (falling back to
// data.Tokens when Content is empty, exactly as search.go's
// segmenterWorker prefers content over pre-supplied tokens) and assembles
// the resulting DocumentIndex ready for Index.AddDocument. Stop-word
// filtering already happened inside the tokenizer; data.Labels are merged
// in as additional, unscored keywords the same way the teacher folds
// document labels into its keyword map.
func BuildDocumentIndex(tok *ik.Tokenizer, docId uint64, data DocumentIndexData) *DocumentIndex {
	tokensMap := make(map[string][]int)
	var numTokens int

	if data.Content != "" {
		tokens := tok.TokenStream(data.Content)
		for _, t := range tokens {
			tokensMap[t.Text] = append(tokensMap[t.Text], t.OffsetFrom)
		}
		numTokens = len(tokens)
	} else {
		for _, t := range data.Tokens {
			tokensMap[t.Text] = t.Locations
		}
		numTokens = len(data.Tokens)
	}

	for _, label := range data.Labels {
		if _, exists := tokensMap[label]; !exists {
			tokensMap[label] = nil
		}
	}

	keywords := make([]KeywordIndex, 0, len(tokensMap))
	for text, starts := range tokensMap {
		keywords = append(keywords, KeywordIndex{
			Text:      text,
			Frequency: float32(len(starts)),
			Starts:    starts,
		})
	}

	return &DocumentIndex{
		DocId:       docId,
		TokenLength: float32(numTokens),
		Keywords:    keywords,
	}
}
