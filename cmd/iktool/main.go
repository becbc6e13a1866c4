// Command iktool is a small CLI exercising the tokenizer and the sample
// indexing/store layer end to end, the Go descendant of original_source's
// examples/verifier.rs plus the teacher's EngineInitOptions-driven wiring
// in search_test.go. It is glue code, not part of the tokenizer's tested
// surface.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aosen/ik"
	"github.com/aosen/ik/config"
	"github.com/aosen/ik/dict"
	"github.com/aosen/ik/indexing"
	"github.com/aosen/ik/store"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "tokenize":
		runTokenize(os.Args[2:])
	case "index":
		runIndex(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: iktool tokenize [-config ik.yml] [-mode ik_max|ik_smart] <input-file>")
	fmt.Fprintln(os.Stderr, "       iktool index [-config ik.yml] -query <text> <input-file>")
}

func loadTokenizer(configPath string, mode ik.Mode) *ik.Tokenizer {
	var d *dict.Dictionary
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("iktool: %v", err)
		}
		d, err = cfg.LoadDictionary()
		if err != nil {
			log.Fatalf("iktool: %v", err)
		}
	} else {
		d = dict.NewDefault()
	}
	return ik.New(d, mode)
}

// runTokenize reads input line by line and prints each line's comma-joined
// token text, same shape as verifier.rs's tokenize_text output.
func runTokenize(args []string) {
	fs := flag.NewFlagSet("tokenize", flag.ExitOnError)
	configPath := fs.String("config", "", "path to ik.yml (defaults to the embedded dictionary)")
	modeAlias := fs.String("mode", "ik_max", "ik_max (INDEX) or ik_smart (SEARCH)")
	fs.Parse(args)

	if fs.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	mode, err := config.ParseMode(*modeAlias)
	if err != nil {
		log.Fatalf("iktool: %v", err)
	}
	tok := loadTokenizer(*configPath, mode)

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		log.Fatalf("iktool: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for scanner.Scan() {
		tokens := tok.TokenStream(scanner.Text())
		texts := make([]string, len(tokens))
		for i, t := range tokens {
			texts[i] = t.Text
		}
		fmt.Fprintln(out, strings.Join(texts, ","))
	}
}

// runIndex indexes each line of the input file as its own document (doc id
// = zero-based line index), then runs query against the resulting index and prints
// BM25-ranked results, mirroring search_test.go's IndexDocument/Search flow.
func runIndex(args []string) {
	fs := flag.NewFlagSet("index", flag.ExitOnError)
	configPath := fs.String("config", "", "path to ik.yml (defaults to the embedded dictionary)")
	query := fs.String("query", "", "query text to search for after indexing")
	storageDir := fs.String("storage", "", "when set, persist the index under this directory via store.KVStore")
	fs.Parse(args)

	if fs.NArg() != 1 || *query == "" {
		usage()
		os.Exit(1)
	}

	tok := loadTokenizer(*configPath, ik.ModeIndex)
	idx := indexing.NewIndex(indexing.InitOptions{IndexType: indexing.FrequenciesIndex})
	ranker := indexing.NewRanker()

	var pipeline store.Pipeline
	if *storageDir != "" {
		kv := store.NewKVStore(*storageDir, 1)
		if err := kv.Init(); err != nil {
			log.Fatalf("iktool: %v", err)
		}
		pipeline = kv
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		log.Fatalf("iktool: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var docId uint64
	for scanner.Scan() {
		line := scanner.Text()
		data := indexing.DocumentIndexData{Content: line}
		doc := indexing.BuildDocumentIndex(tok, docId, data)
		idx.AddDocument(doc)
		ranker.AddScoringFields(docId, nil)

		if pipeline != nil {
			record, err := store.EncodeRecord(data)
			if err != nil {
				log.Fatalf("iktool: %v", err)
			}
			if err := pipeline.Set(0, store.EncodeKey(docId), record); err != nil {
				log.Fatalf("iktool: %v", err)
			}
		}
		docId++
	}

	queryTokens := tok.TokenStream(*query)
	tokenTexts := make([]string, len(queryTokens))
	for i, t := range queryTokens {
		tokenTexts[i] = t.Text
	}

	docs := idx.Lookup(tokenTexts, nil, nil)
	scored := ranker.Rank(docs, indexing.RankOptions{ScoringCriteria: indexing.RankByBM25{}})
	for _, doc := range scored {
		fmt.Printf("doc=%d score=%.4f\n", doc.DocId, doc.Scores[0])
	}
}
