package dict

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// LoadError reports a word-list I/O or content failure. Dictionary loading
// is fatal at startup (spec's DictionaryLoadError); callers are expected to
// log.Fatal on it rather than attempt to tokenize against a partial
// dictionary.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("ik: failed to load dictionary file %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Dictionary owns the three tries the segmenters and assembler consult: the
// main word dictionary, the quantifier (measure word) dictionary, and the
// stop-word dictionary. Once loaded, a Dictionary is treated as immutable
// for the purpose of concurrent tokenize calls — AddWords/DisableWords are
// the only mutators, and the caller MUST NOT run them concurrently with
// tokenization (re-architected from the source's lock-guarded global; see
// DESIGN.md).
type Dictionary struct {
	main       *Trie
	quantifier *Trie
	stopword   *Trie
}

// New returns an empty Dictionary with no words loaded.
func New() *Dictionary {
	return &Dictionary{main: NewTrie(), quantifier: NewTrie(), stopword: NewTrie()}
}

// NewDefault returns a Dictionary pre-populated from the embedded default
// word lists, sufficient to tokenize without external configuration.
func NewDefault() *Dictionary {
	d := New()
	for _, spec := range []struct {
		path string
		trie *Trie
	}{
		{embeddedMainPath, d.main},
		{embeddedQuantifierPath, d.quantifier},
		{embeddedStopwordPath, d.stopword},
	} {
		data, err := embeddedDicts.ReadFile(spec.path)
		if err != nil {
			// The embedded FS is baked in at build time; a read failure here
			// means the embed directive itself is broken, a programmer error.
			log.Fatalf("ik: embedded dictionary %q missing: %v", spec.path, err)
		}
		loadWordsInto(spec.trie, spec.path, strings.NewReader(string(data)))
	}
	return d
}

// LoadMain merges path's word list into the main dictionary.
func (d *Dictionary) LoadMain(path string) error { return d.loadFile(d.main, path) }

// LoadQuantifier merges path's word list into the quantifier dictionary.
func (d *Dictionary) LoadQuantifier(path string) error { return d.loadFile(d.quantifier, path) }

// LoadStopWords merges path's word list into the stop-word dictionary.
func (d *Dictionary) LoadStopWords(path string) error { return d.loadFile(d.stopword, path) }

func (d *Dictionary) loadFile(t *Trie, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	log.Printf("ik: loading dictionary file %s", path)
	loadWordsInto(t, path, f)
	return nil
}

func loadWordsInto(t *Trie, path string, r io.Reader) {
	scanner := bufio.NewScanner(r)
	count := 0
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		t.Insert([]rune(word))
		count++
	}
	log.Printf("ik: loaded %d words from %s", count, path)
}

// MatchMain matches the main dictionary against buffer[offset:offset+length).
func (d *Dictionary) MatchMain(buffer []rune, offset, length int) []Hit {
	return d.main.Match(buffer, offset, length)
}

// MatchQuantifier matches the quantifier dictionary.
func (d *Dictionary) MatchQuantifier(buffer []rune, offset, length int) []Hit {
	return d.quantifier.Match(buffer, offset, length)
}

// IsStopWord reports whether buffer[offset:offset+length) is exactly a
// stop-word dictionary entry.
func (d *Dictionary) IsStopWord(buffer []rune, offset, length int) bool {
	for _, h := range d.stopword.Match(buffer, offset, length) {
		if h.IsMatch() && h.Begin == offset && h.End == offset+length-1 {
			return true
		}
	}
	return false
}

// AddWords inserts words into the main dictionary. Per original_source's
// dictionary.rs, this only ever touches the main trie.
func (d *Dictionary) AddWords(words ...string) {
	for _, w := range words {
		d.main.Insert([]rune(w))
	}
}

// DisableWords clears words' final-state flag in the main dictionary
// without removing trie structure, so any longer word sharing a prefix with
// a disabled word is unaffected.
func (d *Dictionary) DisableWords(words ...string) {
	for _, w := range words {
		d.main.Delete([]rune(w))
	}
}
