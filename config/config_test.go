package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadResolvesPathsRelativeToRoot(t *testing.T) {
	dir := t.TempDir()
	confPath := writeFile(t, dir, FileName, `
main_dict: dicts/main.dic
quantifier_dict: dicts/quantifier.dic
stop_word_dict: dicts/stopword.dic
ext_dicts:
  - dicts/ext1.dic
ext_stop_word_dicts:
  - dicts/ext_stop.dic
`)

	c, err := Load(confPath)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "dicts/main.dic"), c.MainDictionary())
	assert.Equal(t, filepath.Join(dir, "dicts/quantifier.dic"), c.QuantifierDictionary())
	assert.Equal(t, []string{filepath.Join(dir, "dicts/ext1.dic")}, c.ExtDictionaries())
	assert.Equal(t, []string{
		filepath.Join(dir, "dicts/stopword.dic"),
		filepath.Join(dir, "dicts/ext_stop.dic"),
	}, c.ExtStopWordDictionaries())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestLoadDictionaryMergesExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.dic", "我家\n")
	writeFile(t, dir, "ext.dic", "新词\n")
	writeFile(t, dir, "quantifier.dic", "个\n")
	writeFile(t, dir, "stopword.dic", "is\n")

	c := &Config{
		Root:           dir,
		MainDict:       "main.dic",
		QuantifierDict: "quantifier.dic",
		StopWordDict:   "stopword.dic",
		ExtDicts:       []string{"ext.dic"},
	}

	d, err := c.LoadDictionary()
	assert.NoError(t, err)

	buf := []rune("我家新词")
	hits := d.MatchMain(buf, 0, len(buf))
	assert.NotEmpty(t, hits)

	// 新词 comes only from the ext_dicts entry.
	extHits := d.MatchMain(buf, 2, len(buf)-2)
	assert.NotEmpty(t, extHits)
}

func TestParseModeAliases(t *testing.T) {
	mode, err := ParseMode("ik_max")
	assert.NoError(t, err)
	assert.Equal(t, ModeIndex, mode)

	mode, err = ParseMode("ik_smart")
	assert.NoError(t, err)
	assert.Equal(t, ModeSearch, mode)

	_, err = ParseMode("bogus")
	assert.Error(t, err)
}
