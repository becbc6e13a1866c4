package store

import (
	"testing"

	"github.com/aosen/ik/indexing"
	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeKeyRoundTrips(t *testing.T) {
	for _, docId := range []uint64{0, 1, 42, 1 << 40} {
		key := EncodeKey(docId)
		assert.Equal(t, docId, DecodeKey(key))
	}
}

func TestEncodeDecodeRecordRoundTrips(t *testing.T) {
	want := indexing.DocumentIndexData{
		Content: "北京大学",
		Labels:  []string{"edu"},
	}
	encoded, err := EncodeRecord(want)
	assert.NoError(t, err)

	got, err := DecodeRecord(encoded)
	assert.NoError(t, err)
	assert.Equal(t, want.Content, got.Content)
	assert.Equal(t, want.Labels, got.Labels)
}
