// Package store provides pluggable durable persistence backends for
// indexed documents, adapted from the teacher's SearchPipline interface
// and its three implementations in pipeline.go, pipline.go, and
// pipeline/{kvdb,mongodb,mysqldb}.go.
package store

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"

	"github.com/aosen/ik/indexing"
)

// RecoverFunc re-indexes one recovered document during Pipeline.Recover.
type RecoverFunc func(docId uint64, data indexing.DocumentIndexData)

// EncodeKey renders docId as the varint-encoded key every backend stores
// it under, matching the binary.Uvarint round trip each Recover
// implementation expects.
func EncodeKey(docId uint64) []byte {
	b := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(b, docId)
	return b[:n]
}

// DecodeKey is EncodeKey's inverse.
func DecodeKey(key []byte) uint64 {
	docId, _ := binary.Uvarint(key)
	return docId
}

// EncodeRecord gob-encodes data for storage.
func EncodeRecord(data indexing.DocumentIndexData) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeRecord is EncodeRecord's inverse.
func DecodeRecord(value []byte) (indexing.DocumentIndexData, error) {
	var data indexing.DocumentIndexData
	err := gob.NewDecoder(bytes.NewReader(value)).Decode(&data)
	return data, err
}

// Pipeline is a durable key-value backend for indexed documents, split
// into shards 0..GetStorageShards()-1.
type Pipeline interface {
	// Init prepares every shard (creating files/collections/tables as
	// needed).
	Init() error
	// GetStorageShards returns the number of independent shards this
	// Pipeline manages.
	GetStorageShards() int
	// Conn (re)connects shard, e.g. after a transient failure.
	Conn(shard int) error
	// Close releases shard's resources.
	Close(shard int) error
	// Recover replays every (key, value) pair in shard through fn, for
	// rebuilding an in-memory Index on startup.
	Recover(shard int, fn RecoverFunc) error
	// Set durably stores key/value in shard.
	Set(shard int, key, value []byte) error
	// Delete removes key from shard.
	Delete(shard int, key []byte) error
}
