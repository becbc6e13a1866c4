package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cznic/kv"
)

// KVStore is a Pipeline backed by github.com/cznic/kv, one embedded B+tree
// file per shard under storageFolder, ported from pipeline/kvdb.go.
type KVStore struct {
	dbs           []*kv.DB
	shardNum      int
	storageFolder string
}

// NewKVStore returns a KVStore that will keep shardNum database files
// under storageFolder.
func NewKVStore(storageFolder string, shardNum int) *KVStore {
	return &KVStore{storageFolder: storageFolder, shardNum: shardNum}
}

func (s *KVStore) dbPath(shard int) string {
	return filepath.Join(s.storageFolder, "db."+strconv.Itoa(shard))
}

func (s *KVStore) Init() error {
	if err := os.MkdirAll(s.storageFolder, 0o700); err != nil {
		return fmt.Errorf("store: create %q: %w", s.storageFolder, err)
	}
	s.dbs = make([]*kv.DB, s.shardNum)
	for shard := 0; shard < s.shardNum; shard++ {
		db, err := openOrCreateKV(s.dbPath(shard))
		if err != nil {
			return fmt.Errorf("store: open shard %d: %w", shard, err)
		}
		s.dbs[shard] = db
	}
	return nil
}

func (s *KVStore) GetStorageShards() int { return s.shardNum }

func (s *KVStore) Conn(shard int) error {
	db, err := openOrCreateKV(s.dbPath(shard))
	if err != nil {
		return fmt.Errorf("store: reconnect shard %d: %w", shard, err)
	}
	s.dbs[shard] = db
	return nil
}

func (s *KVStore) Close(shard int) error { return s.dbs[shard].Close() }

func (s *KVStore) Recover(shard int, fn RecoverFunc) error {
	iter, err := s.dbs[shard].SeekFirst()
	if err == io.EOF {
		return nil
	} else if err != nil {
		return err
	}

	for {
		key, value, err := iter.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			continue
		}
		data, err := DecodeRecord(value)
		if err != nil {
			continue
		}
		fn(DecodeKey(key), data)
	}
	return nil
}

func (s *KVStore) Set(shard int, key, value []byte) error {
	return s.dbs[shard].Set(key, value)
}

func (s *KVStore) Delete(shard int, key []byte) error {
	return s.dbs[shard].Delete(key)
}

// openOrCreateKV opens path's database, creating it if it doesn't exist
// yet, same fallback as the teacher's OpenOrCreateKv.
func openOrCreateKV(path string) (*kv.DB, error) {
	db, err := kv.Open(path, &kv.Options{})
	if err != nil {
		return kv.Create(path, &kv.Options{})
	}
	return db, nil
}
