package store

import (
	"fmt"
	"strconv"

	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

// MongoStore is a Pipeline backed by a MongoDB collection per shard, ported
// from pipeline/mongodb.go. Unlike KVStore, shards share one mgo.Session
// (mgo pools its own connections) per the teacher's own Init, which dials
// once and fans the same session out to every shard.
type MongoStore struct {
	sessions         []*mgo.Session
	url              string
	dbName           string
	shardNum         int
	collectionPrefix string
}

type mongoKeyValue struct {
	ID    bson.ObjectId `bson:"_id"`
	Key   []byte        `bson:"key"`
	Value []byte        `bson:"value"`
}

// NewMongoStore returns a MongoStore dialing url, storing shardNum
// collections named collectionPrefix+shard in database dbName.
func NewMongoStore(dbName string, shardNum int, url, collectionPrefix string) *MongoStore {
	return &MongoStore{dbName: dbName, shardNum: shardNum, url: url, collectionPrefix: collectionPrefix}
}

func (s *MongoStore) dial() (*mgo.Session, error) {
	session, err := mgo.Dial(s.url)
	if err != nil {
		return nil, fmt.Errorf("store: dial mongo: %w", err)
	}
	if err := session.Ping(); err != nil {
		return nil, fmt.Errorf("store: ping mongo: %w", err)
	}
	session.SetMode(mgo.Monotonic, true)
	return session, nil
}

func (s *MongoStore) Init() error {
	session, err := s.dial()
	if err != nil {
		return err
	}
	s.sessions = make([]*mgo.Session, s.shardNum)
	for shard := 0; shard < s.shardNum; shard++ {
		s.sessions[shard] = session
	}
	return nil
}

func (s *MongoStore) GetStorageShards() int { return s.shardNum }

func (s *MongoStore) Conn(shard int) error {
	session, err := s.dial()
	if err != nil {
		return err
	}
	s.sessions[shard] = session
	return nil
}

func (s *MongoStore) Close(shard int) error {
	s.sessions[shard].Close()
	return nil
}

func (s *MongoStore) collection(shard int) *mgo.Collection {
	return s.sessions[shard].DB(s.dbName).C(s.collectionPrefix + strconv.Itoa(shard))
}

func (s *MongoStore) Recover(shard int, fn RecoverFunc) error {
	var rows []mongoKeyValue
	if err := s.collection(shard).Find(nil).All(&rows); err != nil {
		return err
	}
	for _, row := range rows {
		data, err := DecodeRecord(row.Value)
		if err != nil {
			continue
		}
		fn(DecodeKey(row.Key), data)
	}
	return nil
}

func (s *MongoStore) Set(shard int, key, value []byte) error {
	return s.collection(shard).Insert(&mongoKeyValue{ID: bson.NewObjectId(), Key: key, Value: value})
}

func (s *MongoStore) Delete(shard int, key []byte) error {
	return s.collection(shard).Remove(bson.M{"key": key})
}
