package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	bolt "go.etcd.io/bbolt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	moviesBucket = []byte("movies")
	metaBucket   = []byte("metadata")

	snapshotKey = []byte("snapshot")
)

// ErrNoSnapshot is returned when no collection has been saved yet.
var ErrNoSnapshot = errors.New("no snapshot saved")

// Store keeps the last successfully fetched collection so it can be browsed
// offline. Filter state is never stored.
type Store struct {
	db *bolt.DB
}

func NewStore(dbPath string) (*Store, error) {
	return NewStoreWithTimeout(dbPath, 1*time.Second)
}

func NewStoreWithTimeout(dbPath string, timeout time.Duration) (*Store, error) {
	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{moviesBucket, metaBucket} {
			if _, createErr := tx.CreateBucketIfNotExists(bucket); createErr != nil {
				return createErr
			}
		}
		return nil
	})

	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// movieKey encodes the position in the source collection so cursor
// iteration returns movies in source order.
func movieKey(i int) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(i))
	return k
}

// SaveSnapshot replaces the stored collection with movies.
func (s *Store) SaveSnapshot(meta SnapshotMeta, movies []*Movie) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(moviesBucket); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		b, err := tx.CreateBucket(moviesBucket)
		if err != nil {
			return err
		}
		for i, movie := range movies {
			data, err := json.Marshal(movie)
			if err != nil {
				return err
			}
			if err := b.Put(movieKey(i), data); err != nil {
				return err
			}
		}

		meta.Count = len(movies)
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		return tx.Bucket(metaBucket).Put(snapshotKey, data)
	})
}

// SnapshotMeta returns the metadata of the stored collection or ErrNoSnapshot.
func (s *Store) SnapshotMeta() (*SnapshotMeta, error) {
	var meta SnapshotMeta
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(metaBucket).Get(snapshotKey)
		if data == nil {
			return ErrNoSnapshot
		}
		return json.Unmarshal(data, &meta)
	})
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSnapshot returns the stored collection in source order.
func (s *Store) LoadSnapshot() (*SnapshotMeta, []*Movie, error) {
	meta, err := s.SnapshotMeta()
	if err != nil {
		return nil, nil, err
	}

	movies := make([]*Movie, 0, meta.Count)
	err = s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(moviesBucket).ForEach(func(_ []byte, v []byte) error {
			var movie Movie
			if err := json.Unmarshal(v, &movie); err != nil {
				return err
			}
			movies = append(movies, &movie)
			return nil
		})
	})
	if err != nil {
		return nil, nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return meta, movies, nil
}
