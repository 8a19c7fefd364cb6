package kvstore

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

// DefaultBucket holds every key when the bolt driver is used.
var DefaultBucket = []byte("Dashboard")

// BoltStore keeps all keys in a single bbolt bucket.
type BoltStore struct {
	db     *bbolt.DB
	bucket []byte
}

// NewBoltStore creates the bucket if needed. The caller owns db.
func NewBoltStore(db *bbolt.DB, bucket []byte) (*BoltStore, error) {
	if len(bucket) == 0 {
		bucket = DefaultBucket
	}
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return &BoltStore{db: db, bucket: bucket}, nil
}

func (s *BoltStore) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	var (
		out   string
		found bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return fmt.Errorf("bucket %s not found", s.bucket)
		}
		v := b.Get([]byte(key))
		if v == nil {
			return nil
		}
		// v is only valid for the life of the transaction
		out = string(v)
		found = true
		return nil
	})
	return out, found, err
}

func (s *BoltStore) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(s.bucket)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), []byte(value))
	})
}

func (s *BoltStore) Remove(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}

func (s *BoltStore) Ping(_ context.Context) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(s.bucket) == nil {
			return fmt.Errorf("bucket %s not found", s.bucket)
		}
		return nil
	})
}
