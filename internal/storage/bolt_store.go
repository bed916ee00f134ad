package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	notificationBucket = "notifications"
	expiryValueBytes   = 8
)

var errBucketMissing = errors.New("notification bucket missing")

// boltStore keeps notification ids in a single bucket, each mapped to its
// big-endian unix expiry.
type boltStore struct {
	db              *bolt.DB
	cleanupMu       sync.Mutex
	lastCleanup     atomic.Int64
	notificationTTL time.Duration
	cleanupInterval time.Duration
	now             func() time.Time
}

// openBolt initializes a BoltDB-backed Store.
func openBolt(path string, opts Options) (*boltStore, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(notificationBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init bucket: %w", err)
	}

	store := &boltStore{
		db:              db,
		notificationTTL: opts.NotificationTTL,
		cleanupInterval: opts.CleanupInterval,
		now:             time.Now,
	}
	store.lastCleanup.Store(store.now().Unix())
	return store, nil
}

// Close closes the BoltDB store.
func (b *boltStore) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// SeenNotification reports whether id was marked and has not expired yet.
func (b *boltStore) SeenNotification(id string) (bool, error) {
	if b == nil || b.db == nil {
		return false, nil
	}
	if strings.TrimSpace(id) == "" {
		return false, errors.New("notification id is empty")
	}

	now := b.now()
	if err := b.maybeCleanupExpired(now); err != nil {
		return false, err
	}

	var (
		found   bool
		expired bool
	)
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(notificationBucket))
		if bucket == nil {
			return errBucketMissing
		}
		value := bucket.Get([]byte(id))
		if value == nil {
			return nil
		}
		expiry, ok := decodeExpiry(value)
		found = ok && expiry.After(now)
		expired = !found
		return nil
	})
	if err != nil || !expired {
		return found, err
	}

	// Drop the stale key now rather than waiting for the next sweep.
	return false, b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(notificationBucket))
		if bucket == nil {
			return errBucketMissing
		}
		return bucket.Delete([]byte(id))
	})
}

// MarkNotification records id as handled until the TTL elapses.
func (b *boltStore) MarkNotification(id string) error {
	if b == nil || b.db == nil {
		return nil
	}
	if strings.TrimSpace(id) == "" {
		return errors.New("notification id is empty")
	}

	now := b.now()
	if err := b.maybeCleanupExpired(now); err != nil {
		return err
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(notificationBucket))
		if bucket == nil {
			return errBucketMissing
		}
		return bucket.Put([]byte(id), encodeExpiry(now.Add(b.notificationTTL)))
	})
}

// maybeCleanupExpired sweeps expired ids at most once per cleanup interval.
func (b *boltStore) maybeCleanupExpired(now time.Time) error {
	if now.Sub(time.Unix(b.lastCleanup.Load(), 0)) < b.cleanupInterval {
		return nil
	}

	b.cleanupMu.Lock()
	defer b.cleanupMu.Unlock()

	if now.Sub(time.Unix(b.lastCleanup.Load(), 0)) < b.cleanupInterval {
		return nil
	}

	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(notificationBucket))
		if bucket == nil {
			return errBucketMissing
		}

		cursor := bucket.Cursor()
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			if expiry, ok := decodeExpiry(v); ok && expiry.After(now) {
				continue
			}
			if err := cursor.Delete(); err != nil {
				return err
			}
		}
		return nil
	})
	if err == nil {
		b.lastCleanup.Store(now.Unix())
	}
	return err
}

func encodeExpiry(t time.Time) []byte {
	buf := make([]byte, expiryValueBytes)
	binary.BigEndian.PutUint64(buf, uint64(t.Unix()))
	return buf
}

func decodeExpiry(value []byte) (time.Time, bool) {
	if len(value) != expiryValueBytes {
		return time.Time{}, false
	}
	unix := int64(binary.BigEndian.Uint64(value))
	if unix <= 0 {
		return time.Time{}, false
	}
	return time.Unix(unix, 0), true
}
