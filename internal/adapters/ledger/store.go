// Package ledger records the last build and the last test run of every target in a bbolt file.
package ledger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	bucketBuilds = []byte("builds")
	bucketRuns   = []byte("runs")
)

// openTimeout bounds the wait for the file lock held by a concurrent rig process.
const openTimeout = 2 * time.Second

var _ ports.BuildInfoStore = (*Store)(nil)

// Store implements ports.BuildInfoStore on top of bbolt.
type Store struct {
	db *bbolt.DB
}

// NewStore opens (or creates) the ledger at path, creating parent directories as needed.
func NewStore(path string) (*Store, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create ledger directory"), "path", path)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open ledger"), "path", path)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketBuilds, bucketRuns} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to create bucket"), "bucket", string(b))
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, zerr.With(err, "path", path)
	}

	return &Store{db: db}, nil
}

// OpenStoreReadOnly opens an existing ledger at path without creating or modifying anything.
// The file lock is shared, so concurrent readers do not wait for each other.
func OpenStoreReadOnly(path string) (*Store, error) {
	path = filepath.Clean(path)
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: openTimeout, ReadOnly: true})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open ledger"), "path", path)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt file.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return zerr.Wrap(err, "failed to close ledger")
	}
	return nil
}

// GetBuild retrieves the last successful build of target. Returns nil, nil if none was recorded.
func (s *Store) GetBuild(target string) (*domain.BuildInfo, error) {
	var info domain.BuildInfo
	found, err := s.getJSON(bucketBuilds, target, &info)
	if err != nil || !found {
		return nil, err
	}
	return &info, nil
}

// PutBuild records a successful build, replacing the previous record of the same target.
func (s *Store) PutBuild(info domain.BuildInfo) error {
	return s.putJSON(bucketBuilds, info.Target, info)
}

// GetRun retrieves the last run of target. Returns nil, nil if none was recorded.
func (s *Store) GetRun(target string) (*domain.RunInfo, error) {
	var info domain.RunInfo
	found, err := s.getJSON(bucketRuns, target, &info)
	if err != nil || !found {
		return nil, err
	}
	return &info, nil
}

// PutRun records a test run, replacing the previous record of the same target.
func (s *Store) PutRun(info domain.RunInfo) error {
	return s.putJSON(bucketRuns, info.Target, info)
}

func (s *Store) putJSON(bucket []byte, key string, val any) error {
	if key == "" {
		return zerr.With(zerr.New("ledger key must not be empty"), "bucket", string(bucket))
	}
	data, err := json.Marshal(val)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to marshal ledger record"), "target", key)
	}
	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), data)
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write ledger record"), "target", key)
	}
	return nil
}

func (s *Store) getJSON(bucket []byte, key string, out any) (bool, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			// Values are only valid inside the transaction.
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to read ledger record"), "target", key)
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to unmarshal ledger record"), "target", key)
	}
	return true, nil
}

// Opener implements ports.StoreOpener.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens the ledger at path.
func (o *Opener) Open(path string) (ports.BuildInfoStore, error) {
	return NewStore(path)
}

// OpenReadOnly opens the existing ledger at path for reading.
func (o *Opener) OpenReadOnly(path string) (ports.BuildInfoStore, error) {
	return OpenStoreReadOnly(path)
}
