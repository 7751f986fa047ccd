// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// bucketSession holds all session keys; the file carries nothing else.
var bucketSession = []byte("session")

// openTimeout bounds the wait on the bbolt file lock so a second portal
// process fails fast instead of hanging.
const openTimeout = time.Second

// Bolt is a bbolt-backed store. A single file, a single bucket, string
// keys and values. Safe for concurrent use.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (creating if needed) the store file at path.
func OpenBolt(path string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init store bucket: %w", err)
	}
	return &Bolt{db: db}, nil
}

// Get returns the value for key and whether it exists.
func (b *Bolt) Get(key string) (string, bool) {
	var val string
	var found bool
	b.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketSession).Get([]byte(key)); v != nil {
			val = string(v)
			found = true
		}
		return nil
	})
	return val, found
}

// Set writes key to value.
func (b *Bolt) Set(key, value string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Put([]byte(key), []byte(value))
	})
}

// Delete removes key. Absent keys are not an error.
func (b *Bolt) Delete(key string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Delete([]byte(key))
	})
}

// Close releases the store file.
func (b *Bolt) Close() error {
	return b.db.Close()
}

// Path returns the store file location.
func (b *Bolt) Path() string {
	return b.db.Path()
}
