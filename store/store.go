// Package store connects to the data store and persists timer and session
// state
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	errAlreadyRunning = errors.New(
		"is notehub already running? Only one instance can be active at a time",
	)
	errUnknownNamespace = errors.New("unknown store namespace")
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// Bucket is a KV backed by a single BoltDB bucket.
type Bucket struct {
	db   *bolt.DB
	name []byte
}

// Namespace returns the KV for the named bucket.
func (c *Client) Namespace(name string) *Bucket {
	return &Bucket{
		db:   c.DB,
		name: []byte(name),
	}
}

func (b *Bucket) Get(key string) (string, bool, error) {
	var (
		value string
		found bool
	)

	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(b.name)
		if bucket == nil {
			return fmt.Errorf("%w: %s", errUnknownNamespace, b.name)
		}

		v := bucket.Get([]byte(key))
		if v == nil {
			return nil
		}

		// v is only valid for the life of the transaction
		value, found = string(v), true

		return nil
	})

	return value, found, err
}

func (b *Bucket) Set(key, value string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(b.name)
		if bucket == nil {
			return fmt.Errorf("%w: %s", errUnknownNamespace, b.name)
		}

		return bucket.Put([]byte(key), []byte(value))
	})
}

func (b *Bucket) Delete(key string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(b.name)
		if bucket == nil {
			return fmt.Errorf("%w: %s", errUnknownNamespace, b.name)
		}

		return bucket.Delete([]byte(key))
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection with the timer and auth
// namespaces created.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{NamespaceTimer, NamespaceAuth} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Client{
		db,
	}, nil
}
