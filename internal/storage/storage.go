// Package storage provides durable named slots of string data, the terminal
// counterpart of a browser's localStorage. Two backends exist: one file per
// slot in a directory, and a single SQLite database.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Slots is a durable key/value store. Get reports ok=false for a slot that
// was never written or has been removed.
type Slots interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// Driver names accepted by Open.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// ErrInvalidKey is returned for keys that are empty or not a plain name.
var ErrInvalidKey = errors.New("invalid slot key")

// Open returns the backend named by driver rooted at dir. The returned close
// function releases backend resources and is never nil.
func Open(driver, dir string) (Slots, func() error, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", DriverFile:
		fs, err := NewFileStore(dir)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() error { return nil }, nil
	case DriverSQLite:
		db, err := OpenSQLite(filepath.Join(dir, "marquee.db"))
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

func validKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
