package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/brutalist/internal/logger"
)

// ErrNotFound is returned by Get when a key has never been written or was deleted.
var ErrNotFound = errors.New("storage: key not found")

// Store is a key-value slot store. Values are opaque bytes.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

type options struct {
	log *logger.Logger
}

// Option customises a store.
type Option func(*options)

// WithLogger routes recoverable storage problems to log.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func applyOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Open builds the Store for backend rooted at path. The caller closes the
// returned store when it implements io.Closer.
func Open(ctx context.Context, backend Backend, path string, opts ...Option) (Store, error) {
	switch backend {
	case BackendFile:
		store, err := NewFileStore(path, opts...)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendSQLite:
		store, err := OpenSQLite(ctx, path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
