package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/alexisbeaulieu97/brutalist/internal/logger"
	brutalerrors "github.com/alexisbeaulieu97/brutalist/pkg/errors"
)

const fileFormatVersion = "1.0"

// corruptSuffix is appended to a store document that could not be parsed.
const corruptSuffix = ".corrupt"

// errCorruptDocument marks a store document that exists but is not valid JSON.
var errCorruptDocument = errors.New("failed to parse store")

// fileDocument is the on-disk layout of a FileStore.
type fileDocument struct {
	Version string            `json:"version"`
	Slots   map[string]string `json:"slots"`
}

// FileStore keeps every slot in one JSON document and rewrites it atomically.
type FileStore struct {
	path  string
	log   *logger.Logger
	mu    sync.RWMutex
	slots map[string]string
}

// NewFileStore creates the parent directory and loads any existing document.
// A document that cannot be parsed is moved aside to "<path>.corrupt" and
// the store starts empty.
func NewFileStore(path string, opts ...Option) (*FileStore, error) {
	o := applyOptions(opts)
	s := &FileStore{
		path:  path,
		log:   o.log,
		slots: map[string]string{},
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, brutalerrors.NewStorageError("open", "", fmt.Errorf("create store directory: %w", err))
	}

	err := s.load()
	switch {
	case err == nil, os.IsNotExist(err):
	case errors.Is(err, errCorruptDocument):
		s.quarantine(err)
	default:
		return nil, brutalerrors.NewStorageError("open", "", err)
	}
	return s, nil
}

// quarantine keeps the unreadable document for inspection so the next write
// starts from a clean file.
func (s *FileStore) quarantine(cause error) {
	fields := map[string]any{"path": s.path, "error": cause.Error()}
	backup := s.path + corruptSuffix
	if err := os.Rename(s.path, backup); err != nil {
		fields["rename_error"] = err.Error()
		s.log.Warn("store document is unreadable, starting empty", fields)
		return
	}
	fields["backup"] = backup
	s.log.Warn("store document is unreadable, moved aside and starting empty", fields)
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", errCorruptDocument, err)
	}
	if doc.Slots != nil {
		s.slots = doc.Slots
	}
	return nil
}

// save writes the document to disk atomically. Callers hold the lock.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(fileDocument{Version: fileFormatVersion, Slots: s.slots}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

// Get returns the slot value or ErrNotFound.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[key]
	if !ok {
		return nil, ErrNotFound
	}
	return []byte(value), nil
}

// Set writes the slot and persists the document.
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.slots[key]
	s.slots[key] = string(value)
	if err := s.save(); err != nil {
		if existed {
			s.slots[key] = previous
		} else {
			delete(s.slots, key)
		}
		return brutalerrors.NewStorageError("write", key, err)
	}
	return nil
}

// Delete clears the slot. Deleting a missing key is not an error.
func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.slots[key]
	if !existed {
		return nil
	}
	delete(s.slots, key)
	if err := s.save(); err != nil {
		s.slots[key] = previous
		return brutalerrors.NewStorageError("delete", key, err)
	}
	return nil
}
