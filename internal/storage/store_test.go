package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/brutalist/internal/logger"
	brutalerrors "github.com/alexisbeaulieu97/brutalist/pkg/errors"
)

func storesUnderTest(t *testing.T) map[string]Store {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	file, err := NewFileStore(filepath.Join(dir, "file", "store.json"))
	require.NoError(t, err)

	sqlite, err := OpenSQLite(ctx, filepath.Join(dir, "sqlite", "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]Store{
		"file":   file,
		"sqlite": sqlite,
		"memory": NewMemoryStore(),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, "brutalist-theme")
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Set(ctx, "brutalist-theme", []byte(`{"id":"neon"}`)))
			value, err := store.Get(ctx, "brutalist-theme")
			require.NoError(t, err)
			require.JSONEq(t, `{"id":"neon"}`, string(value))

			require.NoError(t, store.Set(ctx, "brutalist-theme", []byte(`{"id":"classic"}`)))
			value, err = store.Get(ctx, "brutalist-theme")
			require.NoError(t, err)
			require.JSONEq(t, `{"id":"classic"}`, string(value))

			require.NoError(t, store.Delete(ctx, "brutalist-theme"))
			require.NoError(t, store.Delete(ctx, "brutalist-theme"))
			_, err = store.Get(ctx, "brutalist-theme")
			require.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	first, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "k", []byte("v")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc fileDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Equal(t, fileFormatVersion, doc.Version)
	require.Equal(t, "v", doc.Slots["k"])

	second, err := NewFileStore(path)
	require.NoError(t, err)
	value, err := second.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), value)

	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestFileStoreRecoversFromCorruptDocument(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	var logs bytes.Buffer
	log, err := logger.New(logger.Options{Level: "warn", Writer: &logs})
	require.NoError(t, err)

	store, err := NewFileStore(path, WithLogger(log))
	require.NoError(t, err)
	require.Contains(t, logs.String(), "store document is unreadable")

	_, err = store.Get(ctx, "brutalist-theme")
	require.ErrorIs(t, err, ErrNotFound)

	backup, err := os.ReadFile(path + corruptSuffix)
	require.NoError(t, err)
	require.Equal(t, "{not json", string(backup))
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))

	require.NoError(t, store.Set(ctx, "brutalist-theme", []byte(`{"id":"neon"}`)))
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	got, err := reopened.Get(ctx, "brutalist-theme")
	require.NoError(t, err)
	require.Equal(t, `{"id":"neon"}`, string(got))
}

func TestFileStoreReportsUnreadableDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.json")
	require.NoError(t, os.Mkdir(path, 0755))

	_, err := NewFileStore(path)
	var storageErr *brutalerrors.StorageError
	require.ErrorAs(t, err, &storageErr)
}

func TestSQLiteStorePersistsAcrossHandles(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.db")

	first, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "k", []byte("v")))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	value, err := second.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), value)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	value := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", value))
	value[0] = 'z'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), got)
}

func TestOpenSelectsBackend(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	file, err := Open(ctx, BackendFile, filepath.Join(dir, "a.json"))
	require.NoError(t, err)
	require.IsType(t, &FileStore{}, file)

	sqlite, err := Open(ctx, BackendSQLite, filepath.Join(dir, "a.db"))
	require.NoError(t, err)
	require.IsType(t, &SQLiteStore{}, sqlite)
	require.NoError(t, sqlite.(io.Closer).Close())

	memory, err := Open(ctx, BackendMemory, "")
	require.NoError(t, err)
	require.IsType(t, &MemoryStore{}, memory)

	_, err = Open(ctx, Backend("redis"), "")
	require.Error(t, err)
}
