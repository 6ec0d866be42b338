package theme

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/alexisbeaulieu97/brutalist/internal/logger"
	"github.com/alexisbeaulieu97/brutalist/internal/storage"
)

// StorageKey is the slot holding the persisted theme record.
const StorageKey = "brutalist-theme"

// LoadThemeFromStorage reads and decodes the persisted record. It returns nil
// when the slot is empty or unreadable and logs why. The result is not
// validated.
func LoadThemeFromStorage(ctx context.Context, store storage.Store, log *logger.Logger) *Theme {
	if store == nil {
		return nil
	}

	data, err := store.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		log.Debug("no persisted theme", map[string]any{"key": StorageKey})
		return nil
	}
	if err != nil {
		log.Warn("failed to read persisted theme", map[string]any{"key": StorageKey, "error": err.Error()})
		return nil
	}

	var t Theme
	if err := json.Unmarshal(data, &t); err != nil {
		log.Warn("failed to decode persisted theme", map[string]any{"key": StorageKey, "error": err.Error()})
		return nil
	}
	return &t
}

func persistTheme(ctx context.Context, store storage.Store, t Theme, log *logger.Logger) {
	if store == nil {
		return
	}
	data, err := json.Marshal(t)
	if err != nil {
		log.Error(err, "failed to encode theme for storage", map[string]any{"theme": t.ID})
		return
	}
	if err := store.Set(ctx, StorageKey, data); err != nil {
		log.Error(err, "failed to persist theme", map[string]any{"theme": t.ID})
	}
}

func clearPersistedTheme(ctx context.Context, store storage.Store, log *logger.Logger) {
	if store == nil {
		return
	}
	if err := store.Delete(ctx, StorageKey); err != nil {
		log.Error(err, "failed to clear persisted theme")
	}
}
