package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brutalist/internal/config"
	"github.com/alexisbeaulieu97/brutalist/internal/document"
	"github.com/alexisbeaulieu97/brutalist/internal/events"
	"github.com/alexisbeaulieu97/brutalist/internal/logger"
	"github.com/alexisbeaulieu97/brutalist/internal/storage"
	"github.com/alexisbeaulieu97/brutalist/internal/theme"
)

// AppContext bundles the services a command needs. It is built per
// invocation and released with Close.
type AppContext struct {
	Config    *config.Config
	Logger    *logger.Logger
	Store     storage.Store
	Document  *document.Document
	Publisher events.Publisher
	Provider  *theme.Provider
}

// runWithApp wraps a command body so it receives a mounted AppContext that
// is always released afterwards.
func runWithApp(flags *rootFlags, operation string, fn func(cmd *cobra.Command, args []string, app *AppContext) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd.Context(), cmd, flags, operation)
		if err != nil {
			return err
		}
		defer app.Close()
		return fn(cmd, args, app)
	}
}

func newAppContext(ctx context.Context, cmd *cobra.Command, flags *rootFlags, operation string) (*AppContext, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	overrides := map[string]any{}
	if flags.verbose {
		overrides[config.KeyLogLevel] = "debug"
	}
	if strings.TrimSpace(flags.backend) != "" {
		overrides[config.KeyStorageBackend] = flags.backend
	}
	if strings.TrimSpace(flags.storePath) != "" {
		overrides[config.KeyStoragePath] = flags.storePath
	}

	cfg, err := config.Load(config.WithOverrides(overrides))
	if err != nil {
		return nil, newCommandError(operation, "loading configuration", err, "Check ~/.brutalist/config.yaml, .brutalist/config.yaml and BRUTALIST_* variables.")
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Human,
		Writer:        cmd.ErrOrStderr(),
		Component:     "cli",
	})
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Use one of debug, info, warn or error for log.level.")
	}

	storePath, err := cfg.ResolvedStoragePath()
	if err != nil {
		return nil, newCommandError(operation, "determining storage path", err, "Ensure your HOME directory is set correctly or set storage.path.")
	}
	store := openStore(ctx, cmd, log, cfg.Storage.Backend, storePath)

	initial, err := loadInitialTheme(cfg.Theme.Initial)
	if err != nil {
		closeStore(store)
		return nil, newCommandError(operation, fmt.Sprintf("loading initial theme %q", cfg.Theme.Initial), err, "Point theme.initial at a built-in id or a readable theme file.")
	}

	doc := document.New()
	publisher := events.NewLoggingPublisher(log.Component("events"))
	provider := theme.Mount(ctx, theme.Options{
		Initial:   initial,
		Store:     store,
		Persist:   cfg.Theme.Persist,
		Root:      doc,
		Publisher: publisher,
		Logger:    log.Component("theme"),
	})

	return &AppContext{
		Config:    cfg,
		Logger:    log,
		Store:     store,
		Document:  doc,
		Publisher: publisher,
		Provider:  provider,
	}, nil
}

// Close unmounts the provider and releases storage.
func (a *AppContext) Close() {
	if a == nil {
		return
	}
	if a.Provider != nil {
		a.Provider.Unmount()
	}
	closeStore(a.Store)
}

// openStore falls back to an in-memory store when the configured backend
// cannot be opened, so theme commands keep working on the default theme.
func openStore(ctx context.Context, cmd *cobra.Command, log *logger.Logger, backend, path string) storage.Store {
	store, err := storage.Open(ctx, storage.Backend(backend), path, storage.WithLogger(log.Component("storage")))
	if err == nil {
		return store
	}
	log.Warn("storage unavailable, using memory store", map[string]any{"backend": backend, "path": path, "error": err.Error()})
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s storage at %s is unavailable, changes will not be saved: %v\n", backend, path, err)
	return storage.NewMemoryStore()
}

func closeStore(store storage.Store) {
	if closer, ok := store.(io.Closer); ok {
		_ = closer.Close()
	}
}

// loadInitialTheme turns theme.initial into a Mount candidate: nothing, a
// built-in or a decoded theme document.
func loadInitialTheme(ref string) (any, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, nil
	}
	if t, ok := theme.GetThemeByID(ref); ok {
		return t, nil
	}
	return readThemeFile(ref)
}

func readThemeFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return theme.DecodeTheme(path, data, theme.FormatFromPath(path))
}
