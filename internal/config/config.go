package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	KeyThemeInitial   = "theme.initial"
	KeyThemePersist   = "theme.persist"
	KeyStorageBackend = "storage.backend"
	KeyStoragePath    = "storage.path"
	KeyLogLevel       = "log.level"
	KeyLogHuman       = "log.human"
	KeyServerListen   = "server.listen"
)

const (
	envPrefix       = "BRUTALIST"
	configDirName   = ".brutalist"
	configFileName  = "config.yaml"
	DefaultListen   = "127.0.0.1:7878"
	DefaultLogLevel = "info"
)

// Config is the resolved application configuration.
type Config struct {
	Theme   ThemeConfig   `mapstructure:"theme"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
	Server  ServerConfig  `mapstructure:"server"`
}

// ThemeConfig controls how the theme provider starts.
type ThemeConfig struct {
	Initial string `mapstructure:"initial" validate:"theme_ref"`
	Persist bool   `mapstructure:"persist"`
}

// StorageConfig selects where the active theme is persisted.
type StorageConfig struct {
	Backend string `mapstructure:"backend" validate:"oneof=file sqlite memory"`
	Path    string `mapstructure:"path"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Human bool   `mapstructure:"human"`
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Listen string `mapstructure:"listen" validate:"listen_addr"`
}

// ResolvedStoragePath returns Storage.Path or the per-backend default under
// the user's config directory.
func (c *Config) ResolvedStoragePath() (string, error) {
	if strings.TrimSpace(c.Storage.Path) != "" {
		return c.Storage.Path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	name := "theme.json"
	if c.Storage.Backend == "sqlite" {
		name = "theme.db"
	}
	return filepath.Join(home, configDirName, name), nil
}

type loadSettings struct {
	workingDir        string
	projectConfigPath string
	userConfigPath    string
	overrides         map[string]any
}

// Option configures Load. Useful for tests to override paths.
type Option func(*loadSettings)

// WithWorkingDir overrides the directory used for project config discovery.
func WithWorkingDir(dir string) Option {
	return func(s *loadSettings) {
		s.workingDir = dir
	}
}

// WithProjectConfig explicitly sets the project config path instead of discovery.
func WithProjectConfig(path string) Option {
	return func(s *loadSettings) {
		s.projectConfigPath = path
	}
}

// WithUserConfig overrides the default user config path.
func WithUserConfig(path string) Option {
	return func(s *loadSettings) {
		s.userConfigPath = path
	}
}

// WithOverrides injects values typically coming from CLI flags. They take
// precedence over every other layer.
func WithOverrides(overrides map[string]any) Option {
	return func(s *loadSettings) {
		if s.overrides == nil {
			s.overrides = map[string]any{}
		}
		for k, v := range overrides {
			s.overrides[k] = v
		}
	}
}

// Load resolves configuration using the precedence:
// defaults < user config < project config < environment variables < overrides.
func Load(opts ...Option) (*Config, error) {
	settings := loadSettings{}
	for _, opt := range opts {
		opt(&settings)
	}

	workingDir := strings.TrimSpace(settings.workingDir)
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determine working directory: %w", err)
		}
		workingDir = wd
	}

	userConfigPath := strings.TrimSpace(settings.userConfigPath)
	if userConfigPath == "" {
		path, err := defaultUserConfigPath()
		if err != nil {
			return nil, err
		}
		userConfigPath = path
	}

	projectConfigPath := strings.TrimSpace(settings.projectConfigPath)
	if projectConfigPath == "" {
		path, err := findProjectConfig(workingDir)
		if err != nil {
			return nil, err
		}
		projectConfigPath = path
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := mergeConfigFile(v, userConfigPath); err != nil {
		return nil, fmt.Errorf("load user config: %w", err)
	}
	if projectConfigPath != userConfigPath {
		if err := mergeConfigFile(v, projectConfigPath); err != nil {
			return nil, fmt.Errorf("load project config: %w", err)
		}
	}
	for k, val := range settings.overrides {
		v.Set(k, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := validatorInstance().Struct(cfg); err != nil {
		return nil, convertValidationError(err)
	}
	return &cfg, nil
}

func mergeConfigFile(v *viper.Viper, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

func findProjectConfig(startDir string) (string, error) {
	if strings.TrimSpace(startDir) == "" {
		return "", nil
	}
	dir := startDir
	for {
		candidate := filepath.Join(dir, configDirName, configFileName)
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %s is a directory", candidate)
			}
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyThemeInitial, "")
	v.SetDefault(KeyThemePersist, true)
	v.SetDefault(KeyStorageBackend, "file")
	v.SetDefault(KeyStoragePath, "")
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogHuman, true)
	v.SetDefault(KeyServerListen, DefaultListen)
}
