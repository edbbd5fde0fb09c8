// Package file is a TOML-backed implementation of the config store
// port. Settings live in ~/.runsheet/config.toml by default.
package file

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/pybay/runsheet-cli/internal/core/domain"
	"github.com/pybay/runsheet-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// fileSettings is the TOML shape. Durations are whole seconds so the
// file stays hand-editable.
type fileSettings struct {
	CacheDir            string  `toml:"cache_dir,omitempty"`
	OutputPath          string  `toml:"output_path,omitempty"`
	FetchTimeoutSeconds int     `toml:"fetch_timeout_seconds,omitempty"`
	RequestsPerSecond   float64 `toml:"requests_per_second,omitempty"`
	FetchWorkers        int     `toml:"fetch_workers,omitempty"`
}

// ConfigStore persists settings in a TOML file.
type ConfigStore struct {
	filePath string
}

// NewConfigStore creates a TOML config store. If configDir is empty,
// defaults to ~/.runsheet.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".runsheet")
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return nil, err
	}

	return &ConfigStore{filePath: filepath.Join(configDir, "config.toml")}, nil
}

// Load implements driven.ConfigStore. A missing file yields defaults.
func (s *ConfigStore) Load() (domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, err
	}

	var fs fileSettings
	if err := toml.Unmarshal(data, &fs); err != nil {
		return settings, err
	}

	if fs.CacheDir != "" {
		settings.CacheDir = fs.CacheDir
	}
	if fs.OutputPath != "" {
		settings.OutputPath = fs.OutputPath
	}
	if fs.FetchTimeoutSeconds > 0 {
		settings.FetchTimeout = time.Duration(fs.FetchTimeoutSeconds) * time.Second
	}
	if fs.RequestsPerSecond > 0 {
		settings.RequestsPerSecond = fs.RequestsPerSecond
	}
	if fs.FetchWorkers > 0 {
		settings.FetchWorkers = fs.FetchWorkers
	}
	return settings, nil
}

// Save implements driven.ConfigStore.
func (s *ConfigStore) Save(settings domain.Settings) error {
	fs := fileSettings{
		CacheDir:            settings.CacheDir,
		OutputPath:          settings.OutputPath,
		FetchTimeoutSeconds: int(settings.FetchTimeout / time.Second),
		RequestsPerSecond:   settings.RequestsPerSecond,
		FetchWorkers:        settings.FetchWorkers,
	}
	data, err := toml.Marshal(fs)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0o600)
}

// Path implements driven.ConfigStore.
func (s *ConfigStore) Path() string {
	return s.filePath
}
