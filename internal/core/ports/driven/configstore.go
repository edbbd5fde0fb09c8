package driven

import "github.com/pybay/runsheet-cli/internal/core/domain"

// ConfigStore persists user settings between runs.
type ConfigStore interface {
	// Load returns the stored settings, with defaults filled in for
	// absent fields. A missing file is not an error.
	Load() (domain.Settings, error)

	// Save persists the settings.
	Save(s domain.Settings) error

	// Path returns the backing file location, for messages.
	Path() string
}
