package domain

import "time"

// Settings are the run-time knobs persisted in the config file.
// CLI flags override any field.
type Settings struct {
	// CacheDir is the speaker photo cache root.
	CacheDir string

	// OutputPath is the default workbook destination.
	OutputPath string

	// FetchTimeout bounds a single photo download.
	FetchTimeout time.Duration

	// RequestsPerSecond throttles photo downloads.
	RequestsPerSecond float64

	// FetchWorkers is the prefetch pool size.
	FetchWorkers int
}

// DefaultSettings returns conservative defaults: downloads well below
// anything Sessionize would throttle.
func DefaultSettings() Settings {
	return Settings{
		OutputPath:        "run_sheets.xlsx",
		FetchTimeout:      10 * time.Second,
		RequestsPerSecond: 8.0,
		FetchWorkers:      4,
	}
}
