package excel

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pybay/runsheet-cli/internal/core/domain"
	"github.com/pybay/runsheet-cli/internal/core/ports/driven"
	"github.com/pybay/runsheet-cli/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.SessionSource = (*Reader)(nil)

// Reader loads a Sessionize session export. All data is expected on
// the first sheet, headers on the first row.
type Reader struct{}

// NewReader creates an export reader.
func NewReader() *Reader { return &Reader{} }

// Load implements driven.SessionSource.
func (r *Reader) Load(ctx context.Context, path string) ([]domain.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open export %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: export has no sheets", domain.ErrInvalidInput)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: export sheet %s is empty", domain.ErrInvalidInput, sheets[0])
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}
	if err := validateColumns(headers); err != nil {
		return nil, err
	}

	raw := make([]domain.RawRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if empty(cells) {
			continue
		}
		row := make(domain.RawRow, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(cells) {
				row[header] = cells[i]
			} else {
				row[header] = ""
			}
		}
		raw = append(raw, row)
	}

	logger.Debug("Loaded %d rows from %s (sheet %q, %d columns)",
		len(raw), path, sheets[0], len(headers))
	return raw, nil
}

// validateColumns checks that every expected column is present.
// Extra columns are fine; missing ones are a fatal schema mismatch,
// reported all at once so the organiser fixes the export in one go.
func validateColumns(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	var missing []string
	for _, col := range domain.ExpectedColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrMissingColumns, strings.Join(missing, "; "))
	}
	return nil
}

func empty(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
