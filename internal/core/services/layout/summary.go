package layout

import (
	"context"

	"github.com/pybay/runsheet-cli/internal/core/domain"
)

var _ Strategy = (*Summary)(nil)

// summaryWidths are the fixed column widths, in character units, for
// room, time, title and speaker.
var summaryWidths = []float64{15, 12, 60, 30}

// Summary is the flat four-column schedule table: a styled, frozen
// header row and one row per record. No merges.
type Summary struct{}

// NewSummary creates the summary strategy.
func NewSummary() *Summary { return &Summary{} }

// Suffix implements Strategy.
func (s *Summary) Suffix() string { return "summary" }

// Layout implements Strategy.
func (s *Summary) Layout(_ context.Context, set domain.RecordSet, _ string) ([]domain.DrawInstruction, error) {
	var e emitter

	for col, w := range summaryWidths {
		e.colWidth(col, w)
	}

	for col, name := range domain.SummaryColumns {
		if err := e.write(0, col, name, domain.StyleHeader); err != nil {
			return nil, err
		}
	}
	e.rowHeight(0, 30)
	e.freeze(1)

	for i, rec := range set.Records {
		row := i + 1
		cells := []struct {
			text  string
			style domain.StyleTag
		}{
			{rec.Room, domain.StyleCell},
			{rec.TimeDisplay(), domain.StyleTime},
			{rec.Title, domain.StyleTitle},
			{rec.Speaker, domain.StyleCell},
		}
		for col, c := range cells {
			if err := e.write(row, col, c.text, c.style); err != nil {
				return nil, err
			}
		}
	}

	return e.ins, nil
}
