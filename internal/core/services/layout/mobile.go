package layout

import (
	"context"
	"strconv"

	"github.com/pybay/runsheet-cli/internal/core/domain"
	"github.com/pybay/runsheet-cli/internal/core/ports/driven"
	"github.com/pybay/runsheet-cli/internal/logger"
)

var _ Strategy = (*Mobile)(nil)

// Mobile column widths, in character units. 18 + 30 plus the row
// number gutter renders inside a ~393pt phone viewport without
// horizontal scrolling.
const (
	mobileLabelWidth = 18
	mobileDataWidth  = 30
	imageRowHeight   = 150
)

// Mobile renders detail records as a two-column vertical stack: a
// label column and a data column, one record after another, sized for
// reading on a phone at the venue.
type Mobile struct {
	cache driven.ImageCache
	year  string
}

// NewMobile creates the mobile strategy.
func NewMobile(cache driven.ImageCache, year string) *Mobile {
	return &Mobile{cache: cache, year: year}
}

// Suffix implements Strategy.
func (m *Mobile) Suffix() string { return "detail_mobile" }

// Layout implements Strategy.
func (m *Mobile) Layout(ctx context.Context, set domain.RecordSet, roomName string) ([]domain.DrawInstruction, error) {
	var e emitter

	e.colWidth(0, mobileLabelWidth)
	e.colWidth(1, mobileDataWidth)
	e.page(detailPage(m.year))

	row := 0
	for i, rec := range set.Records {
		if i == 0 {
			if err := e.merge(domain.Span(row, 0, row, 1), roomName, domain.StyleHeader); err != nil {
				return nil, err
			}
			e.rowHeight(row, 30)
			row++
		}
		next, err := m.stack(ctx, &e, row, rec)
		if err != nil {
			return nil, err
		}
		row = next
	}

	logger.Debug("mobile layout %s: %d records, %d rows, %d instructions",
		roomName, len(set.Records), row, len(e.ins))
	return e.ins, nil
}

// stack emits one record's vertical block and returns the next free
// row. Blank spacer rows are skipped, not written.
func (m *Mobile) stack(ctx context.Context, e *emitter, row int, rec domain.Record) (int, error) {
	// Time and duration side by side, deliberately unmerged.
	if err := e.write(row, 0, rec.TimeDisplay(), domain.StyleHighlight); err != nil {
		return 0, err
	}
	if err := e.write(row, 1, strconv.Itoa(rec.DurationMinutes)+" min", domain.StyleHighlight); err != nil {
		return 0, err
	}
	row++

	if err := e.merge(domain.Span(row, 0, row, 1), rec.Title, domain.StyleTitle); err != nil {
		return 0, err
	}
	e.rowHeight(row, wrapHeight(rec.Title))
	row++

	if err := e.merge(domain.Span(row, 0, row, 1), rec.Speaker, domain.StyleCell); err != nil {
		return 0, err
	}
	row++

	row, err := m.photoRows(ctx, e, row, rec.PhotoURL)
	if err != nil {
		return 0, err
	}

	if err := e.write(row, 0, "pronunciation", domain.StyleLabel); err != nil {
		return 0, err
	}
	row++

	pairs := []struct{ label, value string }{
		{"first name:", rec.FirstNamePron},
		{"last name:", rec.LastNamePron},
		{"", ""}, // spacer
		{"pronouns:", rec.Pronouns},
		{"first talk:", rec.FirstTalk},
		{"phone:", rec.Phone},
	}
	for _, p := range pairs {
		if p.label == "" && p.value == "" {
			row++
			continue
		}
		if err := e.write(row, 0, p.label, domain.StyleLabel); err != nil {
			return 0, err
		}
		if err := e.write(row, 1, p.value, domain.StyleCell); err != nil {
			return 0, err
		}
		row++
	}
	row++ // spacer

	if err := e.write(row, 0, "Attendees Learn:", domain.StyleLabel); err != nil {
		return 0, err
	}
	row++
	if err := e.merge(domain.Span(row, 0, row, 1), rec.Learn, domain.StyleCellWrap); err != nil {
		return 0, err
	}
	e.rowHeight(row, wrapHeight(rec.Learn))
	row++
	row++ // spacer

	if err := e.write(row, 0, "Speaker Bullets:", domain.StyleLabel); err != nil {
		return 0, err
	}
	row++
	for _, bullet := range rec.Bullets {
		if err := e.merge(domain.Span(row, 0, row, 1), bullet, domain.StyleCellWrap); err != nil {
			return 0, err
		}
		e.rowHeight(row, wrapHeight(bullet))
		row++
	}

	return row + 2, nil // two separator rows between records
}

// photoRows emits the hyperlink row and the tall image row. The image
// row is merged before the picture is inserted; a record without a
// usable photo keeps the same two-row rhythm, just blank.
func (m *Mobile) photoRows(ctx context.Context, e *emitter, row int, url string) (int, error) {
	if err := e.write(row, 0, "photo:", domain.StyleLabel); err != nil {
		return 0, err
	}
	if url != "" {
		if err := e.link(row, 1, url, url); err != nil {
			return 0, err
		}
	}
	row++

	imageZone := domain.Span(row, 0, row, 1)
	if err := e.merge(imageZone, "", domain.StyleCell); err != nil {
		return 0, err
	}
	e.rowHeight(row, imageRowHeight)
	if url != "" {
		path, err := m.cache.Resolve(ctx, url, domain.PhotoSize)
		if err != nil {
			logger.Warn("photo unavailable for mobile sheet: %v", err)
		} else if err := e.image(imageZone, path, url); err != nil {
			return 0, err
		}
	}
	return row + 1, nil
}
