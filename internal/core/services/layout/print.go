package layout

import (
	"context"
	"strconv"

	"github.com/pybay/runsheet-cli/internal/core/domain"
	"github.com/pybay/runsheet-cli/internal/core/ports/driven"
	"github.com/pybay/runsheet-cli/internal/logger"
)

var _ Strategy = (*Print)(nil)

// Print grid geometry: a fixed 12-column card layout. The header band
// and each record's highlight band share the same merged zones.
const printCols = 12

var printZones = []struct {
	label  string
	c1, c2 int
}{
	{"Room", 0, 1},
	{"Time", 2, 3},
	{"Duration", 4, 4},
	{"Title", 5, 9},
	{"Speaker", 10, 11},
}

// photoC1, photoC2 bound the rightmost zone holding the speaker photo.
const (
	photoC1   = 10
	photoC2   = 11
	photoRows = 6
)

// Print renders detail records as stacked cards for 8.5x11 portrait
// output. Each card: a yellow highlight band, a personal-detail block
// with the photo merged down its right side, then the long-text rows
// with content-sized heights.
type Print struct {
	cache driven.ImageCache
	year  string
}

// NewPrint creates the print strategy. cache resolves speaker photos;
// year appears in the printed page header.
func NewPrint(cache driven.ImageCache, year string) *Print {
	return &Print{cache: cache, year: year}
}

// Suffix implements Strategy.
func (p *Print) Suffix() string { return "detail_print" }

// Layout implements Strategy.
func (p *Print) Layout(ctx context.Context, set domain.RecordSet, roomName string) ([]domain.DrawInstruction, error) {
	var e emitter

	for col := 0; col < printCols; col++ {
		e.colWidth(col, 9)
	}
	e.page(detailPage(p.year))

	row := 0
	for i, rec := range set.Records {
		if i == 0 {
			if err := p.headerBand(&e, row); err != nil {
				return nil, err
			}
			row++
		}
		next, err := p.card(ctx, &e, row, rec)
		if err != nil {
			return nil, err
		}
		row = next
	}

	logger.Debug("print layout %s: %d records, %d rows, %d instructions",
		roomName, len(set.Records), row, len(e.ins))
	return e.ins, nil
}

// headerBand emits the blue zone labels. Emitted once; the page setup
// repeats it on every printed page.
func (p *Print) headerBand(e *emitter, row int) error {
	for _, z := range printZones {
		if err := e.merge(domain.Span(row, z.c1, row, z.c2), z.label, domain.StyleHeader); err != nil {
			return err
		}
	}
	e.rowHeight(row, 30)
	return nil
}

// card emits one record's block and returns the next free row.
func (p *Print) card(ctx context.Context, e *emitter, row int, rec domain.Record) (int, error) {
	// Yellow highlight band mirroring the header zones.
	values := []string{
		rec.Room,
		rec.TimeDisplay(),
		strconv.Itoa(rec.DurationMinutes),
		rec.Title,
		rec.Speaker,
	}
	for zi, z := range printZones {
		if err := e.merge(domain.Span(row, z.c1, row, z.c2), values[zi], domain.StyleHighlight); err != nil {
			return 0, err
		}
	}
	row++

	// Personal-detail block. The photo zone is merged across all six
	// rows before any image lands in it, so the picture spans the
	// whole block.
	pr := row
	if err := e.write(pr, 0, "pronunciation:", domain.StyleLabel); err != nil {
		return 0, err
	}
	if err := e.merge(domain.Span(pr, 1, pr, photoC1-1), "", domain.StyleCell); err != nil {
		return 0, err
	}
	if err := p.photo(ctx, e, domain.Span(pr, photoC1, pr+photoRows-1, photoC2), rec.PhotoURL); err != nil {
		return 0, err
	}

	details := []struct{ label, value string }{
		{"first name:", rec.FirstNamePron},
		{"last name:", rec.LastNamePron},
		{"", ""},
		{"pronouns:", rec.Pronouns},
		{"first talk:", rec.FirstTalk},
		{"phone:", rec.Phone},
	}
	for di, d := range details {
		r := pr + 1 + di
		if err := e.write(r, 0, d.label, domain.StyleLabel); err != nil {
			return 0, err
		}
		if err := e.merge(domain.Span(r, 1, r, photoC1-1), d.value, domain.StyleCell); err != nil {
			return 0, err
		}
	}
	row = pr + 1 + len(details)

	if err := e.merge(domain.Span(row, 0, row, printCols-1), "", domain.StyleNone); err != nil {
		return 0, err
	}
	row++

	// Long-text rows, heights by content length.
	if err := e.write(row, 0, "Attendees Learn:", domain.StyleLabel); err != nil {
		return 0, err
	}
	if err := e.merge(domain.Span(row, 1, row, printCols-1), rec.Learn, domain.StyleCellWrap); err != nil {
		return 0, err
	}
	e.rowHeight(row, wrapHeight(rec.Learn))
	row++

	if err := e.write(row, 0, "Speaker Bullets:", domain.StyleLabel); err != nil {
		return 0, err
	}
	row++

	for _, bullet := range rec.Bullets {
		if err := e.merge(domain.Span(row, 1, row, printCols-1), bullet, domain.StyleCellWrap); err != nil {
			return 0, err
		}
		e.rowHeight(row, wrapHeight(bullet))
		row++
	}

	if err := e.merge(domain.Span(row, 0, row, printCols-1), "", domain.StyleNone); err != nil {
		return 0, err
	}
	row++

	return row, nil
}

// photo merges the zone, then fills it with the cached 144x144 image,
// or the bare URL as a hyperlink when resolution fails. The merge
// always comes first; the image instruction targets cells the merge
// already claimed.
func (p *Print) photo(ctx context.Context, e *emitter, zone domain.Bounds, url string) error {
	if url == "" {
		return e.merge(zone, "", domain.StyleCell)
	}
	path, err := p.cache.Resolve(ctx, url, domain.PhotoSize)
	if err != nil {
		logger.Warn("photo unavailable, falling back to URL text: %v", err)
		return e.mergeLink(zone, url, url)
	}
	if err := e.merge(zone, "", domain.StyleCell); err != nil {
		return err
	}
	return e.image(zone, path, url)
}
