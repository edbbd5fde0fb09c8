package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pybay/runsheet-cli/internal/core/domain"
	"github.com/pybay/runsheet-cli/internal/core/ports/driven"
)

// mockSource returns canned rows.
type mockSource struct {
	rows []domain.RawRow
	err  error
}

func (m *mockSource) Load(_ context.Context, _ string) ([]domain.RawRow, error) {
	return m.rows, m.err
}

// mockImageCache resolves every URL to a fixed path and records calls.
type mockImageCache struct {
	resolveErr error
	prefetched []string
	resolved   int
	failed     int
}

func (m *mockImageCache) Resolve(_ context.Context, url string, _ domain.ImageSize) (string, error) {
	if m.resolveErr != nil {
		return "", m.resolveErr
	}
	return "/cache/" + url, nil
}

func (m *mockImageCache) Prefetch(_ context.Context, urls []string, _ []domain.ImageSize) {
	m.prefetched = append(m.prefetched, urls...)
}

func (m *mockImageCache) Stats() (int, int) { return m.resolved, m.failed }

// mockWorkbook records sheet creation and the lifecycle calls.
type mockWorkbook struct {
	sheets      []string
	colours     map[string]string
	sheetErr    error
	finalizeErr error
	finalized   bool
	discarded   bool
	applied     int
}

func (m *mockWorkbook) NewSheet(name, tabColour string) (driven.SheetWriter, error) {
	if m.sheetErr != nil {
		return nil, m.sheetErr
	}
	if m.colours == nil {
		m.colours = make(map[string]string)
	}
	m.sheets = append(m.sheets, name)
	m.colours[name] = tabColour
	return &mockSheet{wb: m}, nil
}

func (m *mockWorkbook) Finalize() error {
	m.finalized = true
	return m.finalizeErr
}

func (m *mockWorkbook) Discard() error {
	m.discarded = true
	return nil
}

type mockSheet struct{ wb *mockWorkbook }

func (s *mockSheet) Apply(_ domain.DrawInstruction) error {
	s.wb.applied++
	return nil
}

type mockFactory struct {
	wb  *mockWorkbook
	err error
}

func (m *mockFactory) Create(_ string) (driven.WorkbookWriter, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.wb, nil
}

func exportRows() []domain.RawRow {
	robertson := completeRow()

	fisher := completeRow()
	fisher[domain.ColRoom] = "Fisher Auditorium"
	fisher[domain.ColTitle] = "Profiling in Production"
	fisher[domain.ColOwner] = "Ira Chen"
	fisher[domain.ColSessionID] = "778900"
	fisher[domain.ColPhoto] = "https://sessionize.example/img/ira.png"

	standby := completeRow()
	standby[domain.ColRoom] = ""
	standby[domain.ColScheduledAt] = "Not Provided"
	standby[domain.ColTitle] = "Standby Talk"
	standby[domain.ColOwner] = "Sam Reyes"
	standby[domain.ColSessionID] = "778955"

	return []domain.RawRow{robertson, fisher, standby}
}

func newTestBuilder(source *mockSource, cache *mockImageCache, factory *mockFactory) *Builder {
	b := NewBuilder(source, cache, factory)
	b.now = func() time.Time { return refDate }
	return b
}

func TestBuilder_Build(t *testing.T) {
	cache := &mockImageCache{resolved: 2}
	wb := &mockWorkbook{}
	b := newTestBuilder(&mockSource{rows: exportRows()}, cache, &mockFactory{wb: wb})

	report, err := b.Build(context.Background(), "export.xlsx", "out.xlsx")
	require.NoError(t, err)

	// Rooms alphabetically, three renderings each.
	assert.Equal(t, []string{
		"Fisher_summary", "Fisher_detail_print", "Fisher_detail_mobile",
		"Robertson_summary", "Robertson_detail_print", "Robertson_detail_mobile",
	}, wb.sheets)
	assert.Equal(t, domain.Palette[0], wb.colours["Fisher_summary"])
	assert.Equal(t, domain.Palette[1], wb.colours["Robertson_summary"])

	assert.True(t, wb.finalized)
	assert.False(t, wb.discarded)
	assert.Positive(t, wb.applied)

	assert.Equal(t, "out.xlsx", report.OutputPath)
	assert.Equal(t, "2025", report.ConferenceYear)
	assert.Equal(t, 3, report.TotalRecords)
	assert.Equal(t, 1, report.UnmatchedRecords)
	assert.Equal(t, []string{domain.AlternateRoom}, report.UnmatchedRooms)
	assert.Equal(t, 1, report.Fallbacks[domain.ColScheduledAt])
	assert.Equal(t, 1, report.Fallbacks[domain.ColRoom])
	assert.Equal(t, 2, report.ImagesResolved)
	require.Len(t, report.Sheets, 6)
	assert.Equal(t, 1, report.Sheets[0].Records)

	// Distinct photo URLs, sorted, warmed in one pass.
	assert.Equal(t, []string{
		"https://sessionize.example/img/dana.png",
		"https://sessionize.example/img/ira.png",
	}, cache.prefetched)
}

func TestBuilder_Build_LoadError(t *testing.T) {
	factory := &mockFactory{wb: &mockWorkbook{}}
	b := newTestBuilder(&mockSource{err: domain.ErrMissingColumns}, &mockImageCache{}, factory)

	_, err := b.Build(context.Background(), "export.xlsx", "out.xlsx")
	assert.ErrorIs(t, err, domain.ErrMissingColumns)
	assert.False(t, factory.wb.finalized, "nothing is written on a schema mismatch")
}

func TestBuilder_Build_NormaliseError(t *testing.T) {
	rows := exportRows()
	rows[0][domain.ColDuration] = "soon"
	factory := &mockFactory{wb: &mockWorkbook{}}
	b := newTestBuilder(&mockSource{rows: rows}, &mockImageCache{}, factory)

	_, err := b.Build(context.Background(), "export.xlsx", "out.xlsx")
	assert.ErrorIs(t, err, domain.ErrBadDuration)
	assert.False(t, factory.wb.finalized)
}

func TestBuilder_Build_SheetErrorDiscards(t *testing.T) {
	wb := &mockWorkbook{sheetErr: domain.ErrSheetExists}
	b := newTestBuilder(&mockSource{rows: exportRows()}, &mockImageCache{}, &mockFactory{wb: wb})

	_, err := b.Build(context.Background(), "export.xlsx", "out.xlsx")
	assert.ErrorIs(t, err, domain.ErrSheetExists)
	assert.True(t, wb.discarded, "a failed render must not finalize the workbook")
	assert.False(t, wb.finalized)
}

func TestBuilder_Build_FinalizeError(t *testing.T) {
	saveErr := errors.New("disk full")
	wb := &mockWorkbook{finalizeErr: saveErr}
	b := newTestBuilder(&mockSource{rows: exportRows()}, &mockImageCache{}, &mockFactory{wb: wb})

	_, err := b.Build(context.Background(), "export.xlsx", "out.xlsx")
	assert.ErrorIs(t, err, saveErr)
}
