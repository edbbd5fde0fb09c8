package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pybay/runsheet-cli/internal/core/domain"
	"github.com/pybay/runsheet-cli/internal/core/ports/driven"
	"github.com/pybay/runsheet-cli/internal/core/ports/driving"
	"github.com/pybay/runsheet-cli/internal/core/services/layout"
	"github.com/pybay/runsheet-cli/internal/logger"
)

// Ensure Builder implements the interface.
var _ driving.RunSheetBuilder = (*Builder)(nil)

// Builder runs the full pipeline: load, normalise, partition, warm
// the photo cache, then render every (room, view) sheet through its
// layout strategy onto a fresh workbook.
type Builder struct {
	source    driven.SessionSource
	cache     driven.ImageCache
	workbooks driven.WorkbookFactory

	// now supplies the reference date for the unscheduled-session
	// fallback. Overridable in tests.
	now func() time.Time
}

// NewBuilder creates a run sheet builder.
func NewBuilder(source driven.SessionSource, cache driven.ImageCache, workbooks driven.WorkbookFactory) *Builder {
	return &Builder{
		source:    source,
		cache:     cache,
		workbooks: workbooks,
		now:       time.Now,
	}
}

// Build implements driving.RunSheetBuilder.
//
// Fatal errors (schema mismatch, malformed durations, workbook I/O)
// abort before Finalize, so no valid-looking partial workbook is ever
// left behind. Per-record issues degrade locally and show up in the
// report instead.
func (b *Builder) Build(ctx context.Context, inputPath, outputPath string) (*driving.BuildReport, error) {
	rows, err := b.source.Load(ctx, inputPath)
	if err != nil {
		return nil, fmt.Errorf("load export: %w", err)
	}

	records, stats, err := NewNormaliser(b.now()).Normalise(rows)
	if err != nil {
		return nil, fmt.Errorf("normalise: %w", err)
	}

	part := Partition(records)
	colours := AssignColours(part.Classes)

	// One bulk prefetch covering every distinct photo at the shared
	// size, so the layout engines' Resolve calls are cache hits.
	b.cache.Prefetch(ctx, b.photoURLs(part), []domain.ImageSize{domain.PhotoSize})

	wb, err := b.workbooks.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("create workbook: %w", err)
	}

	report, err := b.renderSheets(ctx, wb, part, colours)
	if err != nil {
		_ = wb.Discard()
		return nil, err
	}

	if err := wb.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize workbook: %w", err)
	}

	report.OutputPath = outputPath
	report.ConferenceYear = part.Year
	report.TotalRecords = part.Total
	report.UnmatchedRecords = part.Unmatched
	report.UnmatchedRooms = part.UnmatchedRooms
	report.Fallbacks = stats.Fallbacks
	report.ImagesResolved, report.ImagesFailed = b.cache.Stats()

	logger.Info("Workbook written: %s (%d sheets, %d records, %d unmatched)",
		outputPath, len(report.Sheets), report.TotalRecords, report.UnmatchedRecords)
	return report, nil
}

// renderSheets lays out every (room, view) sheet in tab order: rooms
// alphabetically, summary before the two detail renderings.
func (b *Builder) renderSheets(
	ctx context.Context,
	wb driven.WorkbookWriter,
	part *PartitionResult,
	colours map[string]string,
) (*driving.BuildReport, error) {
	report := &driving.BuildReport{}

	for _, class := range part.Classes {
		views := part.Sets[class]
		renderings := []struct {
			strategy layout.Strategy
			set      domain.RecordSet
		}{
			{layout.NewSummary(), views[domain.ViewSummary]},
			{layout.NewPrint(b.cache, part.Year), views[domain.ViewDetail]},
			{layout.NewMobile(b.cache, part.Year), views[domain.ViewDetail]},
		}

		for _, r := range renderings {
			name := class + "_" + r.strategy.Suffix()
			ins, err := r.strategy.Layout(ctx, r.set, class)
			if err != nil {
				return nil, fmt.Errorf("layout %s: %w", name, err)
			}

			sheet, err := wb.NewSheet(name, colours[class])
			if err != nil {
				return nil, fmt.Errorf("add sheet %s: %w", name, err)
			}
			for _, in := range ins {
				if err := sheet.Apply(in); err != nil {
					return nil, fmt.Errorf("draw sheet %s: %w", name, err)
				}
			}

			report.Sheets = append(report.Sheets, driving.SheetCount{
				Name:    name,
				Records: len(r.set.Records),
			})
		}
	}
	return report, nil
}

// photoURLs collects the distinct speaker photo URLs across every
// detail record set, sorted for a stable prefetch order.
func (b *Builder) photoURLs(part *PartitionResult) []string {
	seen := make(map[string]bool)
	for _, views := range part.Sets {
		for _, rec := range views[domain.ViewDetail].Records {
			if rec.PhotoURL != "" {
				seen[rec.PhotoURL] = true
			}
		}
	}
	urls := make([]string, 0, len(seen))
	for url := range seen {
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return urls
}
