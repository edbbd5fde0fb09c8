package layout

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pybay/runsheet-cli/internal/core/domain"
)

func TestPrint_Layout(t *testing.T) {
	cache := &stubCache{}
	set := detailSet(
		detailRecord("Generics in Anger", "Dana Okafor"),
		detailRecord("Profiling in Production", "Ira Chen"),
	)

	ins, err := NewPrint(cache, "2025").Layout(context.Background(), set, "Robertson")
	require.NoError(t, err)
	assertNoCollisions(t, ins)

	// The blue header band appears exactly once; printing repeats it
	// through the page setup instead of re-emitting it per card.
	var headers []domain.DrawInstruction
	for _, in := range find(ins, domain.OpMergeRange) {
		if in.Style == domain.StyleHeader {
			headers = append(headers, in)
		}
	}
	require.Len(t, headers, len(printZones))
	for i, z := range printZones {
		assert.Equal(t, z.label, headers[i].Value.Text)
		assert.Equal(t, domain.Span(0, z.c1, 0, z.c2), headers[i].Bounds)
	}

	pages := find(ins, domain.OpPageSetup)
	require.Len(t, pages, 1)
	assert.Equal(t, 1, pages[0].Page.RepeatRows)
	assert.Equal(t, "PyBay 2025", pages[0].Page.HeaderCentre)

	// One photo per card, each inside the two rightmost columns.
	images := find(ins, domain.OpInsertImage)
	require.Len(t, images, 2)
	for _, img := range images {
		assert.Equal(t, photoC1, img.Bounds.C1)
		assert.Equal(t, photoC2, img.Bounds.C2)
		assert.Equal(t, photoRows, img.Bounds.R2-img.Bounds.R1+1)
	}
	assert.Equal(t, 2, cache.resolves)
}

func TestPrint_HighlightBandValues(t *testing.T) {
	rec := detailRecord("Generics in Anger", "Dana Okafor")
	ins, err := NewPrint(&stubCache{}, "2025").Layout(context.Background(), detailSet(rec), "Robertson")
	require.NoError(t, err)

	var band []string
	for _, in := range find(ins, domain.OpMergeRange) {
		if in.Style == domain.StyleHighlight {
			band = append(band, in.Value.Text)
		}
	}
	assert.Equal(t, []string{
		"Robertson",
		"02:05 PM",
		fmt.Sprintf("%d", rec.DurationMinutes),
		"Generics in Anger",
		"Dana Okafor",
	}, band)
}

func TestPrint_PhotoFailureFallsBackToLink(t *testing.T) {
	cache := &stubCache{err: domain.ErrImageUnavailable}
	rec := detailRecord("Generics in Anger", "Dana Okafor")

	ins, err := NewPrint(cache, "2025").Layout(context.Background(), detailSet(rec), "Robertson")
	require.NoError(t, err, "a missing photo degrades one cell, never the sheet")
	assertNoCollisions(t, ins)

	assert.Empty(t, find(ins, domain.OpInsertImage))

	var links []domain.DrawInstruction
	for _, in := range find(ins, domain.OpMergeRange) {
		if in.Value.Hyperlink != "" {
			links = append(links, in)
		}
	}
	require.Len(t, links, 1)
	assert.Equal(t, rec.PhotoURL, links[0].Value.Text)
	assert.Equal(t, rec.PhotoURL, links[0].Value.Hyperlink)
}

func TestPrint_NoPhotoURL(t *testing.T) {
	cache := &stubCache{}
	rec := detailRecord("Generics in Anger", "Dana Okafor")
	rec.PhotoURL = ""

	ins, err := NewPrint(cache, "2025").Layout(context.Background(), detailSet(rec), "Robertson")
	require.NoError(t, err)
	assertNoCollisions(t, ins)

	assert.Empty(t, find(ins, domain.OpInsertImage))
	assert.Zero(t, cache.resolves, "no URL means no cache lookup")
}

func TestPrint_LongTextRowHeights(t *testing.T) {
	rec := detailRecord("Generics in Anger", "Dana Okafor")
	rec.Learn = strings.Repeat("attendees learn ", 8) // forces the tall band

	ins, err := NewPrint(&stubCache{}, "2025").Layout(context.Background(), detailSet(rec), "Robertson")
	require.NoError(t, err)

	var heights []float64
	for _, in := range find(ins, domain.OpSetRowHeight) {
		heights = append(heights, in.Height)
	}
	assert.Contains(t, heights, 50.0)
}

func TestPrint_Layout_Empty(t *testing.T) {
	ins, err := NewPrint(&stubCache{}, "2025").Layout(context.Background(), detailSet(), "Robertson")
	require.NoError(t, err)

	// No records, no header band, just the grid furniture.
	assert.Empty(t, find(ins, domain.OpMergeRange))
	assert.Len(t, find(ins, domain.OpSetColWidth), printCols)
	assert.Len(t, find(ins, domain.OpPageSetup), 1)
}
