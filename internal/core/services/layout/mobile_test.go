package layout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pybay/runsheet-cli/internal/core/domain"
)

func TestMobile_Layout(t *testing.T) {
	cache := &stubCache{}
	set := detailSet(
		detailRecord("Generics in Anger", "Dana Okafor"),
		detailRecord("Profiling in Production", "Ira Chen"),
	)

	ins, err := NewMobile(cache, "2025").Layout(context.Background(), set, "Robertson")
	require.NoError(t, err)
	assertNoCollisions(t, ins)

	// Two columns only, sized for a phone.
	widths := find(ins, domain.OpSetColWidth)
	require.Len(t, widths, 2)
	assert.Equal(t, float64(mobileLabelWidth), widths[0].Width)
	assert.Equal(t, float64(mobileDataWidth), widths[1].Width)

	// The room header appears once, before the first record.
	var headers []domain.DrawInstruction
	for _, in := range find(ins, domain.OpMergeRange) {
		if in.Style == domain.StyleHeader {
			headers = append(headers, in)
		}
	}
	require.Len(t, headers, 1)
	assert.Equal(t, "Robertson", headers[0].Value.Text)
	assert.Equal(t, domain.Span(0, 0, 0, 1), headers[0].Bounds)

	// One tall image row per record.
	images := find(ins, domain.OpInsertImage)
	require.Len(t, images, 2)

	var tallRows int
	for _, in := range find(ins, domain.OpSetRowHeight) {
		if in.Height == float64(imageRowHeight) {
			tallRows++
		}
	}
	assert.Equal(t, 2, tallRows)

	pages := find(ins, domain.OpPageSetup)
	require.Len(t, pages, 1)
	assert.Equal(t, "PyBay 2025", pages[0].Page.HeaderCentre)
}

func TestMobile_TimeAndDurationStayUnmerged(t *testing.T) {
	rec := detailRecord("Generics in Anger", "Dana Okafor")
	ins, err := NewMobile(&stubCache{}, "2025").Layout(context.Background(), detailSet(rec), "Robertson")
	require.NoError(t, err)

	var highlights []domain.DrawInstruction
	for _, in := range find(ins, domain.OpWriteCell) {
		if in.Style == domain.StyleHighlight {
			highlights = append(highlights, in)
		}
	}
	require.Len(t, highlights, 2)
	assert.Equal(t, "02:05 PM", highlights[0].Value.Text)
	assert.Equal(t, "30 min", highlights[1].Value.Text)
	assert.Equal(t, highlights[0].Bounds.R1, highlights[1].Bounds.R1, "side by side on one row")
}

func TestMobile_PhotoLinkRow(t *testing.T) {
	rec := detailRecord("Generics in Anger", "Dana Okafor")
	ins, err := NewMobile(&stubCache{}, "2025").Layout(context.Background(), detailSet(rec), "Robertson")
	require.NoError(t, err)

	var links []domain.DrawInstruction
	for _, in := range find(ins, domain.OpWriteCell) {
		if in.Value.Hyperlink != "" {
			links = append(links, in)
		}
	}
	require.Len(t, links, 1, "the photo URL is tappable above the picture")
	assert.Equal(t, rec.PhotoURL, links[0].Value.Hyperlink)
}

func TestMobile_PhotoFailureKeepsRhythm(t *testing.T) {
	cache := &stubCache{err: domain.ErrImageUnavailable}
	set := detailSet(
		detailRecord("Generics in Anger", "Dana Okafor"),
		detailRecord("Profiling in Production", "Ira Chen"),
	)

	ins, err := NewMobile(cache, "2025").Layout(context.Background(), set, "Robertson")
	require.NoError(t, err)
	assertNoCollisions(t, ins)

	assert.Empty(t, find(ins, domain.OpInsertImage))

	// The blank image rows keep their height so records stay aligned.
	var tallRows int
	for _, in := range find(ins, domain.OpSetRowHeight) {
		if in.Height == float64(imageRowHeight) {
			tallRows++
		}
	}
	assert.Equal(t, 2, tallRows)
}

func TestMobile_NoPhotoURL(t *testing.T) {
	cache := &stubCache{}
	rec := detailRecord("Generics in Anger", "Dana Okafor")
	rec.PhotoURL = ""

	ins, err := NewMobile(cache, "2025").Layout(context.Background(), detailSet(rec), "Robertson")
	require.NoError(t, err)
	assertNoCollisions(t, ins)

	assert.Empty(t, find(ins, domain.OpInsertImage))
	assert.Zero(t, cache.resolves)
	for _, in := range find(ins, domain.OpWriteCell) {
		assert.Empty(t, in.Value.Hyperlink)
	}
}

func TestMobile_Layout_Empty(t *testing.T) {
	ins, err := NewMobile(&stubCache{}, "2025").Layout(context.Background(), detailSet(), "Robertson")
	require.NoError(t, err)
	assert.Empty(t, find(ins, domain.OpMergeRange))
	assert.Len(t, find(ins, domain.OpSetColWidth), 2)
}
