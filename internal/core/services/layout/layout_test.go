package layout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pybay/runsheet-cli/internal/core/domain"
)

// stubCache resolves every URL to a fixed local path, or fails every
// resolution when err is set.
type stubCache struct {
	err      error
	resolves int
}

func (s *stubCache) Resolve(_ context.Context, url string, _ domain.ImageSize) (string, error) {
	s.resolves++
	if s.err != nil {
		return "", s.err
	}
	return "/cache/" + url + ".jpg", nil
}

func (s *stubCache) Prefetch(_ context.Context, _ []string, _ []domain.ImageSize) {}

func (s *stubCache) Stats() (int, int) { return s.resolves, 0 }

func detailRecord(title, speaker string) domain.Record {
	return domain.Record{
		Room:            "Robertson",
		ScheduledAt:     time.Date(2025, 10, 18, 14, 5, 0, 0, time.UTC),
		Scheduled:       true,
		DurationMinutes: 30,
		Title:           title,
		Speaker:         speaker,
		SessionID:       "778123",
		FirstNamePron:   "DAH-nah",
		LastNamePron:    "oh-KAH-for",
		Phone:           "415.555.1234",
		Pronouns:        "She/Her",
		FirstTalk:       "Yes",
		PhotoURL:        "https://sessionize.example/img/dana.png",
		Learn:           "How to survive type parameters in a large codebase.",
		Bullets: [3]string{
			"Maintains three open source projects",
			"First visit to San Francisco",
			"Ask her about sourdough",
		},
	}
}

func detailSet(records ...domain.Record) domain.RecordSet {
	return domain.RecordSet{RoomClass: "Robertson", View: domain.ViewDetail, Records: records}
}

// assertNoCollisions replays an instruction stream and fails on any
// pair of writes or merges sharing a cell, or any image landing
// outside an earlier merge.
func assertNoCollisions(t *testing.T, ins []domain.DrawInstruction) {
	t.Helper()

	var claims, merges []domain.Bounds
	for i, in := range ins {
		switch in.Op {
		case domain.OpWriteCell, domain.OpMergeRange:
			for _, c := range claims {
				if c.Overlaps(in.Bounds) {
					t.Fatalf("instruction %d: %+v overlaps earlier claim %+v", i, in.Bounds, c)
				}
			}
			claims = append(claims, in.Bounds)
			if in.Op == domain.OpMergeRange {
				merges = append(merges, in.Bounds)
			}
		case domain.OpInsertImage:
			inside := false
			for _, m := range merges {
				if m.R1 <= in.Bounds.R1 && in.Bounds.R2 <= m.R2 &&
					m.C1 <= in.Bounds.C1 && in.Bounds.C2 <= m.C2 {
					inside = true
					break
				}
			}
			if !inside {
				t.Fatalf("instruction %d: image %+v outside any merged region", i, in.Bounds)
			}
		}
	}
}

// find returns the instructions matching op.
func find(ins []domain.DrawInstruction, op domain.DrawOp) []domain.DrawInstruction {
	var out []domain.DrawInstruction
	for _, in := range ins {
		if in.Op == op {
			out = append(out, in)
		}
	}
	return out
}

func TestDetailPage(t *testing.T) {
	p := detailPage("2025")
	assert.True(t, p.Portrait)
	assert.True(t, p.PaperLetter)
	assert.Equal(t, 0.25, p.MarginLeft)
	assert.Equal(t, 0.25, p.MarginRight)
	assert.Equal(t, 0.75, p.MarginTop)
	assert.Equal(t, 0.75, p.MarginBottom)
	assert.Equal(t, 1, p.FitToWidth)
	assert.Equal(t, 1, p.RepeatRows)
	assert.Equal(t, "PyBay 2025", p.HeaderCentre)
	assert.True(t, p.FooterSheetName)
	assert.True(t, p.FooterPageNumbers)
}

func TestStrategySuffixes(t *testing.T) {
	cache := &stubCache{}
	require.Equal(t, "summary", NewSummary().Suffix())
	require.Equal(t, "detail_print", NewPrint(cache, "2025").Suffix())
	require.Equal(t, "detail_mobile", NewMobile(cache, "2025").Suffix())
}
