package services

import (
	"sort"
	"strconv"

	"github.com/pybay/runsheet-cli/internal/core/domain"
	"github.com/pybay/runsheet-cli/internal/logger"
)

// UnknownYear is displayed when no session carries a real timestamp.
const UnknownYear = "YYYY"

// PartitionResult carries the per-(room, view) record sets plus the
// diagnostics the caller needs to account for every input row.
type PartitionResult struct {
	// Sets maps room class to its record sets, one per view. Both
	// views share the same logical record order; projection to the
	// summary or detail column subset is a rendering concern.
	Sets map[string]map[domain.View]domain.RecordSet

	// Classes lists the room classes that received records, sorted
	// alphabetically.
	Classes []string

	// Year is the modal year across scheduled (non-fallback)
	// timestamps, for display headers only.
	Year string

	// Total is the input record count.
	Total int

	// Unmatched counts records whose room matched no known class.
	Unmatched int

	// UnmatchedRooms are the distinct unmatched room names, sorted.
	UnmatchedRooms []string
}

// Partition sorts records with the global key and splits them into
// per-room-class, per-view record sets.
//
// The sort is stable on (room, scheduled time, session id, speaker),
// ascending, which keeps co-speakers of one talk adjacent and orders
// each sheet like the physical schedule. Class filtering preserves
// that order; it never re-sorts.
func Partition(records []domain.Record) *PartitionResult {
	sorted := make([]domain.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Room != b.Room {
			return a.Room < b.Room
		}
		if !a.ScheduledAt.Equal(b.ScheduledAt) {
			return a.ScheduledAt.Before(b.ScheduledAt)
		}
		if a.SessionID != b.SessionID {
			return a.SessionID < b.SessionID
		}
		return a.Speaker < b.Speaker
	})

	res := &PartitionResult{
		Sets:  make(map[string]map[domain.View]domain.RecordSet),
		Year:  modalYear(sorted),
		Total: len(sorted),
	}

	unmatched := make(map[string]bool)
	for _, rec := range sorted {
		class := domain.MatchRoomClass(rec.Room)
		if class == "" {
			res.Unmatched++
			unmatched[rec.Room] = true
			continue
		}
		views, ok := res.Sets[class]
		if !ok {
			views = map[domain.View]domain.RecordSet{
				domain.ViewSummary: {RoomClass: class, View: domain.ViewSummary},
				domain.ViewDetail:  {RoomClass: class, View: domain.ViewDetail},
			}
			res.Sets[class] = views
		}
		for view, set := range views {
			set.Records = append(set.Records, rec)
			views[view] = set
		}
	}

	for class := range res.Sets {
		res.Classes = append(res.Classes, class)
	}
	sort.Strings(res.Classes)
	for room := range unmatched {
		res.UnmatchedRooms = append(res.UnmatchedRooms, room)
	}
	sort.Strings(res.UnmatchedRooms)

	if res.Unmatched > 0 {
		logger.Warn("%d records matched no room class: %v", res.Unmatched, res.UnmatchedRooms)
	}
	return res
}

// modalYear returns the most common year among scheduled records.
// Fallback timestamps are ignored; a run with no real schedule yields
// UnknownYear. Ties break toward the later year.
func modalYear(records []domain.Record) string {
	counts := make(map[int]int)
	for _, rec := range records {
		if rec.Scheduled {
			counts[rec.ScheduledAt.Year()]++
		}
	}
	best, bestCount := 0, 0
	for year, c := range counts {
		if c > bestCount || (c == bestCount && year > best) {
			best, bestCount = year, c
		}
	}
	if bestCount == 0 {
		return UnknownYear
	}
	return strconv.Itoa(best)
}
