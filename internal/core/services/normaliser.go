package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pybay/runsheet-cli/internal/core/domain"
	"github.com/pybay/runsheet-cli/internal/logger"
)

// scheduledAtLayouts are the timestamp forms Sessionize exports use.
var scheduledAtLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
}

// NormaliseStats counts fallback substitutions by column, so the run
// report can show how much of the export needed cleaning.
type NormaliseStats struct {
	Fallbacks map[string]int
}

func (s *NormaliseStats) count(col string) {
	if s.Fallbacks == nil {
		s.Fallbacks = make(map[string]int)
	}
	s.Fallbacks[col]++
}

// Normaliser converts raw export rows into canonical records.
//
// Normalisation is total over rows with the expected column set:
// missing or placeholder values are resolved by policy, never
// errors. The two exceptions are malformed (not merely absent)
// timestamps and durations, which are data errors and abort the run.
type Normaliser struct {
	fallbackAt time.Time
	title      cases.Caser
}

// NewNormaliser creates a normaliser. ref supplies the date used for
// the unscheduled-session fallback; only its date component matters,
// the time-of-day is pinned to 19:00 so unscheduled sessions sort
// after the last real slot.
func NewNormaliser(ref time.Time) *Normaliser {
	fallback := time.Date(ref.Year(), ref.Month(), ref.Day(),
		domain.FallbackHour, 0, 0, 0, ref.Location())
	return &Normaliser{
		fallbackAt: fallback,
		title:      cases.Title(language.English),
	}
}

// Normalise cleans every row into a canonical record, in input order.
func (n *Normaliser) Normalise(rows []domain.RawRow) ([]domain.Record, *NormaliseStats, error) {
	records := make([]domain.Record, 0, len(rows))
	stats := &NormaliseStats{Fallbacks: make(map[string]int)}

	for i, row := range rows {
		rec, err := n.normaliseRow(row, stats)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d (%q / %q): %w",
				i+1, row.Get(domain.ColTitle), row.Get(domain.ColOwner), err)
		}
		records = append(records, rec)
	}

	logger.Debug("Normalised %d rows, %d fallback substitutions",
		len(records), total(stats.Fallbacks))
	return records, stats, nil
}

func (n *Normaliser) normaliseRow(row domain.RawRow, stats *NormaliseStats) (domain.Record, error) {
	var rec domain.Record

	// Schedule first: later rules key off the substituted values.
	at, scheduled, err := n.scheduledAt(row)
	if err != nil {
		return rec, err
	}
	if !scheduled {
		stats.count(domain.ColScheduledAt)
	}
	rec.ScheduledAt = at
	rec.Scheduled = scheduled

	rec.Room = row.Get(domain.ColRoom)
	if rec.Room == "" {
		rec.Room = domain.AlternateRoom
		stats.count(domain.ColRoom)
	}

	// The session format text's leading two characters double as the
	// duration fallback ("45 minute session" -> "45").
	formatCode := row.Get(domain.ColFormat)
	if len(formatCode) > 2 {
		formatCode = formatCode[:2]
	}

	duration := row.Get(domain.ColDuration)
	if duration == "" {
		duration = formatCode
		stats.count(domain.ColDuration)
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(duration))
	if err != nil {
		return rec, fmt.Errorf("%w: %q", domain.ErrBadDuration, duration)
	}
	rec.DurationMinutes = minutes

	rec.Title = row.Get(domain.ColTitle)
	rec.Speaker = row.Get(domain.ColOwner)

	rec.SessionID = row.Get(domain.ColSessionID)
	if rec.SessionID == "" {
		// A synthetic key keeps orphan rows from all grouping on "".
		rec.SessionID = uuid.New().String()
		stats.count(domain.ColSessionID)
	}

	rec.FirstNamePron = row.Get(domain.ColFirstNamePron)
	rec.LastNamePron = row.Get(domain.ColLastNamePron)
	rec.Phone = FormatPhone(row.Get(domain.ColMobile))
	rec.Pronouns = n.title.String(row.Get(domain.ColPronouns))
	rec.FirstTalk = row.Get(domain.ColFirstTalk)
	rec.PhotoURL = row.Get(domain.ColPhoto)
	rec.Learn = row.Get(domain.ColLearn)
	rec.Bullets[0] = row.Get(domain.ColBullet1)
	rec.Bullets[1] = row.Get(domain.ColBullet2)
	rec.Bullets[2] = row.Get(domain.ColBullet3)

	return rec, nil
}

// scheduledAt parses the export timestamp, or substitutes the 19:00
// fallback for absent values. A present but unparseable timestamp is
// malformed input, not a missing value, and is fatal.
func (n *Normaliser) scheduledAt(row domain.RawRow) (time.Time, bool, error) {
	raw := row.Get(domain.ColScheduledAt)
	if raw == "" {
		return n.fallbackAt, false, nil
	}
	for _, layout := range scheduledAtLayouts {
		if at, err := time.ParseInLocation(layout, raw, n.fallbackAt.Location()); err == nil {
			return at, true, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("%w: unparseable timestamp %q", domain.ErrInvalidInput, raw)
}

// FormatPhone canonicalises a phone number to DDD.DDD.DDDD.
//
// All non-digits are stripped; an 11-digit number with a leading 1
// loses the US country code. Anything that is not then a 10-digit
// number comes back as the bare digit string (best effort), or empty
// when no digits remain. Never an error: an unreadable phone number
// must not sink a run sheet.
func FormatPhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	if len(d) == 11 && d[0] == '1' {
		d = d[1:]
	}
	if len(d) == 10 {
		return d[0:3] + "." + d[3:6] + "." + d[6:10]
	}
	return d
}

func total(m map[string]int) int {
	n := 0
	for _, v := range m {
		n += v
	}
	return n
}
