package domain

import "strings"

// Sessionize column headers, by their human-readable export names.
// Talks with more than one speaker appear once per speaker.
const (
	ColFirstNamePron = "First name - pronunciation"
	ColLastNamePron  = "Last name - pronunciation"
	ColMobile        = "Mobile # with Country Code (not shared publicly)"
	ColOwner         = "Owner"
	ColPhoto         = "Profile Picture"
	ColPronouns      = "Pronouns"
	ColRoom          = "Room"
	ColDuration      = "Scheduled Duration"
	ColFormat        = "Session format"
	ColSessionID     = "Session Id"
	ColBullet1       = "Speaker introduction - bullet 1"
	ColBullet2       = "Speaker introduction - bullet 2"
	ColBullet3       = "Speaker introduction - bullet 3"
	ColFirstTalk     = "This would be my first Conference Talk"
	ColScheduledAt   = "Scheduled At"
	ColTitle         = "Title"
	ColLearn         = "What will attendees learn?"
)

// ExpectedColumns is the column subset a run sheet needs. The export
// may carry extra columns; those are ignored. A missing member of this
// set is a fatal schema error.
var ExpectedColumns = []string{
	ColFirstNamePron,
	ColLastNamePron,
	ColMobile,
	ColOwner,
	ColPhoto,
	ColPronouns,
	ColRoom,
	ColDuration,
	ColFormat,
	ColSessionID,
	ColBullet1,
	ColBullet2,
	ColBullet3,
	ColFirstTalk,
	ColScheduledAt,
	ColTitle,
	ColLearn,
}

// NotProvided is the placeholder Sessionize writes for unset values.
// It exists only at the raw-input edge; the normaliser converts it to
// true absence before any downstream code runs.
const NotProvided = "Not Provided"

// RawRow is one exported row, keyed by column header. Values are cell
// text exactly as exported, which may be the NotProvided placeholder.
type RawRow map[string]string

// Get returns the trimmed cell value for a column, with placeholder
// sentinels collapsed to the empty string.
func (r RawRow) Get(col string) string {
	v := strings.TrimSpace(r[col])
	if v == NotProvided || strings.EqualFold(v, "nan") {
		return ""
	}
	return v
}

// Raw returns the cell value untouched, placeholder included.
func (r RawRow) Raw(col string) string {
	return r[col]
}
