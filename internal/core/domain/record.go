package domain

import "time"

// AlternateRoom is the room assigned to accepted speakers who have no
// scheduled slot. They can stand in for a no-show in any room.
const AlternateRoom = "Alternate Speaker - ANY room"

// FallbackHour is the time-of-day substituted for unscheduled
// sessions. 19:00 sorts them after the last real session of the day.
const FallbackHour = 19

// TimeDisplayLayout renders a schedule slot for run sheet readers.
const TimeDisplayLayout = "03:04 PM"

// Record is the canonical (talk, speaker) pairing after normalisation.
//
// Room, ScheduledAt, DurationMinutes, Title and Speaker are always
// populated; the normaliser substitutes documented fallbacks rather
// than failing on missing data. The remaining fields are optional and
// empty when the speaker did not provide them. No field ever holds the
// NotProvided placeholder.
type Record struct {
	// Room is the assigned room, or AlternateRoom when unscheduled.
	Room string

	// ScheduledAt is the session start. For unscheduled sessions it is
	// the fallback date at 19:00 and Scheduled is false.
	ScheduledAt time.Time

	// Scheduled reports whether ScheduledAt came from the export
	// rather than the fallback.
	Scheduled bool

	// DurationMinutes is the slot length. Derived from the session
	// format code when the export omits an explicit duration.
	DurationMinutes int

	// Title is the talk title.
	Title string

	// Speaker is the speaker's display name.
	Speaker string

	// SessionID groups co-speakers of one talk. Synthetic when the
	// export omits it, so orphan rows never collide on an empty key.
	SessionID string

	// FirstNamePron and LastNamePron are phonetic spellings.
	FirstNamePron string
	LastNamePron  string

	// Phone is the canonical DDD.DDD.DDDD form, a best-effort digit
	// string when not a 10-digit US number, or empty.
	Phone string

	// Pronouns is the title-cased pronoun text.
	Pronouns string

	// FirstTalk is the speaker's answer to the first-conference-talk
	// question, as exported.
	FirstTalk string

	// PhotoURL is the profile picture location.
	PhotoURL string

	// Learn is the "What will attendees learn?" long text.
	Learn string

	// Bullets are up to three speaker introduction lines, each
	// independently optional.
	Bullets [3]string
}

// TimeDisplay renders the scheduled time as 12-hour hh:mm AM/PM.
func (r Record) TimeDisplay() string {
	return r.ScheduledAt.Format(TimeDisplayLayout)
}

// View selects which field subset of a record a sheet shows.
type View string

const (
	// ViewSummary is the compact room/time/title/speaker list.
	ViewSummary View = "summary"

	// ViewDetail is the full biographical and logistical record.
	ViewDetail View = "detail"
)

// RecordSet is an ordered run of records homogeneous by room class and
// view. Ordering follows the global sort: room, scheduled time,
// session id, speaker name, ascending, so co-speakers of one talk stay
// adjacent and the sequence matches the physical schedule.
type RecordSet struct {
	// RoomClass is the fixed venue identifier (Robertson, Fisher, ...).
	RoomClass string

	// View is the field subset this set is rendered with.
	View View

	// Records is the ordered slice. Never reordered after partition.
	Records []Record
}

// SummaryColumns is the summary view's display order.
var SummaryColumns = []string{"Room", "Time", "Title", "Speaker"}

// DetailColumns is the detail view's display order.
var DetailColumns = []string{
	"Room",
	"Time",
	"Title",
	"Scheduled Duration",
	"What will attendees learn?",
	"Speaker",
	"Profile Picture",
	"First name - pronunciation",
	"Last name - pronunciation",
	"Mobile # with Country Code (not shared publicly)",
	"Pronouns",
	"This would be my first Conference Talk",
	"Speaker introduction - bullet 1",
	"Speaker introduction - bullet 2",
	"Speaker introduction - bullet 3",
}
