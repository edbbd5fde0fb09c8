package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingColumns indicates the export lacks required columns.
	// This is a schema mismatch and aborts the run before any output
	// is produced.
	ErrMissingColumns = errors.New("required columns missing from export")

	// ErrBadDuration indicates a scheduled duration (or its session
	// format fallback) could not be parsed as a whole number of
	// minutes. Malformed export data, fatal.
	ErrBadDuration = errors.New("duration not a whole number of minutes")

	// ErrLayoutCollision indicates two drawing instructions claimed
	// overlapping cells. This is a layout programming error, caught by
	// tests, never tolerated at runtime.
	ErrLayoutCollision = errors.New("conflicting write into claimed cell range")

	// ErrUnknownRoomClass indicates a room class with no palette slot
	// or record set. Layout strategies are only ever invoked for the
	// fixed room classes, so this too is a programming error.
	ErrUnknownRoomClass = errors.New("unknown room class")

	// ErrImageUnavailable indicates a speaker photo could not be
	// fetched or normalised. Callers degrade to a text fallback for
	// the one record; the run continues.
	ErrImageUnavailable = errors.New("image unavailable")

	// ErrSheetExists indicates a sheet name was added twice to one
	// workbook.
	ErrSheetExists = errors.New("sheet already exists")
)
