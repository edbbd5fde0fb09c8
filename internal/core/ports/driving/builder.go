package driving

import "context"

// SheetCount pairs a produced sheet with its record count.
type SheetCount struct {
	// Name is the sheet tab name.
	Name string
	// Records is the number of records rendered on the sheet.
	Records int
}

// BuildReport summarises one generation run for the user.
type BuildReport struct {
	// OutputPath is where the workbook was written.
	OutputPath string

	// ConferenceYear is the modal year of scheduled sessions, or
	// "YYYY" when the export carries no real timestamps.
	ConferenceYear string

	// Sheets lists every produced sheet in tab order.
	Sheets []SheetCount

	// TotalRecords is the normalised input row count.
	TotalRecords int

	// UnmatchedRecords counts rows whose room matched no known room
	// class. They are excluded from every sheet but never silently:
	// this tally plus the per-class counts accounts for every row.
	UnmatchedRecords int

	// UnmatchedRooms lists the distinct unmatched room names.
	UnmatchedRooms []string

	// Fallbacks counts normaliser substitutions by field name.
	Fallbacks map[string]int

	// ImagesResolved and ImagesFailed count speaker photo fetches.
	ImagesResolved int
	ImagesFailed   int
}

// RunSheetBuilder is the application's one driving operation: turn a
// session export into a formatted run sheet workbook.
type RunSheetBuilder interface {
	Build(ctx context.Context, inputPath, outputPath string) (*BuildReport, error)
}
