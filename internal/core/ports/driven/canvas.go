package driven

import "github.com/pybay/runsheet-cli/internal/core/domain"

// WorkbookWriter is the grid canvas the layout engine draws into.
// One writer produces one workbook file. Sheets are written one at a
// time by a single producer, in instruction order.
type WorkbookWriter interface {
	// NewSheet adds a tab with the given name and tab colour (hex,
	// no '#'). Adding a duplicate name returns domain.ErrSheetExists.
	NewSheet(name, tabColour string) (SheetWriter, error)

	// Finalize persists the workbook. Implementations must not leave
	// a valid-looking partial file on failure.
	Finalize() error

	// Discard abandons the workbook without producing output.
	Discard() error
}

// SheetWriter replays draw instructions onto one sheet.
type SheetWriter interface {
	// Apply executes a single instruction. Instructions arrive in
	// emission order and never conflict; the layout engine enforces
	// that before they reach the canvas.
	Apply(in domain.DrawInstruction) error
}

// WorkbookFactory creates workbook writers. A factory rather than a
// writer is injected into the builder so each run (and each watch-mode
// regeneration) gets a fresh workbook.
type WorkbookFactory interface {
	Create(path string) (WorkbookWriter, error)
}
