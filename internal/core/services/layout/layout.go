package layout

import (
	"context"

	"github.com/pybay/runsheet-cli/internal/core/domain"
)

// Strategy renders one record set into an ordered instruction stream.
// Instructions never conflict: two writes or merges touching the same
// physical cell indicate a bug in the strategy and surface as
// domain.ErrLayoutCollision during development.
type Strategy interface {
	// Suffix distinguishes sheet names sharing one logical view
	// ("summary", "detail_print", "detail_mobile").
	Suffix() string

	// Layout renders the set. roomName is the display name for the
	// sheet's header band.
	Layout(ctx context.Context, set domain.RecordSet, roomName string) ([]domain.DrawInstruction, error)
}

// detailPage is the print policy both detail strategies share:
// Letter portrait, quarter-inch sides, scale to one page wide, repeat
// the header band, year in the page header, sheet name and page
// numbers in the footer.
func detailPage(year string) domain.PageSetup {
	return domain.PageSetup{
		Portrait:          true,
		PaperLetter:       true,
		MarginLeft:        0.25,
		MarginRight:       0.25,
		MarginTop:         0.75,
		MarginBottom:      0.75,
		FitToWidth:        1,
		RepeatRows:        1,
		HeaderCentre:      "PyBay " + year,
		FooterSheetName:   true,
		FooterPageNumbers: true,
	}
}
