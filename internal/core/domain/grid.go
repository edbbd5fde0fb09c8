package domain

// Grid geometry for the layout engine. Rows and columns are 0-based;
// the workbook adapter converts to its backend's 1-based coordinates.

// Bounds is a rectangular cell range, end-inclusive.
type Bounds struct {
	// R1 is the start row.
	R1 int
	// C1 is the start column.
	C1 int
	// R2 is the end row, inclusive.
	R2 int
	// C2 is the end column, inclusive.
	C2 int
}

// Cell returns single-cell bounds.
func Cell(row, col int) Bounds {
	return Bounds{R1: row, C1: col, R2: row, C2: col}
}

// Span returns bounds covering rows r1..r2 and columns c1..c2.
func Span(r1, c1, r2, c2 int) Bounds {
	return Bounds{R1: r1, C1: c1, R2: r2, C2: c2}
}

// Overlaps reports whether two ranges share any cell.
func (b Bounds) Overlaps(o Bounds) bool {
	return b.R1 <= o.R2 && o.R1 <= b.R2 && b.C1 <= o.C2 && o.C1 <= b.C2
}

// Single reports whether the bounds cover exactly one cell.
func (b Bounds) Single() bool {
	return b.R1 == b.R2 && b.C1 == b.C2
}

// StyleTag names a visual treatment. The workbook adapter owns the
// concrete font/fill/border definitions; layout code only tags cells.
type StyleTag string

const (
	// StyleNone leaves the backend default.
	StyleNone StyleTag = ""
	// StyleHeader is the blue band with white bold text.
	StyleHeader StyleTag = "header"
	// StyleHighlight is the yellow data band.
	StyleHighlight StyleTag = "highlight"
	// StyleCell is a plain bordered cell.
	StyleCell StyleTag = "cell"
	// StyleCellWrap is a bordered cell with text wrapping.
	StyleCellWrap StyleTag = "cell_wrap"
	// StyleTime is the bold, centred schedule slot.
	StyleTime StyleTag = "time"
	// StyleTitle is the bold talk title.
	StyleTitle StyleTag = "title"
	// StyleDuration is the centred minute count.
	StyleDuration StyleTag = "duration"
	// StyleLabel is a right-aligned field label.
	StyleLabel StyleTag = "label"
	// StyleLink is hyperlink-coloured underlined text.
	StyleLink StyleTag = "link"
)

// DrawOp discriminates DrawInstruction variants.
type DrawOp int

const (
	// OpWriteCell writes a value into a single cell.
	OpWriteCell DrawOp = iota
	// OpMergeRange merges a range and writes the value to its
	// top-left cell.
	OpMergeRange
	// OpInsertImage places a pre-normalised image at the range's
	// top-left cell. The range must already be claimed by a merge.
	OpInsertImage
	// OpSetRowHeight sets one row's height in points.
	OpSetRowHeight
	// OpSetColWidth sets one column's width in character units.
	OpSetColWidth
	// OpFreezeRows freezes the top N rows.
	OpFreezeRows
	// OpPageSetup applies print/pagination directives to the sheet.
	OpPageSetup
)

// CellValue is the payload of a write or merge.
type CellValue struct {
	// Text is the display text.
	Text string
	// Hyperlink, when set, makes the cell an external link.
	Hyperlink string
	// ImagePath, on OpInsertImage, is the cached local image file.
	ImagePath string
}

// DrawInstruction is one grid-drawing step. Instructions are consumed
// strictly in emission order; the layout engine guarantees no two
// non-empty writes target the same physical cell.
type DrawInstruction struct {
	// Op selects the variant.
	Op DrawOp

	// Bounds is the target range. Single cell for OpWriteCell; the
	// row (R1) for OpSetRowHeight; the column (C1) for OpSetColWidth.
	Bounds Bounds

	// Value is the cell payload for write/merge/image ops.
	Value CellValue

	// Style tags the visual treatment for write/merge ops.
	Style StyleTag

	// Height is the row height in points for OpSetRowHeight.
	Height float64

	// Width is the column width in character units for OpSetColWidth.
	Width float64

	// Rows is the frozen row count for OpFreezeRows.
	Rows int

	// Page carries OpPageSetup directives.
	Page *PageSetup
}

// PageSetup holds the print directives shared by both detail layouts.
type PageSetup struct {
	// Portrait orientation; false means landscape.
	Portrait bool

	// PaperLetter selects 8.5x11in Letter paper.
	PaperLetter bool

	// Margins in inches.
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64

	// FitToWidth scales the sheet to N pages wide; 0 disables.
	FitToWidth int

	// RepeatRows repeats the top N rows on every printed page.
	RepeatRows int

	// HeaderCentre is the centred page header text.
	HeaderCentre string

	// FooterSheetName puts the sheet name in the left footer.
	FooterSheetName bool

	// FooterPageNumbers puts "Page N of M" in the right footer.
	FooterPageNumbers bool
}

// ImageSize is a pixel width/height pair for the image cache.
type ImageSize struct {
	Width  int
	Height int
}

// PhotoSize is the one shared speaker photo size: 1.5in at 96 DPI.
var PhotoSize = ImageSize{Width: 144, Height: 144}
