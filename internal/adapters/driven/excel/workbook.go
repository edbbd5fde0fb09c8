package excel

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/pybay/runsheet-cli/internal/core/domain"
	"github.com/pybay/runsheet-cli/internal/core/ports/driven"
	"github.com/pybay/runsheet-cli/internal/logger"
)

// paperLetter is the ECMA-376 paper size code for US Letter.
const paperLetter = 1

// Ensure the adapter satisfies its ports.
var (
	_ driven.WorkbookFactory = (*Factory)(nil)
	_ driven.WorkbookWriter  = (*Workbook)(nil)
	_ driven.SheetWriter     = (*sheetWriter)(nil)
)

// Factory creates excelize-backed workbook writers.
type Factory struct{}

// NewFactory creates a workbook factory.
func NewFactory() *Factory { return &Factory{} }

// Create implements driven.WorkbookFactory.
func (*Factory) Create(path string) (driven.WorkbookWriter, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty workbook path", domain.ErrInvalidInput)
	}
	return &Workbook{
		f:      excelize.NewFile(),
		path:   path,
		styles: make(map[domain.StyleTag]int),
		sheets: make(map[string]bool),
	}, nil
}

// Workbook writes one .xlsx file. The final file only appears on
// Finalize, via a temp-file rename, so an aborted run never leaves a
// valid-looking partial workbook behind.
type Workbook struct {
	f      *excelize.File
	path   string
	styles map[domain.StyleTag]int
	sheets map[string]bool
}

// NewSheet implements driven.WorkbookWriter.
func (w *Workbook) NewSheet(name, tabColour string) (driven.SheetWriter, error) {
	if w.sheets[name] {
		return nil, fmt.Errorf("%w: %s", domain.ErrSheetExists, name)
	}
	if _, err := w.f.NewSheet(name); err != nil {
		return nil, fmt.Errorf("new sheet %s: %w", name, err)
	}
	if tabColour != "" {
		if err := w.f.SetSheetProps(name, &excelize.SheetPropsOptions{
			TabColorRGB: &tabColour,
		}); err != nil {
			return nil, fmt.Errorf("tab colour %s: %w", name, err)
		}
	}
	w.sheets[name] = true
	return &sheetWriter{wb: w, name: name}, nil
}

// Finalize implements driven.WorkbookWriter.
func (w *Workbook) Finalize() error {
	// Drop excelize's default sheet; tabs should be run sheets only.
	if len(w.sheets) > 0 && !w.sheets["Sheet1"] {
		if err := w.f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("delete default sheet: %w", err)
		}
	}

	tmp := filepath.Join(filepath.Dir(w.path), "."+filepath.Base(w.path)+".tmp")
	if err := w.f.SaveAs(tmp); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("save workbook: %w", err)
	}
	if err := os.Rename(tmp, w.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("move workbook into place: %w", err)
	}
	logger.Debug("Saved workbook %s (%d sheets)", w.path, len(w.sheets))
	return w.f.Close()
}

// Discard implements driven.WorkbookWriter.
func (w *Workbook) Discard() error {
	return w.f.Close()
}

// styleID lazily registers the excelize style for a tag.
func (w *Workbook) styleID(tag domain.StyleTag) (int, bool, error) {
	if tag == domain.StyleNone {
		return 0, false, nil
	}
	if id, ok := w.styles[tag]; ok {
		return id, true, nil
	}
	def, err := styleDef(tag)
	if err != nil {
		return 0, false, err
	}
	id, err := w.f.NewStyle(def)
	if err != nil {
		return 0, false, fmt.Errorf("register style %q: %w", tag, err)
	}
	w.styles[tag] = id
	return id, true, nil
}

// sheetWriter replays draw instructions onto one sheet.
type sheetWriter struct {
	wb   *Workbook
	name string
}

// Apply implements driven.SheetWriter.
func (s *sheetWriter) Apply(in domain.DrawInstruction) error {
	switch in.Op {
	case domain.OpWriteCell:
		return s.writeCell(in)
	case domain.OpMergeRange:
		return s.mergeRange(in)
	case domain.OpInsertImage:
		return s.insertImage(in)
	case domain.OpSetRowHeight:
		return s.wb.f.SetRowHeight(s.name, in.Bounds.R1+1, in.Height)
	case domain.OpSetColWidth:
		col, err := excelize.ColumnNumberToName(in.Bounds.C1 + 1)
		if err != nil {
			return err
		}
		return s.wb.f.SetColWidth(s.name, col, col, in.Width)
	case domain.OpFreezeRows:
		return s.freezeRows(in.Rows)
	case domain.OpPageSetup:
		return s.pageSetup(in.Page)
	default:
		return fmt.Errorf("%w: unknown draw op %d", domain.ErrInvalidInput, in.Op)
	}
}

func (s *sheetWriter) writeCell(in domain.DrawInstruction) error {
	cell, err := excelize.CoordinatesToCellName(in.Bounds.C1+1, in.Bounds.R1+1)
	if err != nil {
		return err
	}
	return s.setValue(cell, cell, in)
}

func (s *sheetWriter) mergeRange(in domain.DrawInstruction) error {
	topLeft, err := excelize.CoordinatesToCellName(in.Bounds.C1+1, in.Bounds.R1+1)
	if err != nil {
		return err
	}
	bottomRight, err := excelize.CoordinatesToCellName(in.Bounds.C2+1, in.Bounds.R2+1)
	if err != nil {
		return err
	}
	// Single-cell zones (like the duration column) need no merge.
	if topLeft != bottomRight {
		if err := s.wb.f.MergeCell(s.name, topLeft, bottomRight); err != nil {
			return fmt.Errorf("merge %s:%s: %w", topLeft, bottomRight, err)
		}
	}
	// Style the whole region so borders cover the merge, not just the
	// value-carrying corner.
	return s.setValue(topLeft, bottomRight, in)
}

// setValue writes text, hyperlink and style for a cell or region.
func (s *sheetWriter) setValue(topLeft, bottomRight string, in domain.DrawInstruction) error {
	if in.Value.Text != "" {
		if err := s.wb.f.SetCellStr(s.name, topLeft, in.Value.Text); err != nil {
			return err
		}
	}
	if in.Value.Hyperlink != "" {
		if err := s.wb.f.SetCellHyperLink(s.name, topLeft, in.Value.Hyperlink, "External"); err != nil {
			return err
		}
	}
	id, ok, err := s.wb.styleID(in.Style)
	if err != nil {
		return err
	}
	if ok {
		if err := s.wb.f.SetCellStyle(s.name, topLeft, bottomRight, id); err != nil {
			return err
		}
	}
	return nil
}

// insertImage places a pre-normalised picture at the region's
// top-left cell. The image is already sized for the zone, so it goes
// in 1:1 with a small inset. A backend rejection degrades to the
// photo URL as text, matching the layout engine's own fallback.
func (s *sheetWriter) insertImage(in domain.DrawInstruction) error {
	cell, err := excelize.CoordinatesToCellName(in.Bounds.C1+1, in.Bounds.R1+1)
	if err != nil {
		return err
	}
	err = s.wb.f.AddPicture(s.name, cell, in.Value.ImagePath, &excelize.GraphicOptions{
		OffsetX:     5,
		OffsetY:     5,
		Positioning: "oneCell",
	})
	if err != nil {
		logger.Warn("picture rejected (%s), writing URL instead: %v", in.Value.ImagePath, err)
		return s.wb.f.SetCellStr(s.name, cell, in.Value.Hyperlink)
	}
	return nil
}

func (s *sheetWriter) freezeRows(rows int) error {
	topLeft, err := excelize.CoordinatesToCellName(1, rows+1)
	if err != nil {
		return err
	}
	return s.wb.f.SetPanes(s.name, &excelize.Panes{
		Freeze:      true,
		YSplit:      rows,
		TopLeftCell: topLeft,
		ActivePane:  "bottomLeft",
	})
}

func (s *sheetWriter) pageSetup(p *domain.PageSetup) error {
	if p == nil {
		return nil
	}

	orientation := "landscape"
	if p.Portrait {
		orientation = "portrait"
	}
	layout := &excelize.PageLayoutOptions{Orientation: &orientation}
	if p.PaperLetter {
		size := paperLetter
		layout.Size = &size
	}
	if p.FitToWidth > 0 {
		fit := true
		if err := s.wb.f.SetSheetProps(s.name, &excelize.SheetPropsOptions{FitToPage: &fit}); err != nil {
			return err
		}
		width := p.FitToWidth
		layout.FitToWidth = &width
	}
	if err := s.wb.f.SetPageLayout(s.name, layout); err != nil {
		return fmt.Errorf("page layout: %w", err)
	}

	if err := s.wb.f.SetPageMargins(s.name, &excelize.PageLayoutMarginsOptions{
		Left:   &p.MarginLeft,
		Right:  &p.MarginRight,
		Top:    &p.MarginTop,
		Bottom: &p.MarginBottom,
	}); err != nil {
		return fmt.Errorf("page margins: %w", err)
	}

	header := ""
	if p.HeaderCentre != "" {
		header = "&C" + p.HeaderCentre
	}
	footer := ""
	if p.FooterSheetName {
		footer += "&L&A"
	}
	if p.FooterPageNumbers {
		footer += "&RPage &P of &N"
	}
	if header != "" || footer != "" {
		if err := s.wb.f.SetHeaderFooter(s.name, &excelize.HeaderFooterOptions{
			OddHeader: header,
			OddFooter: footer,
		}); err != nil {
			return fmt.Errorf("header/footer: %w", err)
		}
	}

	if p.RepeatRows > 0 {
		err := s.wb.f.SetDefinedName(&excelize.DefinedName{
			Name:     "_xlnm.Print_Titles",
			RefersTo: fmt.Sprintf("'%s'!$1:$%d", s.name, p.RepeatRows),
			Scope:    s.name,
		})
		if err != nil {
			return fmt.Errorf("repeat rows: %w", err)
		}
	}
	return nil
}
