package layout

import (
	"fmt"

	"github.com/pybay/runsheet-cli/internal/core/domain"
)

// emitter accumulates draw instructions and enforces the claim
// discipline: every write and every merge claims its cells, and a
// claim overlapping an earlier one is domain.ErrLayoutCollision.
// Images are the one exception: they must land inside an
// already-merged region, established before the image instruction.
type emitter struct {
	ins    []domain.DrawInstruction
	claims []domain.Bounds
	merges []domain.Bounds
}

func (e *emitter) claim(b domain.Bounds) error {
	if b.R1 > b.R2 || b.C1 > b.C2 || b.R1 < 0 || b.C1 < 0 {
		return fmt.Errorf("%w: degenerate bounds %+v", domain.ErrLayoutCollision, b)
	}
	for _, c := range e.claims {
		if c.Overlaps(b) {
			return fmt.Errorf("%w: %+v overlaps %+v", domain.ErrLayoutCollision, b, c)
		}
	}
	e.claims = append(e.claims, b)
	return nil
}

// write emits a single-cell write.
func (e *emitter) write(row, col int, text string, style domain.StyleTag) error {
	b := domain.Cell(row, col)
	if err := e.claim(b); err != nil {
		return err
	}
	e.ins = append(e.ins, domain.DrawInstruction{
		Op:     domain.OpWriteCell,
		Bounds: b,
		Value:  domain.CellValue{Text: text},
		Style:  style,
	})
	return nil
}

// link emits a single-cell external hyperlink.
func (e *emitter) link(row, col int, text, url string) error {
	b := domain.Cell(row, col)
	if err := e.claim(b); err != nil {
		return err
	}
	e.ins = append(e.ins, domain.DrawInstruction{
		Op:     domain.OpWriteCell,
		Bounds: b,
		Value:  domain.CellValue{Text: text, Hyperlink: url},
		Style:  domain.StyleLink,
	})
	return nil
}

// merge emits a merged range carrying text in its top-left cell.
func (e *emitter) merge(b domain.Bounds, text string, style domain.StyleTag) error {
	if err := e.claim(b); err != nil {
		return err
	}
	e.merges = append(e.merges, b)
	e.ins = append(e.ins, domain.DrawInstruction{
		Op:     domain.OpMergeRange,
		Bounds: b,
		Value:  domain.CellValue{Text: text},
		Style:  style,
	})
	return nil
}

// mergeLink emits a merged range whose top-left cell is a hyperlink.
func (e *emitter) mergeLink(b domain.Bounds, text, url string) error {
	if err := e.claim(b); err != nil {
		return err
	}
	e.merges = append(e.merges, b)
	e.ins = append(e.ins, domain.DrawInstruction{
		Op:     domain.OpMergeRange,
		Bounds: b,
		Value:  domain.CellValue{Text: text, Hyperlink: url},
		Style:  domain.StyleLink,
	})
	return nil
}

// image places a cached picture inside a previously merged region.
// url travels with the instruction so the canvas can degrade to text
// if the backend rejects the picture file.
func (e *emitter) image(b domain.Bounds, path, url string) error {
	inside := false
	for _, m := range e.merges {
		if m.R1 <= b.R1 && b.R2 <= m.R2 && m.C1 <= b.C1 && b.C2 <= m.C2 {
			inside = true
			break
		}
	}
	if !inside {
		return fmt.Errorf("%w: image %+v outside any merged region", domain.ErrLayoutCollision, b)
	}
	e.ins = append(e.ins, domain.DrawInstruction{
		Op:     domain.OpInsertImage,
		Bounds: b,
		Value:  domain.CellValue{ImagePath: path, Hyperlink: url},
	})
	return nil
}

func (e *emitter) rowHeight(row int, points float64) {
	e.ins = append(e.ins, domain.DrawInstruction{
		Op:     domain.OpSetRowHeight,
		Bounds: domain.Cell(row, 0),
		Height: points,
	})
}

func (e *emitter) colWidth(col int, units float64) {
	e.ins = append(e.ins, domain.DrawInstruction{
		Op:     domain.OpSetColWidth,
		Bounds: domain.Cell(0, col),
		Width:  units,
	})
}

func (e *emitter) freeze(rows int) {
	e.ins = append(e.ins, domain.DrawInstruction{
		Op:   domain.OpFreezeRows,
		Rows: rows,
	})
}

func (e *emitter) page(p domain.PageSetup) {
	e.ins = append(e.ins, domain.DrawInstruction{
		Op:   domain.OpPageSetup,
		Page: &p,
	})
}

// wrapHeight picks a row height for wrapped long text. Excel will not
// size a row to fit wrapped text on its own, so heights come from
// content length thresholds.
func wrapHeight(text string) float64 {
	switch n := len([]rune(text)); {
	case n < 50:
		return 15
	case n < 100:
		return 30
	default:
		return 50
	}
}
