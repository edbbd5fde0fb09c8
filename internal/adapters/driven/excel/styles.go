package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pybay/runsheet-cli/internal/core/domain"
)

// thinBorder is the standard cell border on every data cell.
var thinBorder = []excelize.Border{
	{Type: "left", Color: domain.Black, Style: 1},
	{Type: "right", Color: domain.Black, Style: 1},
	{Type: "top", Color: domain.Black, Style: 1},
	{Type: "bottom", Color: domain.Black, Style: 1},
}

func fill(colour string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{colour}}
}

// styleDef maps a layout style tag to its concrete excelize style.
// Everything is top-aligned so merged photo zones and wrapped text
// read consistently.
func styleDef(tag domain.StyleTag) (*excelize.Style, error) {
	switch tag {
	case domain.StyleHeader:
		return &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: domain.White},
			Fill:      fill(domain.PrimaryBlue),
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top", WrapText: true},
			Border:    thinBorder,
		}, nil
	case domain.StyleHighlight:
		return &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Fill:      fill(domain.PrimaryYellow),
			Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
			Border:    thinBorder,
		}, nil
	case domain.StyleCell:
		return &excelize.Style{
			Alignment: &excelize.Alignment{Vertical: "top"},
			Border:    thinBorder,
		}, nil
	case domain.StyleCellWrap:
		return &excelize.Style{
			Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
			Border:    thinBorder,
		}, nil
	case domain.StyleTime:
		return &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top"},
			Border:    thinBorder,
		}, nil
	case domain.StyleTitle:
		return &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 11},
			Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
			Border:    thinBorder,
		}, nil
	case domain.StyleDuration:
		return &excelize.Style{
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top"},
			Border:    thinBorder,
		}, nil
	case domain.StyleLabel:
		return &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "top"},
		}, nil
	case domain.StyleLink:
		return &excelize.Style{
			Font:      &excelize.Font{Color: domain.PrimaryBlue, Underline: "single"},
			Alignment: &excelize.Alignment{Vertical: "top"},
			Border:    thinBorder,
		}, nil
	default:
		return nil, fmt.Errorf("unknown style tag %q", tag)
	}
}
