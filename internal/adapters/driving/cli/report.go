package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pybay/runsheet-cli/internal/core/ports/driving"
)

// Report styling in the brand colours.
var (
	reportBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2E648E")).
			Padding(0, 1)

	reportTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2E648E"))

	sheetName = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FDC13C"))

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#D75F00"))

	dimStyle = lipgloss.NewStyle().Faint(true)
)

// renderReport formats a build report for the terminal. Every input
// row is accounted for: the per-sheet counts plus the unmatched tally
// add up to the export's row count.
func renderReport(r *driving.BuildReport) string {
	var b strings.Builder

	b.WriteString(reportTitle.Render(fmt.Sprintf("Run sheets / PyBay %s", r.ConferenceYear)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s · %d records", r.OutputPath, r.TotalRecords)))
	b.WriteString("\n\n")

	width := 0
	for _, s := range r.Sheets {
		if len(s.Name) > width {
			width = len(s.Name)
		}
	}
	for _, s := range r.Sheets {
		b.WriteString(fmt.Sprintf("%s  %d\n",
			sheetName.Render(fmt.Sprintf("%-*s", width, s.Name)), s.Records))
	}

	if len(r.Fallbacks) > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Fallback substitutions:"))
		b.WriteString("\n")
		cols := make([]string, 0, len(r.Fallbacks))
		for col := range r.Fallbacks {
			cols = append(cols, col)
		}
		sort.Strings(cols)
		for _, col := range cols {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %s: %d", col, r.Fallbacks[col])))
			b.WriteString("\n")
		}
	}

	if r.ImagesResolved+r.ImagesFailed > 0 {
		b.WriteString("\n")
		line := fmt.Sprintf("Photos: %d cached", r.ImagesResolved)
		if r.ImagesFailed > 0 {
			line += warnStyle.Render(fmt.Sprintf(", %d failed", r.ImagesFailed))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if r.UnmatchedRecords > 0 {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(fmt.Sprintf(
			"%d records matched no room (%s), not on any sheet",
			r.UnmatchedRecords, strings.Join(r.UnmatchedRooms, ", "))))
		b.WriteString("\n")
	}

	return reportBox.Render(strings.TrimRight(b.String(), "\n"))
}
