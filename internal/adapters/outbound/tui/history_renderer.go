package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openkraft/reportkraft/internal/domain"
)

// RenderHistory renders past aggregation runs, oldest first, with the change
// in surfaced findings between consecutive runs.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}

		color := success
		if len(e.FailedReports) > 0 {
			color = warning
		}
		totalStyled := lipgloss.NewStyle().
			Foreground(color).
			Render(fmt.Sprintf("%d findings", e.Total()))

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(ts),
			faintStyle.Render(hash),
			totalStyled,
			dimStyle.Render(fmt.Sprintf("debt %d · targets %d · large %d", e.TechnicalDebt, e.RefactoringTargets, e.LargeFiles)),
		)

		if i > 0 {
			diff := e.Total() - entries[i-1].Total()
			if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			} else if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			}
		}

		if len(e.FailedReports) > 0 {
			line += "  " + warnStyle.Render("missing: "+strings.Join(e.FailedReports, ", "))
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	return b.String()
}
