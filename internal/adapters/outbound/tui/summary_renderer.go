package tui

import (
	"fmt"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/openkraft/reportkraft/internal/domain"
)

// Summary section keys, matching the JSON field names of AnalysisSummary.
const (
	sectionTechnicalDebt      = "technicalDebt"
	sectionRefactoringTargets = "refactoringTargets"
	sectionComplexityIssues   = "complexityIssues"
	sectionLargeFiles         = "largeFiles"
)

// SectionTitle turns a camelCase field name into a heading,
// e.g. "refactoringTargets" -> "Refactoring Targets".
func SectionTitle(field string) string {
	words := camelcase.Split(field)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// RenderResult renders an aggregation run as a styled TUI string.
func RenderResult(result *domain.AggregateResult) string {
	var b strings.Builder
	s := result.Summary

	title := headerStyle.Render("reportkraft")
	subtitle := dimStyle.Render("Comprehensive Analysis")
	total := len(s.TechnicalDebt) + len(s.RefactoringTargets) + len(s.ComplexityIssues) + len(s.LargeFiles)
	countLine := titleStyle.Render(fmt.Sprintf("%d findings", total))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + countLine))
	b.WriteString("\n\n")

	// ── Sources ──
	b.WriteString("  " + titleStyle.Render("Sources") + "\n")
	for _, st := range result.Steps {
		renderStep(&b, st)
	}
	b.WriteString("\n  " + separatorLine + "\n")

	// ── Sections ──
	renderSection(&b, sectionTechnicalDebt, len(s.TechnicalDebt), func(i int) string {
		f := s.TechnicalDebt[i]
		return fmt.Sprintf("%s  %s %s",
			fileStyle.Render(f.FilePath),
			failStyle.Render(fmt.Sprintf("%d errors", f.ErrorCount)),
			warnStyle.Render(fmt.Sprintf("%d warnings", f.WarningCount)),
		)
	})
	renderSection(&b, sectionRefactoringTargets, len(s.RefactoringTargets), func(i int) string {
		d := s.RefactoringTargets[i]
		return fmt.Sprintf("%s  %s", d.Module, dimStyle.Render(fmt.Sprintf("%d dependencies", d.DependencyCount)))
	})
	renderSection(&b, sectionComplexityIssues, len(s.ComplexityIssues), func(i int) string {
		c := s.ComplexityIssues[i]
		return fmt.Sprintf("%s  %s", fileStyle.Render(c.File), dimStyle.Render(fmt.Sprintf("score %d", c.Score)))
	})
	renderSection(&b, sectionLargeFiles, len(s.LargeFiles), func(i int) string {
		l := s.LargeFiles[i]
		return fmt.Sprintf("%s  %s", fileStyle.Render(l.File), dimStyle.Render(fmt.Sprintf("%d lines", l.LineCount)))
	})

	b.WriteString("\n")
	return b.String()
}

func renderStep(b *strings.Builder, st domain.StepResult) {
	name := padRight(st.Report, 20)
	if !st.OK() {
		fmt.Fprintf(b, "    %s %s %s\n", failStyle.Render("✗"), name, dimStyle.Render(string(st.Err.Kind)))
		return
	}
	fmt.Fprintf(b, "    %s %s %s\n", passStyle.Render("✓"), name,
		dimStyle.Render(fmt.Sprintf("%d/%d kept", st.Kept, st.Records)))
}

func renderSection(b *strings.Builder, field string, n int, line func(int) string) {
	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n", sectionStyle.Render(SectionTitle(field)), dimStyle.Render(fmt.Sprintf("(%d)", n)))
	if n == 0 {
		b.WriteString("    " + faintStyle.Render("none") + "\n")
		return
	}
	for i := 0; i < n; i++ {
		b.WriteString("    " + warnStyle.Render("●") + " " + line(i) + "\n")
	}
}
