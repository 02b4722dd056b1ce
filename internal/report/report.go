// Package report renders score results and gap reports for the terminal.
package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tahfiz/internal/label"
	"github.com/abhisek/tahfiz/internal/progress"
	"github.com/abhisek/tahfiz/internal/record"
	"github.com/abhisek/tahfiz/internal/scoring"
)

// RenderScore formats a graded test record for the terminal.
func RenderScore(rec *record.Scored) string {
	var b strings.Builder

	b.WriteString(Title.Render(fmt.Sprintf("%s — %s test", label.ForRecord(*rec), rec.Mode.DisplayName())))
	b.WriteString("\n")
	if pages, ok := label.PageRange(*rec); ok {
		b.WriteString(Dim.Render(pages))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch bd := rec.Result.Breakdown.(type) {
	case *scoring.PMMMBreakdown:
		for _, cat := range bd.Categories {
			b.WriteString(Body.Render(fmt.Sprintf("  %-34s %2d/%2d",
				cat.Category.DisplayName(), cat.Subtotal, cat.Max)))
			b.WriteString("\n")
		}
		b.WriteString(Body.Render(fmt.Sprintf("  %-34s %2d/%2d", "Tajweed", bd.Tajweed, scoring.MaxSubScore)))
		b.WriteString("\n")
		b.WriteString(Body.Render(fmt.Sprintf("  %-34s %2d/%2d", "Recitation", bd.Recitation, scoring.MaxSubScore)))
		b.WriteString("\n")
	case *scoring.NormalBreakdown:
		for _, blk := range bd.Blocks {
			line := fmt.Sprintf("  Block %d", blk.Block)
			if blk.Pages.Start != 0 {
				line += fmt.Sprintf(" (pages %d-%d)", blk.Pages.Start, blk.Pages.End)
			}
			line += fmt.Sprintf(": %d/5", blk.Score)
			if blk.ElapsedSeconds > 0 {
				line += Dim.Render(fmt.Sprintf("  %ds", blk.ElapsedSeconds))
			}
			if blk.Extensions > 0 {
				line += Dim.Render(fmt.Sprintf("  +%d ext", blk.Extensions))
			}
			b.WriteString(Body.Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(Body.Render(fmt.Sprintf("  Total: %d/%d (%d%%)  ",
		rec.Result.Total, rec.Result.Max, rec.Result.Percentage)))
	if rec.Result.Passed {
		b.WriteString(Passed.Render("PASSED"))
	} else {
		b.WriteString(Failed.Render("FAILED"))
	}
	b.WriteString("\n")

	return b.String()
}

// RenderRecordLine formats one history row; legacy rows render without a
// percentage or page range.
func RenderRecordLine(r record.TestRecord) string {
	line := fmt.Sprintf("%-18s %s", label.ForRecord(r), label.Verdict(r))
	if pct, ok := label.Percentage(r); ok {
		line += "  " + pct
	} else {
		line += Dim.Render("  (historical entry)")
	}
	return line
}

// RenderGap formats a progress gap report for the terminal.
func RenderGap(rep progress.Report) string {
	var b strings.Builder

	b.WriteString(Title.Render("Progress gap"))
	b.WriteString("\n\n")
	b.WriteString(Body.Render(fmt.Sprintf("  Memorized frontier:  Juz %d", rep.MemorizedFrontier)))
	b.WriteString("\n")
	b.WriteString(Body.Render(fmt.Sprintf("  Highest tested:      Juz %d", rep.HighestTestedJuz)))
	b.WriteString("\n")
	b.WriteString(Body.Render(fmt.Sprintf("  Highest passed:      Juz %d", rep.HighestPassedJuz)))
	b.WriteString("\n\n")

	b.WriteString(severityStyle(rep.Severity).Render(
		fmt.Sprintf("  Gap: %d — %s", rep.Gap, rep.Severity.DisplayName())))
	b.WriteString("\n")
	b.WriteString(Body.Render(fmt.Sprintf("  Next: %s Juz %d", rep.Action.DisplayName(), rep.RecommendedJuz)))
	b.WriteString("\n")

	return b.String()
}

func severityStyle(s progress.Severity) lipgloss.Style {
	switch s {
	case progress.SeverityUpToDate:
		return Passed
	case progress.SeverityMinorBacklog:
		return Warn
	default:
		return Failed
	}
}
