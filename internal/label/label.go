// Package label renders human-readable labels for test records. It is
// render-agnostic: the web UI and the CLI both consume plain strings.
package label

import (
	"fmt"

	"github.com/abhisek/tahfiz/internal/record"
)

// ForRecord returns the tested-unit label, e.g. "Juz 12" or "Hizb 20 (Juz 10)".
func ForRecord(r record.TestRecord) string {
	switch rec := r.(type) {
	case record.Scored:
		if n, ok := rec.DisplayHizbNumber(); ok {
			return fmt.Sprintf("Hizb %d (Juz %d)", n, rec.Juz)
		}
		return fmt.Sprintf("Juz %d", rec.Juz)
	case record.LegacyImported:
		return fmt.Sprintf("Juz %d", rec.Juz)
	default:
		return fmt.Sprintf("Juz %d", r.JuzNumber())
	}
}

// PageRange returns the page-range label, e.g. "Pages 190-200". The second
// return is false for legacy rows, which carry no page data.
func PageRange(r record.TestRecord) (string, bool) {
	rec, ok := r.(record.Scored)
	if !ok || rec.Pages.Start == 0 {
		return "", false
	}
	return fmt.Sprintf("Pages %d-%d", rec.Pages.Start, rec.Pages.End), true
}

// Percentage returns the display percentage, e.g. "87%". The second return is
// false for legacy rows, which carry only a verdict.
func Percentage(r record.TestRecord) (string, bool) {
	rec, ok := r.(record.Scored)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%d%%", rec.Result.Percentage), true
}

// Verdict returns "Passed" or "Failed" for any record variant.
func Verdict(r record.TestRecord) string {
	if r.Passed() {
		return "Passed"
	}
	return "Failed"
}
