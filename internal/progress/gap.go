package progress

import (
	"github.com/abhisek/tahfiz/internal/mushaf"
	"github.com/abhisek/tahfiz/internal/record"
)

// MemorizationRecord summarizes a student's recitation history as derived by
// the external reporting collaborator: the set of juz fully completed, plus
// the juz of the most recent session, which may still be in progress.
type MemorizationRecord struct {
	CompletedJuz  []int
	InProgressJuz int // 0 when no session is open
}

// HighestCompleted returns the highest completed juz ordinal, or 0.
func (m MemorizationRecord) HighestCompleted() int {
	highest := 0
	for _, juz := range m.CompletedJuz {
		if juz > highest {
			highest = juz
		}
	}
	return highest
}

// Frontier returns the juz ordinal used for gap and testing purposes. Work
// still in progress does not count: the latest worked juz only moves the
// frontier once it appears in the completed set.
func (m MemorizationRecord) Frontier() int {
	highest := m.HighestCompleted()
	latest := m.InProgressJuz
	if latest == 0 {
		latest = highest
	}
	for _, juz := range m.CompletedJuz {
		if juz == latest {
			return latest
		}
	}
	return highest
}

// Action is the recommended next step for a student.
type Action string

const (
	ActionRepeat  Action = "repeat"
	ActionAdvance Action = "advance"
)

// DisplayName returns a human-readable label for the action.
func (a Action) DisplayName() string {
	switch a {
	case ActionRepeat:
		return "Repeat"
	case ActionAdvance:
		return "Advance"
	default:
		return string(a)
	}
}

// Severity bands the gap for display. Callers may rely on the banding:
// 0 is up to date, 1-2 minor, 3+ major.
type Severity string

const (
	SeverityUpToDate     Severity = "up-to-date"
	SeverityMinorBacklog Severity = "minor-backlog"
	SeverityMajorBacklog Severity = "major-backlog"
)

// GapSeverity returns the severity band for a gap value.
func GapSeverity(gap int) Severity {
	switch {
	case gap >= 3:
		return SeverityMajorBacklog
	case gap >= 1:
		return SeverityMinorBacklog
	default:
		return SeverityUpToDate
	}
}

// DisplayName returns a human-readable label for the severity band.
func (s Severity) DisplayName() string {
	switch s {
	case SeverityUpToDate:
		return "Up to date"
	case SeverityMinorBacklog:
		return "Minor backlog"
	case SeverityMajorBacklog:
		return "Major backlog"
	default:
		return string(s)
	}
}

// Report is the computed progress gap and next-test recommendation.
type Report struct {
	MemorizedFrontier int
	HighestTestedJuz  int
	HighestPassedJuz  int
	Gap               int
	Severity          Severity
	RecommendedJuz    int
	Action            Action
}

// Compute derives the gap between a student's memorization frontier and their
// test history, and recommends the next examination. An empty history is a
// normal state, not an error: the gap degrades to the frontier itself and the
// recommendation is to test juz 1.
func Compute(m MemorizationRecord, history []record.TestRecord) Report {
	frontier := m.Frontier()

	highestTested := 0
	highestPassed := 0
	var latest record.TestRecord
	for _, r := range history {
		if r.JuzNumber() > highestTested {
			highestTested = r.JuzNumber()
		}
		if r.Passed() && r.JuzNumber() > highestPassed {
			highestPassed = r.JuzNumber()
		}
		if latest == nil || !r.TestDate().Before(latest.TestDate()) {
			latest = r
		}
	}

	gap := frontier - highestTested
	if gap < 0 {
		gap = 0
	}

	rep := Report{
		MemorizedFrontier: frontier,
		HighestTestedJuz:  highestTested,
		HighestPassedJuz:  highestPassed,
		Gap:               gap,
		Severity:          GapSeverity(gap),
	}

	if latest != nil && !latest.Passed() {
		rep.Action = ActionRepeat
		rep.RecommendedJuz = latest.JuzNumber()
		return rep
	}

	rep.Action = ActionAdvance
	rep.RecommendedJuz = highestPassed + 1
	if rep.RecommendedJuz > mushaf.JuzCount {
		rep.RecommendedJuz = mushaf.JuzCount
	}
	return rep
}
