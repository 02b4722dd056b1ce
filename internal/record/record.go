package record

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/tahfiz/internal/mushaf"
	"github.com/abhisek/tahfiz/internal/scoring"
)

// LegacyExaminer marks rows backfilled from the paper register. Such rows
// carry only a juz number and a pass/fail verdict, never a breakdown.
const LegacyExaminer = "Historical Entry"

// IsLegacyExaminer reports whether an examiner name identifies a backfilled row.
func IsLegacyExaminer(name string) bool {
	return name == LegacyExaminer
}

// TestRecord is one examination attempt. Two variants exist: Scored rows
// produced by the scoring engine, and LegacyImported rows backfilled without
// detail. Consumers type-switch on the variant instead of null-checking
// optional fields.
type TestRecord interface {
	JuzNumber() int
	Passed() bool
	TestDate() time.Time
	isTestRecord()
}

// Scored is a fully graded attempt. Records are immutable once created; the
// administrative edit flow re-runs the scoring engine on new inputs and
// replaces the row wholesale.
type Scored struct {
	StudentID    uuid.UUID
	Juz          int
	HizbScope    bool
	HizbIndex    int // 1 or 2 when HizbScope
	Mode         scoring.TestMode
	Date         time.Time
	Pages        mushaf.Span
	Result       scoring.Result
	Examiner     string
	Remarks      string
	ShouldRepeat bool
}

func (r Scored) JuzNumber() int      { return r.Juz }
func (r Scored) Passed() bool        { return r.Result.Passed }
func (r Scored) TestDate() time.Time { return r.Date }
func (r Scored) isTestRecord()       {}

// DisplayHizbNumber returns the global 1-60 hizb ordinal for hizb-scope
// records. The second return is false for full-juz records.
func (r Scored) DisplayHizbNumber() (int, bool) {
	if !r.HizbScope {
		return 0, false
	}
	n, err := mushaf.GlobalHizbNumber(r.Juz, r.HizbIndex)
	if err != nil {
		return 0, false
	}
	return n, true
}

// LegacyImported is a backfilled attempt known only by its juz and verdict.
type LegacyImported struct {
	StudentID uuid.UUID
	Juz       int
	Date      time.Time
	Pass      bool
}

func (r LegacyImported) JuzNumber() int      { return r.Juz }
func (r LegacyImported) Passed() bool        { return r.Pass }
func (r LegacyImported) TestDate() time.Time { return r.Date }
func (r LegacyImported) isTestRecord()       {}
