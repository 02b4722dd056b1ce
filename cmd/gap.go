package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/tahfiz/internal/progress"
	"github.com/abhisek/tahfiz/internal/record"
	"github.com/abhisek/tahfiz/internal/report"
	"github.com/abhisek/tahfiz/internal/scoring"
)

// progressPayload is the read-side input: memorization summary plus the
// stored test history, ordered by date.
type progressPayload struct {
	StudentID     uuid.UUID          `json:"student_id"`
	CompletedJuz  []int              `json:"completed_juz"`
	InProgressJuz int                `json:"in_progress_juz"`
	Tests         []testHistoryEntry `json:"tests"`
}

type testHistoryEntry struct {
	JuzNumber    int       `json:"juz_number"`
	Passed       bool      `json:"passed"`
	Percentage   int       `json:"percentage"`
	TestDate     time.Time `json:"test_date"`
	ExaminerName string    `json:"examiner_name"`
}

// asRecord maps a stored history row onto the right record variant: rows
// marked "Historical Entry" are backfilled and carry only a verdict.
func (e testHistoryEntry) asRecord(studentID uuid.UUID) record.TestRecord {
	if record.IsLegacyExaminer(e.ExaminerName) {
		return record.LegacyImported{
			StudentID: studentID,
			Juz:       e.JuzNumber,
			Date:      e.TestDate,
			Pass:      e.Passed,
		}
	}
	return record.Scored{
		StudentID: studentID,
		Juz:       e.JuzNumber,
		Date:      e.TestDate,
		Examiner:  e.ExaminerName,
		Result: scoring.Result{
			Percentage: e.Percentage,
			Passed:     e.Passed,
		},
	}
}

var gapCmd = &cobra.Command{
	Use:   "gap <progress.json>",
	Short: "Compute the memorization/testing gap and next recommendation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read progress payload: %w", err)
		}

		var payload progressPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return fmt.Errorf("decode progress payload: %w", err)
		}

		history := make([]record.TestRecord, len(payload.Tests))
		for i, e := range payload.Tests {
			history[i] = e.asRecord(payload.StudentID)
		}

		rep := progress.Compute(progress.MemorizationRecord{
			CompletedJuz:  payload.CompletedJuz,
			InProgressJuz: payload.InProgressJuz,
		}, history)

		fmt.Print(report.RenderGap(rep))
		if len(history) > 0 {
			fmt.Println("\nHistory:")
			for _, r := range history {
				fmt.Println("  " + report.RenderRecordLine(r))
			}
		}
		return nil
	},
}
