// Package submission is the entry boundary of the engine: it decodes and
// validates a raw examination payload, then runs the scoring engine and
// produces the immutable test record the storage collaborator persists.
// The administrative edit flow is the same pipeline run again on edited
// inputs; identical inputs always produce identical records.
package submission

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/abhisek/tahfiz/internal/mushaf"
	"github.com/abhisek/tahfiz/internal/record"
	"github.com/abhisek/tahfiz/internal/scoring"
)

var validate = validator.New()

// Submission is the raw payload a request handler passes in.
type Submission struct {
	StudentID       uuid.UUID        `json:"student_id" validate:"required"`
	JuzNumber       int              `json:"juz_number" validate:"min=1,max=30"`
	IsHizbScope     bool             `json:"is_hizb_scope"`
	HizbIndex       int              `json:"hizb_index" validate:"omitempty,min=1,max=2"`
	TestMode        string           `json:"test_mode"`
	TestDate        time.Time        `json:"test_date"`
	PageFrom        int              `json:"page_from" validate:"omitempty,min=1,max=604"`
	PageTo          int              `json:"page_to" validate:"omitempty,min=1,max=604,gtefield=PageFrom"`
	CategoryScores  map[string][]int `json:"category_scores,omitempty"`
	Blocks          []BlockEntry     `json:"blocks,omitempty"`
	TajweedScore    int              `json:"tajweed_score" validate:"min=0,max=5"`
	RecitationScore int              `json:"recitation_score" validate:"min=0,max=5"`
	ExaminerName    string           `json:"examiner_name" validate:"required"`
	Remarks         string           `json:"remarks"`
	ShouldRepeat    bool             `json:"should_repeat"`
}

// BlockEntry is one timed reading block of a normal-mode submission.
type BlockEntry struct {
	Fluency        int `json:"fluency" validate:"min=0,max=5"`
	Recitation     int `json:"recitation" validate:"min=0,max=5"`
	ElapsedSeconds int `json:"elapsed_seconds" validate:"min=0"`
	Extensions     int `json:"extensions" validate:"min=0"`
	Pauses         int `json:"pauses" validate:"min=0"`
}

// Decode checks raw payload bytes against the submission schema and
// unmarshals them. Decode does not validate field values; call Validate next.
func Decode(raw []byte) (*Submission, error) {
	if err := validateShape(raw); err != nil {
		return nil, err
	}
	var s Submission
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode submission: %w", err)
	}
	return &s, nil
}

// Scope returns the submission's test scope.
func (s *Submission) Scope() mushaf.Scope {
	if s.IsHizbScope {
		return mushaf.ScopeHizb
	}
	return mushaf.ScopeJuz
}

// Mode returns the normalized test mode.
func (s *Submission) Mode() scoring.TestMode {
	return scoring.NormalizeMode(s.TestMode)
}

// Validate checks field ranges (struct tags) and the cross-field page-range
// invariant: the range must lie inside the tested juz, and for hizb scope
// inside the selected hizb half.
func (s *Submission) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid submission: %w", err)
	}
	if s.IsHizbScope && s.HizbIndex == 0 {
		return fmt.Errorf("hizb scope without hizb index: %w", mushaf.ErrOutOfRange)
	}

	// Pages are optional on the payload; default to the scope's range.
	if s.PageFrom == 0 && s.PageTo == 0 {
		return nil
	}

	if _, err := mushaf.JuzForPageRange(s.PageFrom, s.PageTo); err != nil {
		return err
	}
	want, err := mushaf.DefaultPageRange(s.JuzNumber, s.Scope(), s.HizbIndex)
	if err != nil {
		return err
	}
	if !want.ContainsSpan(mushaf.Span{Start: s.PageFrom, End: s.PageTo}) {
		return fmt.Errorf("pages %d-%d outside %s range %d-%d: %w",
			s.PageFrom, s.PageTo, s.Scope().Label(), want.Start, want.End, mushaf.ErrOutOfRange)
	}
	return nil
}

// Pages returns the submitted page range, falling back to the scope's
// default range when the payload omits pages.
func (s *Submission) Pages() (mushaf.Span, error) {
	if s.PageFrom == 0 && s.PageTo == 0 {
		return mushaf.DefaultPageRange(s.JuzNumber, s.Scope(), s.HizbIndex)
	}
	return mushaf.Span{Start: s.PageFrom, End: s.PageTo}, nil
}

// Score validates the submission, grades it, and builds the test record.
func (s *Submission) Score() (*record.Scored, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	pages, err := s.Pages()
	if err != nil {
		return nil, err
	}

	mode := s.Mode()
	var raw scoring.RawScores
	switch mode {
	case scoring.ModeNormal:
		blocks := make([]scoring.BlockScore, len(s.Blocks))
		for i, b := range s.Blocks {
			blocks[i] = scoring.BlockScore{
				Fluency:        b.Fluency,
				Recitation:     b.Recitation,
				ElapsedSeconds: b.ElapsedSeconds,
				Extensions:     b.Extensions,
				Pauses:         b.Pauses,
			}
		}
		raw = scoring.NormalScores{Pages: pages, Blocks: blocks}
	default:
		questions := make(map[scoring.Category][]int, len(s.CategoryScores))
		for key, scores := range s.CategoryScores {
			questions[scoring.Category(key)] = scores
		}
		raw = scoring.PMMMScores{
			Questions:  questions,
			Tajweed:    s.TajweedScore,
			Recitation: s.RecitationScore,
		}
	}

	result, err := scoring.ScoreTest(mode, s.Scope(), raw)
	if err != nil {
		return nil, err
	}

	return &record.Scored{
		StudentID:    s.StudentID,
		Juz:          s.JuzNumber,
		HizbScope:    s.IsHizbScope,
		HizbIndex:    s.HizbIndex,
		Mode:         mode,
		Date:         s.TestDate,
		Pages:        pages,
		Result:       *result,
		Examiner:     s.ExaminerName,
		Remarks:      s.Remarks,
		ShouldRepeat: s.ShouldRepeat,
	}, nil
}
