package scoring

import (
	"errors"
	"fmt"
	"math"

	"github.com/abhisek/tahfiz/internal/mushaf"
)

var (
	// ErrUnknownQuestionKey reports a score payload whose category or
	// question keys do not match the table for the given mode and scope.
	ErrUnknownQuestionKey = errors.New("unknown question key")
	// ErrScoreOutOfRange reports a sub-score outside 0-5. Scores are never
	// clamped; a bad value is a data-entry error the examiner must fix.
	ErrScoreOutOfRange = errors.New("score out of range")
)

// RawScores is the mode-specific raw input to ScoreTest. Exactly two
// implementations exist: PMMMScores and NormalScores.
type RawScores interface {
	mode() TestMode
}

// PMMMScores holds the examiner-entered question scores per rubric category
// plus the tajweed and recitation add-ons.
type PMMMScores struct {
	Questions  map[Category][]int
	Tajweed    int
	Recitation int
}

func (PMMMScores) mode() TestMode { return ModePMMM }

// BlockScore is the raw entry for one timed reading block: two scored
// sub-dimensions plus non-scoring timing metadata.
type BlockScore struct {
	Fluency        int
	Recitation     int
	ElapsedSeconds int
	Extensions     int
	Pauses         int
}

// NormalScores holds the raw entries for a timed block-reading test. Pages
// is the test's page range; it is split contiguously across the blocks.
type NormalScores struct {
	Pages  mushaf.Span
	Blocks []BlockScore
}

func (NormalScores) mode() TestMode { return ModeNormal }

// Result is the computed outcome of one examination.
type Result struct {
	Breakdown  Breakdown
	Total      int
	Max        int
	Percentage int
	Passed     bool
}

// ScoreTest grades raw examiner input under the given mode and scope. It is
// pure: the same inputs always produce the same result, which is what the
// administrative edit-and-recompute flow relies on.
func ScoreTest(mode TestMode, scope mushaf.Scope, raw RawScores) (*Result, error) {
	if raw == nil {
		return nil, fmt.Errorf("no raw scores: %w", ErrUnknownQuestionKey)
	}
	if raw.mode() != mode {
		return nil, fmt.Errorf("%s scores submitted for a %s test: %w",
			raw.mode().DisplayName(), mode.DisplayName(), ErrUnknownQuestionKey)
	}

	switch in := raw.(type) {
	case PMMMScores:
		return scorePMMM(scope, in)
	case NormalScores:
		return scoreNormal(scope, in)
	default:
		return nil, fmt.Errorf("unsupported raw score type %T: %w", raw, ErrUnknownQuestionKey)
	}
}

func scorePMMM(scope mushaf.Scope, in PMMMScores) (*Result, error) {
	for c := range in.Questions {
		if _, ok := QuestionCount(c, scope); !ok {
			return nil, fmt.Errorf("category %q: %w", c, ErrUnknownQuestionKey)
		}
	}

	breakdown := &PMMMBreakdown{
		Tajweed:    in.Tajweed,
		Recitation: in.Recitation,
	}
	total := 0
	for _, c := range AllCategories() {
		want, _ := QuestionCount(c, scope)
		scores, ok := in.Questions[c]
		if !ok {
			return nil, fmt.Errorf("category %q missing: %w", c, ErrUnknownQuestionKey)
		}
		if len(scores) != want {
			return nil, fmt.Errorf("category %q has %d questions, want %d: %w",
				c, len(scores), want, ErrUnknownQuestionKey)
		}
		subtotal := 0
		for i, s := range scores {
			if s < 0 || s > MaxSubScore {
				return nil, fmt.Errorf("category %q question %d score %d: %w",
					c, i+1, s, ErrScoreOutOfRange)
			}
			subtotal += s
		}
		breakdown.Categories = append(breakdown.Categories, CategoryResult{
			Category: c,
			Scores:   append([]int(nil), scores...),
			Subtotal: subtotal,
			Max:      want * MaxSubScore,
		})
		total += subtotal
	}

	if in.Tajweed < 0 || in.Tajweed > MaxSubScore {
		return nil, fmt.Errorf("tajweed score %d: %w", in.Tajweed, ErrScoreOutOfRange)
	}
	if in.Recitation < 0 || in.Recitation > MaxSubScore {
		return nil, fmt.Errorf("recitation score %d: %w", in.Recitation, ErrScoreOutOfRange)
	}
	total += in.Tajweed + in.Recitation

	return finishResult(breakdown, total, PMMMMaxTotal(scope)), nil
}

func scoreNormal(scope mushaf.Scope, in NormalScores) (*Result, error) {
	want := NormalBlockCount(scope)
	if len(in.Blocks) != want {
		return nil, fmt.Errorf("%d blocks submitted, want %d for %s scope: %w",
			len(in.Blocks), want, scope.Label(), ErrUnknownQuestionKey)
	}

	spans := partitionSpan(in.Pages, want)
	breakdown := &NormalBreakdown{}
	total := 0
	for i, b := range in.Blocks {
		if b.Fluency < 0 || b.Fluency > MaxSubScore {
			return nil, fmt.Errorf("block %d fluency %d: %w", i+1, b.Fluency, ErrScoreOutOfRange)
		}
		if b.Recitation < 0 || b.Recitation > MaxSubScore {
			return nil, fmt.Errorf("block %d recitation %d: %w", i+1, b.Recitation, ErrScoreOutOfRange)
		}
		score := combineBlockScore(b.Fluency, b.Recitation)
		var pages mushaf.Span
		if i < len(spans) {
			pages = spans[i]
		}
		breakdown.Blocks = append(breakdown.Blocks, BlockResult{
			Block:          i + 1,
			Pages:          pages,
			Fluency:        b.Fluency,
			Recitation:     b.Recitation,
			Score:          score,
			ElapsedSeconds: b.ElapsedSeconds,
			Extensions:     b.Extensions,
			Pauses:         b.Pauses,
		})
		total += score
	}

	return finishResult(breakdown, total, want*MaxSubScore), nil
}

// combineBlockScore folds the two sub-dimensions of a reading block into a
// single 0-5 question score.
func combineBlockScore(fluency, recitation int) int {
	return int(math.Round(float64(fluency+recitation) / 2))
}

// partitionSpan splits a page span into n contiguous pieces; earlier pieces
// take the extra page when the width does not divide evenly. Spans narrower
// than n leave the trailing pieces without pages.
func partitionSpan(span mushaf.Span, n int) []mushaf.Span {
	if n <= 0 || span.Width() <= 0 {
		return nil
	}
	base := span.Width() / n
	rem := span.Width() % n
	out := make([]mushaf.Span, 0, n)
	start := span.Start
	for i := 0; i < n; i++ {
		width := base
		if i < rem {
			width++
		}
		if width == 0 {
			out = append(out, mushaf.Span{})
			continue
		}
		out = append(out, mushaf.Span{Start: start, End: start + width - 1})
		start += width
	}
	return out
}

func finishResult(breakdown Breakdown, total, max int) *Result {
	pct := Percentage(total, max)
	return &Result{
		Breakdown:  breakdown,
		Total:      total,
		Max:        max,
		Percentage: pct,
		Passed:     pct >= PassPercent,
	}
}

// Percentage computes the rounded percentage of total over max.
func Percentage(total, max int) int {
	if max <= 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(max) * 100))
}
