package scoring

import "github.com/abhisek/tahfiz/internal/mushaf"

// Breakdown is the mode-tagged score detail of a graded test. Exactly two
// implementations exist, one per TestMode, so consumers can type-switch
// exhaustively instead of probing optional fields.
type Breakdown interface {
	Mode() TestMode
	isBreakdown()
}

// CategoryResult is one rubric category's graded questions.
type CategoryResult struct {
	Category Category
	Scores   []int
	Subtotal int
	Max      int
}

// PMMMBreakdown is the category-rubric detail: all seven categories in
// grading order plus the tajweed and recitation add-ons.
type PMMMBreakdown struct {
	Categories []CategoryResult
	Tajweed    int
	Recitation int
}

func (*PMMMBreakdown) Mode() TestMode { return ModePMMM }
func (*PMMMBreakdown) isBreakdown()   {}

// BlockResult is one timed reading block. Elapsed seconds, extensions, and
// pauses are audit metadata and never affect the score.
type BlockResult struct {
	Block          int
	Pages          mushaf.Span
	Fluency        int
	Recitation     int
	Score          int
	ElapsedSeconds int
	Extensions     int
	Pauses         int
}

// NormalBreakdown is the timed block-reading detail.
type NormalBreakdown struct {
	Blocks []BlockResult
}

func (*NormalBreakdown) Mode() TestMode { return ModeNormal }
func (*NormalBreakdown) isBreakdown()   {}
