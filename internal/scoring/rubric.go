package scoring

import "github.com/abhisek/tahfiz/internal/mushaf"

// Category is one of the seven PMMM rubric categories.
type Category string

const (
	CategoryMemorization       Category = "memorization"
	CategoryMiddleOfVerse      Category = "middle-of-verse"
	CategoryLastOfVerse        Category = "last-of-verse"
	CategoryReversalReading    Category = "reversal-reading"
	CategoryVersePosition      Category = "verse-position"
	CategoryVerseNumberReading Category = "verse-number-reading"
	CategoryVerseUnderstanding Category = "verse-understanding"
)

// AllCategories returns the rubric categories in grading order.
func AllCategories() []Category {
	return []Category{
		CategoryMemorization,
		CategoryMiddleOfVerse,
		CategoryLastOfVerse,
		CategoryReversalReading,
		CategoryVersePosition,
		CategoryVerseNumberReading,
		CategoryVerseUnderstanding,
	}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryMemorization:
		return "Memorization (repeat & continue)"
	case CategoryMiddleOfVerse:
		return "Middle of verse"
	case CategoryLastOfVerse:
		return "Last of verse"
	case CategoryReversalReading:
		return "Reversal reading"
	case CategoryVersePosition:
		return "Verse position"
	case CategoryVerseNumberReading:
		return "Verse-number reading"
	case CategoryVerseUnderstanding:
		return "Verse understanding"
	default:
		return string(c)
	}
}

const (
	// MaxSubScore is the ceiling for every examiner-entered sub-score.
	MaxSubScore = 5
	// ExtraMax is the combined ceiling of the tajweed and recitation
	// add-ons in PMMM mode. It does not scale with scope.
	ExtraMax = 10
	// PassPercent is the pass line for both modes.
	PassPercent = 60
)

// fullJuzQuestions and hizbQuestions fix how many questions each category
// carries per scope. Full-juz totals 21 questions, hizb 11.
var fullJuzQuestions = map[Category]int{
	CategoryMemorization:       5,
	CategoryMiddleOfVerse:      2,
	CategoryLastOfVerse:        2,
	CategoryReversalReading:    3,
	CategoryVersePosition:      3,
	CategoryVerseNumberReading: 3,
	CategoryVerseUnderstanding: 3,
}

var hizbQuestions = map[Category]int{
	CategoryMemorization:       3,
	CategoryMiddleOfVerse:      1,
	CategoryLastOfVerse:        1,
	CategoryReversalReading:    2,
	CategoryVersePosition:      2,
	CategoryVerseNumberReading: 1,
	CategoryVerseUnderstanding: 1,
}

// QuestionCount returns the number of questions a category carries for a
// scope. The second return is false for categories outside the rubric.
func QuestionCount(c Category, scope mushaf.Scope) (int, bool) {
	if scope == mushaf.ScopeHizb {
		n, ok := hizbQuestions[c]
		return n, ok
	}
	n, ok := fullJuzQuestions[c]
	return n, ok
}

// PMMMMaxTotal returns the grand maximum for a PMMM test of the given scope:
// the category maxima plus the tajweed/recitation add-on (115 full-juz, 65 hizb).
func PMMMMaxTotal(scope mushaf.Scope) int {
	total := ExtraMax
	for _, c := range AllCategories() {
		n, _ := QuestionCount(c, scope)
		total += n * MaxSubScore
	}
	return total
}

// NormalBlockCount returns how many contiguous reading blocks a normal-mode
// test of the given scope is partitioned into.
func NormalBlockCount(scope mushaf.Scope) int {
	if scope == mushaf.ScopeHizb {
		return 3
	}
	return 5
}
