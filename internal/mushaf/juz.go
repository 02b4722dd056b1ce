package mushaf

import (
	"errors"
	"fmt"
)

// Page bounds of the standard 604-page mushaf.
const (
	FirstPage = 1
	LastPage  = 604
	JuzCount  = 30
	HizbCount = 60
)

var (
	// ErrOutOfRange reports a page, juz ordinal, or hizb index outside its
	// valid bounds.
	ErrOutOfRange = errors.New("out of range")
	// ErrCrossesJuzBoundary reports a page range spanning more than one juz
	// where a single-juz scope is required.
	ErrCrossesJuzBoundary = errors.New("page range crosses a juz boundary")
)

// Span is an inclusive page range.
type Span struct {
	Start int
	End   int
}

// Width returns the number of pages in the span.
func (s Span) Width() int {
	return s.End - s.Start + 1
}

// Contains reports whether page lies inside the span.
func (s Span) Contains(page int) bool {
	return page >= s.Start && page <= s.End
}

// ContainsSpan reports whether other lies entirely inside the span.
func (s Span) ContainsSpan(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// juzSpans holds the page range of each juz, indexed by ordinal-1.
// Juz 1-28 are 21 pages wide; juz 29 has 11 pages and juz 30 has 5,
// together covering pages 1-604 exactly.
var juzSpans = [JuzCount]Span{
	{1, 21},
	{22, 42},
	{43, 63},
	{64, 84},
	{85, 105},
	{106, 126},
	{127, 147},
	{148, 168},
	{169, 189},
	{190, 210},
	{211, 231},
	{232, 252},
	{253, 273},
	{274, 294},
	{295, 315},
	{316, 336},
	{337, 357},
	{358, 378},
	{379, 399},
	{400, 420},
	{421, 441},
	{442, 462},
	{463, 483},
	{484, 504},
	{505, 525},
	{526, 546},
	{547, 567},
	{568, 588},
	{589, 599},
	{600, 604},
}

// JuzSpan returns the page range of a juz.
func JuzSpan(juz int) (Span, error) {
	if juz < 1 || juz > JuzCount {
		return Span{}, fmt.Errorf("juz %d: %w", juz, ErrOutOfRange)
	}
	return juzSpans[juz-1], nil
}

// JuzWidth returns the number of pages in a juz.
func JuzWidth(juz int) (int, error) {
	span, err := JuzSpan(juz)
	if err != nil {
		return 0, err
	}
	return span.Width(), nil
}

// JuzForPage returns the ordinal of the juz containing page.
func JuzForPage(page int) (int, error) {
	if page < FirstPage || page > LastPage {
		return 0, fmt.Errorf("page %d: %w", page, ErrOutOfRange)
	}
	// Binary search over the span table.
	lo, hi := 0, JuzCount-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case page < juzSpans[mid].Start:
			hi = mid - 1
		case page > juzSpans[mid].End:
			lo = mid + 1
		default:
			return mid + 1, nil
		}
	}
	return 0, fmt.Errorf("page %d: %w", page, ErrOutOfRange)
}

// JuzForPageRange returns the juz containing both endpoints of a page range.
// Ranges spanning more than one juz fail with ErrCrossesJuzBoundary; call
// sites that only display a juz number should use DisplayJuzForRange instead.
func JuzForPageRange(from, to int) (int, error) {
	fromJuz, err := JuzForPage(from)
	if err != nil {
		return 0, err
	}
	toJuz, err := JuzForPage(to)
	if err != nil {
		return 0, err
	}
	if fromJuz != toJuz {
		return 0, fmt.Errorf("pages %d-%d span juz %d-%d: %w", from, to, fromJuz, toJuz, ErrCrossesJuzBoundary)
	}
	return fromJuz, nil
}

// DisplayJuzForRange returns the juz of the range's end page. Boundary-crossing
// ranges resolve to the end page's juz; this asymmetric rule exists for
// display-only call sites and must never feed scoring.
func DisplayJuzForRange(from, to int) (int, error) {
	if _, err := JuzForPage(from); err != nil {
		return 0, err
	}
	return JuzForPage(to)
}

// PageWithinJuz returns the 1-based offset of page inside its juz.
func PageWithinJuz(page int) (int, error) {
	juz, err := JuzForPage(page)
	if err != nil {
		return 0, err
	}
	return page - juzSpans[juz-1].Start + 1, nil
}

// PagesInSameJuz reports whether two pages fall in the same juz.
func PagesInSameJuz(a, b int) (bool, error) {
	juzA, err := JuzForPage(a)
	if err != nil {
		return false, err
	}
	juzB, err := JuzForPage(b)
	if err != nil {
		return false, err
	}
	return juzA == juzB, nil
}
