package mushaf

import "fmt"

// Scope is the unit of text a test covers: a full juz or one of its two hizb.
type Scope int

const (
	ScopeJuz Scope = iota
	ScopeHizb
)

// Label returns the display label for a scope.
func (s Scope) Label() string {
	if s == ScopeHizb {
		return "Hizb"
	}
	return "Juz"
}

// HizbSpan returns the page range of one hizb of a juz. Each juz splits into
// two hizb: the first takes ceil(n/2) pages, the second the remainder.
func HizbSpan(juz, hizbIndex int) (Span, error) {
	span, err := JuzSpan(juz)
	if err != nil {
		return Span{}, err
	}
	if hizbIndex != 1 && hizbIndex != 2 {
		return Span{}, fmt.Errorf("hizb index %d: %w", hizbIndex, ErrOutOfRange)
	}
	firstWidth := (span.Width() + 1) / 2
	if hizbIndex == 1 {
		return Span{Start: span.Start, End: span.Start + firstWidth - 1}, nil
	}
	return Span{Start: span.Start + firstWidth, End: span.End}, nil
}

// GlobalHizbNumber returns the 1-60 ordinal of a hizb identified by its juz
// and hizb index.
func GlobalHizbNumber(juz, hizbIndex int) (int, error) {
	if juz < 1 || juz > JuzCount {
		return 0, fmt.Errorf("juz %d: %w", juz, ErrOutOfRange)
	}
	if hizbIndex != 1 && hizbIndex != 2 {
		return 0, fmt.Errorf("hizb index %d: %w", hizbIndex, ErrOutOfRange)
	}
	return (juz-1)*2 + hizbIndex, nil
}

// HizbForPage returns the global 1-60 ordinal of the hizb containing page.
func HizbForPage(page int) (int, error) {
	juz, err := JuzForPage(page)
	if err != nil {
		return 0, err
	}
	first, err := HizbSpan(juz, 1)
	if err != nil {
		return 0, err
	}
	if first.Contains(page) {
		return GlobalHizbNumber(juz, 1)
	}
	return GlobalHizbNumber(juz, 2)
}

// DefaultPageRange returns the page range a test covers by default: the full
// juz for ScopeJuz, or the selected half for ScopeHizb.
func DefaultPageRange(juz int, scope Scope, hizbIndex int) (Span, error) {
	if scope == ScopeHizb {
		return HizbSpan(juz, hizbIndex)
	}
	return JuzSpan(juz)
}
