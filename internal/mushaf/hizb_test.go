package mushaf

import (
	"errors"
	"testing"
)

func TestHizbSpan_PartitionsEveryJuz(t *testing.T) {
	for juz := 1; juz <= JuzCount; juz++ {
		span, err := JuzSpan(juz)
		if err != nil {
			t.Fatalf("JuzSpan(%d) error: %v", juz, err)
		}
		first, err := HizbSpan(juz, 1)
		if err != nil {
			t.Fatalf("HizbSpan(%d, 1) error: %v", juz, err)
		}
		second, err := HizbSpan(juz, 2)
		if err != nil {
			t.Fatalf("HizbSpan(%d, 2) error: %v", juz, err)
		}

		wantFirst := (span.Width() + 1) / 2
		if first.Width() != wantFirst {
			t.Errorf("juz %d first hizb width = %d, want %d", juz, first.Width(), wantFirst)
		}
		if first.Start != span.Start {
			t.Errorf("juz %d first hizb starts at %d, want %d", juz, first.Start, span.Start)
		}
		if second.Start != first.End+1 {
			t.Errorf("juz %d second hizb starts at %d, want %d", juz, second.Start, first.End+1)
		}
		if second.End != span.End {
			t.Errorf("juz %d second hizb ends at %d, want %d", juz, second.End, span.End)
		}
	}
}

func TestHizbSpan_UnevenJuz(t *testing.T) {
	// Juz 29 has 11 pages: 6 + 5.
	first, _ := HizbSpan(29, 1)
	second, _ := HizbSpan(29, 2)
	if first.Width() != 6 || second.Width() != 5 {
		t.Errorf("juz 29 hizb widths = %d + %d, want 6 + 5", first.Width(), second.Width())
	}

	// Juz 30 has 5 pages: 3 + 2.
	first, _ = HizbSpan(30, 1)
	second, _ = HizbSpan(30, 2)
	if first.Width() != 3 || second.Width() != 2 {
		t.Errorf("juz 30 hizb widths = %d + %d, want 3 + 2", first.Width(), second.Width())
	}
}

func TestHizbSpan_BadIndex(t *testing.T) {
	for _, idx := range []int{0, 3, -1} {
		if _, err := HizbSpan(1, idx); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("HizbSpan(1, %d) error = %v, want ErrOutOfRange", idx, err)
		}
	}
}

func TestGlobalHizbNumber(t *testing.T) {
	tests := []struct {
		juz, idx int
		want     int
	}{
		{1, 1, 1},
		{1, 2, 2},
		{10, 2, 20},
		{15, 1, 29},
		{30, 2, 60},
	}

	for _, tt := range tests {
		got, err := GlobalHizbNumber(tt.juz, tt.idx)
		if err != nil {
			t.Errorf("GlobalHizbNumber(%d, %d) error: %v", tt.juz, tt.idx, err)
			continue
		}
		if got != tt.want {
			t.Errorf("GlobalHizbNumber(%d, %d) = %d, want %d", tt.juz, tt.idx, got, tt.want)
		}
	}

	if _, err := GlobalHizbNumber(31, 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("GlobalHizbNumber(31, 1) error = %v, want ErrOutOfRange", err)
	}
}

func TestHizbForPage_CoversAllPages(t *testing.T) {
	prev := 0
	for page := FirstPage; page <= LastPage; page++ {
		h, err := HizbForPage(page)
		if err != nil {
			t.Fatalf("HizbForPage(%d) error: %v", page, err)
		}
		if h < 1 || h > HizbCount {
			t.Fatalf("HizbForPage(%d) = %d, want 1..%d", page, h, HizbCount)
		}
		if h < prev {
			t.Fatalf("HizbForPage(%d) = %d went backwards from %d", page, h, prev)
		}
		prev = h
	}
	if prev != HizbCount {
		t.Errorf("last page maps to hizb %d, want %d", prev, HizbCount)
	}
}

func TestDefaultPageRange(t *testing.T) {
	got, err := DefaultPageRange(5, ScopeJuz, 0)
	if err != nil {
		t.Fatalf("DefaultPageRange(5, ScopeJuz) error: %v", err)
	}
	if got != (Span{85, 105}) {
		t.Errorf("DefaultPageRange(5, ScopeJuz) = %+v, want {85 105}", got)
	}

	got, err = DefaultPageRange(10, ScopeHizb, 2)
	if err != nil {
		t.Fatalf("DefaultPageRange(10, ScopeHizb, 2) error: %v", err)
	}
	if got != (Span{201, 210}) {
		t.Errorf("DefaultPageRange(10, ScopeHizb, 2) = %+v, want {201 210}", got)
	}

	if _, err := DefaultPageRange(10, ScopeHizb, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("DefaultPageRange with hizb index 0 error = %v, want ErrOutOfRange", err)
	}
}

func TestScope_Label(t *testing.T) {
	if ScopeJuz.Label() != "Juz" {
		t.Errorf("ScopeJuz.Label() = %q, want Juz", ScopeJuz.Label())
	}
	if ScopeHizb.Label() != "Hizb" {
		t.Errorf("ScopeHizb.Label() = %q, want Hizb", ScopeHizb.Label())
	}
}
