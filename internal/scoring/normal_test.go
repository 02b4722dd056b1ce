package scoring

import (
	"errors"
	"testing"

	"github.com/abhisek/tahfiz/internal/mushaf"
)

func TestScoreTest_NormalFullJuz(t *testing.T) {
	blocks := make([]BlockScore, 5)
	for i := range blocks {
		blocks[i] = BlockScore{Fluency: 5, Recitation: 5, ElapsedSeconds: 240}
	}

	res, err := ScoreTest(ModeNormal, mushaf.ScopeJuz, NormalScores{
		Pages:  mushaf.Span{Start: 85, End: 105},
		Blocks: blocks,
	})
	if err != nil {
		t.Fatalf("ScoreTest error: %v", err)
	}

	if res.Total != 25 || res.Max != 25 {
		t.Errorf("Total/Max = %d/%d, want 25/25", res.Total, res.Max)
	}
	if res.Percentage != 100 || !res.Passed {
		t.Errorf("Percentage/Passed = %d/%v, want 100/true", res.Percentage, res.Passed)
	}

	bd, ok := res.Breakdown.(*NormalBreakdown)
	if !ok {
		t.Fatalf("Breakdown type = %T, want *NormalBreakdown", res.Breakdown)
	}
	if len(bd.Blocks) != 5 {
		t.Fatalf("breakdown has %d blocks, want 5", len(bd.Blocks))
	}
	// 21 pages over 5 blocks: 5,4,4,4,4 starting at page 85.
	if bd.Blocks[0].Pages != (mushaf.Span{Start: 85, End: 89}) {
		t.Errorf("block 1 pages = %+v, want {85 89}", bd.Blocks[0].Pages)
	}
	if bd.Blocks[4].Pages != (mushaf.Span{Start: 102, End: 105}) {
		t.Errorf("block 5 pages = %+v, want {102 105}", bd.Blocks[4].Pages)
	}
	if bd.Blocks[0].ElapsedSeconds != 240 {
		t.Errorf("block 1 elapsed = %d, want 240", bd.Blocks[0].ElapsedSeconds)
	}
}

func TestScoreTest_NormalPassBoundary(t *testing.T) {
	// Hizb scope: 3 blocks, max 15. 9/15 = 60% → pass; 8/15 = 53% → fail.
	res, err := ScoreTest(ModeNormal, mushaf.ScopeHizb, NormalScores{
		Pages: mushaf.Span{Start: 190, End: 200},
		Blocks: []BlockScore{
			{Fluency: 3, Recitation: 3},
			{Fluency: 3, Recitation: 3},
			{Fluency: 3, Recitation: 3},
		},
	})
	if err != nil {
		t.Fatalf("ScoreTest error: %v", err)
	}
	if res.Total != 9 || res.Percentage != 60 || !res.Passed {
		t.Errorf("9/15: got total=%d pct=%d passed=%v, want 9/60/true",
			res.Total, res.Percentage, res.Passed)
	}

	res, err = ScoreTest(ModeNormal, mushaf.ScopeHizb, NormalScores{
		Pages: mushaf.Span{Start: 190, End: 200},
		Blocks: []BlockScore{
			{Fluency: 3, Recitation: 3},
			{Fluency: 3, Recitation: 3},
			{Fluency: 2, Recitation: 2},
		},
	})
	if err != nil {
		t.Fatalf("ScoreTest error: %v", err)
	}
	if res.Total != 8 || res.Percentage != 53 || res.Passed {
		t.Errorf("8/15: got total=%d pct=%d passed=%v, want 8/53/false",
			res.Total, res.Percentage, res.Passed)
	}
}

func TestScoreTest_NormalBlockCombination(t *testing.T) {
	tests := []struct {
		fluency, recitation int
		want                int
	}{
		{5, 5, 5},
		{0, 0, 0},
		{3, 2, 3}, // 2.5 rounds up
		{4, 1, 3}, // 2.5 rounds up
		{2, 1, 2}, // 1.5 rounds up
		{5, 0, 3},
		{4, 4, 4},
	}

	for _, tt := range tests {
		got := combineBlockScore(tt.fluency, tt.recitation)
		if got != tt.want {
			t.Errorf("combineBlockScore(%d, %d) = %d, want %d",
				tt.fluency, tt.recitation, got, tt.want)
		}
	}
}

func TestScoreTest_NormalWrongBlockCount(t *testing.T) {
	_, err := ScoreTest(ModeNormal, mushaf.ScopeJuz, NormalScores{
		Pages:  mushaf.Span{Start: 85, End: 105},
		Blocks: []BlockScore{{Fluency: 3, Recitation: 3}},
	})
	if !errors.Is(err, ErrUnknownQuestionKey) {
		t.Errorf("error = %v, want ErrUnknownQuestionKey", err)
	}
}

func TestScoreTest_NormalScoreOutOfRange(t *testing.T) {
	blocks := []BlockScore{
		{Fluency: 3, Recitation: 3},
		{Fluency: 7, Recitation: 3},
		{Fluency: 3, Recitation: 3},
	}
	_, err := ScoreTest(ModeNormal, mushaf.ScopeHizb, NormalScores{
		Pages:  mushaf.Span{Start: 190, End: 200},
		Blocks: blocks,
	})
	if !errors.Is(err, ErrScoreOutOfRange) {
		t.Errorf("error = %v, want ErrScoreOutOfRange", err)
	}
}

func TestPartitionSpan(t *testing.T) {
	spans := partitionSpan(mushaf.Span{Start: 1, End: 21}, 5)
	if len(spans) != 5 {
		t.Fatalf("got %d spans, want 5", len(spans))
	}
	total := 0
	next := 1
	for i, s := range spans {
		if s.Start != next {
			t.Errorf("span %d starts at %d, want %d", i, s.Start, next)
		}
		total += s.Width()
		next = s.End + 1
	}
	if total != 21 {
		t.Errorf("spans cover %d pages, want 21", total)
	}

	// Narrow span: juz 30 hizb 2 has 2 pages over 3 blocks.
	spans = partitionSpan(mushaf.Span{Start: 603, End: 604}, 3)
	if spans[0].Width() != 1 || spans[1].Width() != 1 {
		t.Errorf("narrow split widths = %d, %d, want 1, 1", spans[0].Width(), spans[1].Width())
	}
	if spans[2] != (mushaf.Span{}) {
		t.Errorf("trailing block pages = %+v, want empty", spans[2])
	}
}
