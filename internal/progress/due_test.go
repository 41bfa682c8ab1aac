package progress

import (
	"testing"
	"time"
)

func solvedOn(d int) ProblemProgress {
	p := DefaultProgress()
	p.Solved = true
	p.SolvedDate = date(2024, time.January, d)
	p.Dates[LabelInitial] = p.SolvedDate
	return p
}

func TestIsDue_Unsolved(t *testing.T) {
	p := DefaultProgress()
	p.SolvedDate = date(2020, time.January, 1)
	p.Dates[LabelInitial] = p.SolvedDate
	if IsDue(p, date(2024, time.January, 1)) {
		t.Error("unsolved problem must never be due")
	}
}

func TestIsDue_TwoSumScenario(t *testing.T) {
	p := solvedOn(1)
	if !IsDue(p, date(2024, time.January, 9)) {
		t.Error("expected due on 2024-01-09 with no reviews done")
	}
	slots := DueSlots(p, date(2024, time.January, 9))
	if len(slots) != 3 {
		t.Errorf("DueSlots() = %v, want first three slots", slots)
	}
}

func TestIsDue_BeforeFirstTarget(t *testing.T) {
	p := solvedOn(1)
	if IsDue(p, date(2024, time.January, 1)) {
		t.Error("expected not due on the solved date")
	}
}

func TestIsDue_OnTarget(t *testing.T) {
	p := solvedOn(1)
	if !IsDue(p, date(2024, time.January, 2)) {
		t.Error("expected due on the target date")
	}
}

func TestIsDue_CompletedSlotsDoNotCount(t *testing.T) {
	p := solvedOn(1)
	p.Reviews[0] = true
	p.Reviews[1] = true
	if IsDue(p, date(2024, time.January, 5)) {
		t.Error("expected not due once passed slots are complete")
	}
	if !IsDue(p, date(2024, time.January, 8)) {
		t.Error("expected due when the third target arrives")
	}
}

func TestIsDue_AllComplete(t *testing.T) {
	p := solvedOn(1)
	p.Reviews = [ReviewCount]bool{true, true, true, true, true}
	if IsDue(p, date(2025, time.January, 1)) {
		t.Error("expected not due with all reviews complete")
	}
	if !Completed(p) {
		t.Error("expected Completed() true")
	}
}

func TestIsDue_FutureSolvedDate(t *testing.T) {
	p := solvedOn(20)
	if IsDue(p, date(2024, time.January, 10)) {
		t.Error("future solved date should not be due before its first target")
	}
}

func TestNextReview(t *testing.T) {
	p := solvedOn(1)
	p.Reviews[0] = true
	slot, d, ok := NextReview(p)
	if !ok || slot != 1 || d.String() != "2024-01-04" {
		t.Errorf("NextReview() = %d, %s, %v; want 1, 2024-01-04, true", slot, d, ok)
	}

	if _, _, ok := NextReview(DefaultProgress()); ok {
		t.Error("expected no next review for unsolved problem")
	}
}

func TestOverdueDays(t *testing.T) {
	p := solvedOn(1)
	tests := []struct {
		day  int
		want int
	}{
		{1, 0},
		{2, 0},
		{5, 3},
		{9, 7},
	}
	for _, tt := range tests {
		got := OverdueDays(p, date(2024, time.January, tt.day))
		if got != tt.want {
			t.Errorf("OverdueDays(Jan %d) = %d, want %d", tt.day, got, tt.want)
		}
	}
}
