package progress

import "cloud.google.com/go/civil"

// IsDue reports whether a solved problem has at least one incomplete review
// whose target date is today or earlier. Overdue reviews count as due.
func IsDue(p ProblemProgress, today civil.Date) bool {
	return len(DueSlots(p, today)) > 0
}

// DueSlots returns the indexes of incomplete review slots whose target date
// has arrived.
func DueSlots(p ProblemProgress, today civil.Date) []int {
	if !p.Solved {
		return nil
	}
	var slots []int
	for i, d := range ScheduleReviews(p.SolvedDate) {
		if !p.Reviews[i] && !d.After(today) {
			slots = append(slots, i)
		}
	}
	return slots
}

// NextReview returns the earliest incomplete review slot and its target
// date. ok is false when the problem is unsolved or all reviews are done.
func NextReview(p ProblemProgress) (slot int, date civil.Date, ok bool) {
	if !p.Solved {
		return 0, civil.Date{}, false
	}
	for i, d := range ScheduleReviews(p.SolvedDate) {
		if !p.Reviews[i] {
			return i, d, true
		}
	}
	return 0, civil.Date{}, false
}

// OverdueDays returns how many days the oldest due review is past its target
// date. Returns 0 if nothing is due or the review is due exactly today.
func OverdueDays(p ProblemProgress, today civil.Date) int {
	slots := DueSlots(p, today)
	if len(slots) == 0 {
		return 0
	}
	target := ScheduleReviews(p.SolvedDate)[slots[0]]
	return today.DaysSince(target)
}

// Completed reports whether all review slots of a solved problem are done.
func Completed(p ProblemProgress) bool {
	return p.Solved && p.CompletedReviews() == ReviewCount
}
