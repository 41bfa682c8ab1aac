package progress

import (
	"time"

	"cloud.google.com/go/civil"
)

// ReviewCount is the number of review slots per solved problem.
const ReviewCount = 5

// ReviewIntervals are the day offsets from the solved date of each review slot.
var ReviewIntervals = [ReviewCount]int{1, 3, 7, 14, 30}

// ScheduleReviews returns the target date of every review slot for a problem
// solved on solvedDate, in slot order. A zero solvedDate yields nil.
func ScheduleReviews(solvedDate civil.Date) []civil.Date {
	if solvedDate.IsZero() {
		return nil
	}
	out := make([]civil.Date, ReviewCount)
	for i, days := range ReviewIntervals {
		out[i] = solvedDate.AddDays(days)
	}
	return out
}

// Today returns the calendar date of now in now's location.
func Today(now time.Time) civil.Date {
	return civil.DateOf(now)
}
