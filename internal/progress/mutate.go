package progress

import (
	"errors"
	"fmt"

	"cloud.google.com/go/civil"
)

// ErrReviewIndex is returned for a review slot outside [0, ReviewCount).
var ErrReviewIndex = errors.New("review index out of range")

// ToggleSolved flips the solved flag of a problem.
//
// Marking solved records today as the solved date and as dates.initial and
// starts all five reviews from scratch. Marking unsolved clears the reviews,
// the dates and the solved date.
func ToggleSolved(s Store, list, id string, today civil.Date) Store {
	cur := s.Get(list, id)
	next := DefaultProgress()
	if !cur.Solved {
		next.Solved = true
		next.SolvedDate = today
		next.Dates[LabelInitial] = today
	}
	return s.with(list, id, next)
}

// ToggleReview flips review slot idx of a problem, recording today under
// "review{idx+1}" when it becomes complete and removing that label when it
// becomes incomplete. Solved state is left alone.
func ToggleReview(s Store, list, id string, idx int, today civil.Date) (Store, error) {
	if idx < 0 || idx >= ReviewCount {
		return s, fmt.Errorf("%w: %d", ErrReviewIndex, idx)
	}
	next := s.Get(list, id)
	next.Reviews[idx] = !next.Reviews[idx]
	if next.Reviews[idx] {
		next.Dates[ReviewLabel(idx)] = today
	} else {
		delete(next.Dates, ReviewLabel(idx))
	}
	return s.with(list, id, next), nil
}
