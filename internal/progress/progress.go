package progress

import (
	"fmt"
	"maps"

	"cloud.google.com/go/civil"
)

// Date labels used in ProblemProgress.Dates.
const (
	LabelInitial = "initial"
)

// ReviewLabel returns the dates label of review slot i ("review1".."review5").
func ReviewLabel(i int) string {
	return fmt.Sprintf("review%d", i+1)
}

// ReviewEntry is one review slot as seen by callers.
type ReviewEntry struct {
	Completed     bool
	CompletedDate civil.Date // zero when not recorded
}

// ProblemProgress is the per-problem progress record.
//
// A zero civil.Date means "absent". Solved == false implies no completed
// reviews, no dates and a zero SolvedDate.
type ProblemProgress struct {
	Solved     bool
	SolvedDate civil.Date
	Reviews    [ReviewCount]bool
	Dates      map[string]civil.Date
}

// DefaultProgress returns the progress of a problem never touched: unsolved,
// all reviews incomplete, no dates.
func DefaultProgress() ProblemProgress {
	return ProblemProgress{Dates: make(map[string]civil.Date)}
}

// Clone returns a deep copy.
func (p ProblemProgress) Clone() ProblemProgress {
	out := p
	out.Dates = make(map[string]civil.Date, len(p.Dates))
	maps.Copy(out.Dates, p.Dates)
	return out
}

// Entries returns the five review slots in order.
func (p ProblemProgress) Entries() [ReviewCount]ReviewEntry {
	var out [ReviewCount]ReviewEntry
	for i := range out {
		out[i].Completed = p.Reviews[i]
		if p.Reviews[i] {
			out[i].CompletedDate = p.Dates[ReviewLabel(i)]
		}
	}
	return out
}

// CompletedReviews returns how many review slots are marked complete.
func (p ProblemProgress) CompletedReviews() int {
	n := 0
	for _, done := range p.Reviews {
		if done {
			n++
		}
	}
	return n
}

// normalized enforces the record invariants on data read from outside. A
// solved record whose solved date cannot be recovered from solvedDate or
// dates.initial is unusable; it comes back as the default and ok is false.
func (p ProblemProgress) normalized() (ProblemProgress, bool) {
	if !p.Solved {
		return DefaultProgress(), true
	}
	out := p.Clone()
	if out.SolvedDate.IsZero() {
		d, ok := out.Dates[LabelInitial]
		if !ok || d.IsZero() {
			return DefaultProgress(), false
		}
		out.SolvedDate = d
	}
	for i, done := range out.Reviews {
		if !done {
			delete(out.Dates, ReviewLabel(i))
		}
	}
	return out, true
}
