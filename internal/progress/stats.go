package progress

import (
	"cloud.google.com/go/civil"

	"github.com/codetrack/codetrack/internal/catalog"
)

// Stats summarises a list's progress.
type Stats struct {
	Total    int
	Solved   int
	Easy     int // solved Easy problems
	Medium   int // solved Medium problems
	Hard     int // solved Hard problems
	DueToday int
}

// Aggregate counts progress over the problems of one list. Entries in list
// for problems not in problems are ignored.
func Aggregate(problems []catalog.Problem, list map[string]ProblemProgress, today civil.Date) Stats {
	st := Stats{Total: len(problems)}
	for _, pr := range problems {
		p, ok := list[pr.ID]
		if !ok {
			continue
		}
		if p.Solved {
			st.Solved++
			switch pr.Difficulty {
			case catalog.Easy:
				st.Easy++
			case catalog.Medium:
				st.Medium++
			case catalog.Hard:
				st.Hard++
			}
		}
		if IsDue(p, today) {
			st.DueToday++
		}
	}
	return st
}

// SolvedPercent returns Solved/Total in [0, 1].
func (s Stats) SolvedPercent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Solved) / float64(s.Total)
}

// SolvedBy returns the solved count for a difficulty.
func (s Stats) SolvedBy(d catalog.Difficulty) int {
	switch d {
	case catalog.Easy:
		return s.Easy
	case catalog.Medium:
		return s.Medium
	case catalog.Hard:
		return s.Hard
	default:
		return 0
	}
}

// DifficultyTotals counts problems per difficulty.
func DifficultyTotals(problems []catalog.Problem) map[catalog.Difficulty]int {
	out := make(map[catalog.Difficulty]int, 3)
	for _, pr := range problems {
		out[pr.Difficulty]++
	}
	return out
}
