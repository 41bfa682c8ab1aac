package progress

import (
	"strings"

	"cloud.google.com/go/civil"

	"github.com/codetrack/codetrack/internal/catalog"
)

// FilterAll is the "no restriction" value for Category and Difficulty.
const FilterAll = "All"

// Filter selects problems for display.
type Filter struct {
	Category   string             // topic, "" or FilterAll for any
	Difficulty catalog.Difficulty // "" or FilterAll for any
	DueOnly    bool
	Search     string // case-insensitive match on title or id
}

// Active reports whether the filter restricts anything.
func (f Filter) Active() bool {
	return !isAll(f.Category) || !isAll(string(f.Difficulty)) || f.DueOnly || strings.TrimSpace(f.Search) != ""
}

// Match reports whether pr passes the filter given its progress.
func (f Filter) Match(pr catalog.Problem, p ProblemProgress, today civil.Date) bool {
	if !isAll(f.Category) && !pr.HasTopic(f.Category) {
		return false
	}
	if !isAll(string(f.Difficulty)) && pr.Difficulty != f.Difficulty {
		return false
	}
	if f.DueOnly && !IsDue(p, today) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(pr.Title), q) && !strings.Contains(pr.ID, q) {
			return false
		}
	}
	return true
}

// Apply returns the problems that pass the filter, in catalog order.
func (f Filter) Apply(problems []catalog.Problem, list map[string]ProblemProgress, today civil.Date) []catalog.Problem {
	var out []catalog.Problem
	for _, pr := range problems {
		p, ok := list[pr.ID]
		if !ok {
			p = DefaultProgress()
		}
		if f.Match(pr, p, today) {
			out = append(out, pr)
		}
	}
	return out
}

func isAll(s string) bool {
	return s == "" || s == FilterAll
}
