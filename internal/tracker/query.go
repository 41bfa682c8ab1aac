package tracker

import (
	"sort"

	"github.com/codetrack/codetrack/internal/catalog"
	"github.com/codetrack/codetrack/internal/progress"
)

// DueItem is a problem with at least one review due today.
type DueItem struct {
	Problem  catalog.Problem
	Progress progress.ProblemProgress
	Slots    []int // due review slots, 0-based
	Overdue  int   // days the oldest due slot is late
}

// Stats aggregates the named list for today.
func (t *Tracker) Stats(list string) progress.Stats {
	return progress.Aggregate(catalog.Problems(list), t.Snapshot().List(list), t.Today())
}

// Problems returns the list's catalog problems that pass f, in catalog order.
func (t *Tracker) Problems(list string, f progress.Filter) []catalog.Problem {
	return f.Apply(catalog.Problems(list), t.Snapshot().List(list), t.Today())
}

// DueProblems returns the list's due problems, most overdue first. Ties keep
// catalog order.
func (t *Tracker) DueProblems(list string) []DueItem {
	today := t.Today()
	entries := t.Snapshot().List(list)

	var out []DueItem
	for _, pr := range catalog.Problems(list) {
		pp, ok := entries[pr.ID]
		if !ok {
			continue
		}
		slots := progress.DueSlots(pp, today)
		if len(slots) == 0 {
			continue
		}
		out = append(out, DueItem{
			Problem:  pr,
			Progress: pp,
			Slots:    slots,
			Overdue:  progress.OverdueDays(pp, today),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Overdue > out[j].Overdue })
	return out
}

// Lists returns the list names the tracker keeps, in display order.
func (t *Tracker) Lists() []string {
	return append([]string(nil), t.lists...)
}
