// Package remind sends a daily digest of due reviews.
package remind

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/codetrack/codetrack/internal/progress"
	"github.com/codetrack/codetrack/internal/tracker"
)

// ListDigest is the due summary of one list.
type ListDigest struct {
	List  string
	Stats progress.Stats
	Due   []tracker.DueItem
}

// Digest is the due summary across lists for one day.
type Digest struct {
	Date  civil.Date
	Lists []ListDigest
}

// BuildDigest collects today's due reviews from every list of t.
func BuildDigest(t *tracker.Tracker) Digest {
	d := Digest{Date: t.Today()}
	for _, list := range t.Lists() {
		d.Lists = append(d.Lists, ListDigest{
			List:  list,
			Stats: t.Stats(list),
			Due:   t.DueProblems(list),
		})
	}
	return d
}

// Only returns the digest restricted to one list.
func (d Digest) Only(list string) Digest {
	out := Digest{Date: d.Date}
	for _, l := range d.Lists {
		if l.List == list {
			out.Lists = append(out.Lists, l)
		}
	}
	return out
}

// Total returns the number of due problems across lists.
func (d Digest) Total() int {
	n := 0
	for _, l := range d.Lists {
		n += len(l.Due)
	}
	return n
}

// Text renders the digest as plain text.
func (d Digest) Text() string {
	var sb strings.Builder
	total := d.Total()
	if total == 0 {
		fmt.Fprintf(&sb, "%s: no reviews due. Nice work!\n", d.Date)
		return sb.String()
	}

	fmt.Fprintf(&sb, "%s: %d %s due for review\n", d.Date, total, plural(total, "problem", "problems"))
	for _, l := range d.Lists {
		if len(l.Due) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n%s (%d/%d solved)\n", l.List, l.Stats.Solved, l.Stats.Total)
		for _, item := range l.Due {
			fmt.Fprintf(&sb, "  - %s [%s] %s", item.Problem.Title, item.Problem.Difficulty, slotNames(item.Slots))
			if item.Overdue > 0 {
				fmt.Fprintf(&sb, ", %d %s overdue", item.Overdue, plural(item.Overdue, "day", "days"))
			}
			fmt.Fprintf(&sb, "\n    %s\n", item.Problem.URL())
		}
	}
	return sb.String()
}

func slotNames(slots []int) string {
	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = fmt.Sprintf("R%d", s+1)
	}
	return strings.Join(names, " ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
