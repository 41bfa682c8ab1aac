package catalog

import (
	"errors"
	"fmt"
)

// Built-in list names.
const (
	Blind75     = "Blind 75"
	LeetCode75  = "LeetCode 75"
	NeetCode150 = "NeetCode 150"
)

var (
	ErrUnknownList    = errors.New("unknown problem list")
	ErrUnknownProblem = errors.New("unknown problem")
)

// List is a named, ordered problem list.
type List struct {
	Name     string
	Roadmap  string
	Problems []Problem
}

type catalog struct {
	lists  []List
	byName map[string]int
	index  map[string]map[string]int
}

// c is the package-level catalog, built and validated by init().
var c *catalog

func init() {
	lists := []List{
		{Name: Blind75, Roadmap: "https://leetcode.com/problem-list/oizxjoit/", Problems: blind75Seed},
		{Name: LeetCode75, Roadmap: "https://leetcode.com/studyplan/leetcode-75/", Problems: leetcode75Seed},
		{Name: NeetCode150, Roadmap: "https://neetcode.io/roadmap", Problems: neetcode150Seed},
	}
	if err := validateLists(lists); err != nil {
		panic(err)
	}
	c = buildCatalog(lists)
}

func buildCatalog(lists []List) *catalog {
	cat := &catalog{
		lists:  lists,
		byName: make(map[string]int, len(lists)),
		index:  make(map[string]map[string]int, len(lists)),
	}
	for i, l := range lists {
		cat.byName[l.Name] = i
		idx := make(map[string]int, len(l.Problems))
		for j, pr := range l.Problems {
			idx[pr.ID] = j
		}
		cat.index[l.Name] = idx
	}
	return cat
}

// Names returns the built-in list names in display order.
func Names() []string {
	names := make([]string, len(c.lists))
	for i, l := range c.lists {
		names[i] = l.Name
	}
	return names
}

// Has reports whether name is a built-in list.
func Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Get returns a copy of the named list.
func Get(name string) (List, error) {
	i, ok := c.byName[name]
	if !ok {
		return List{}, fmt.Errorf("%w: %q", ErrUnknownList, name)
	}
	l := c.lists[i]
	out := List{Name: l.Name, Roadmap: l.Roadmap, Problems: make([]Problem, len(l.Problems))}
	for j, pr := range l.Problems {
		out.Problems[j] = pr.clone()
	}
	return out, nil
}

// Problems returns the problems of the named list, or nil for an unknown list.
func Problems(name string) []Problem {
	l, err := Get(name)
	if err != nil {
		return nil
	}
	return l.Problems
}

// Lookup finds a problem by id within a list.
func Lookup(list, id string) (Problem, error) {
	idx, ok := c.index[list]
	if !ok {
		return Problem{}, fmt.Errorf("%w: %q", ErrUnknownList, list)
	}
	j, ok := idx[id]
	if !ok {
		return Problem{}, fmt.Errorf("%w: %q in %s", ErrUnknownProblem, id, list)
	}
	return c.lists[c.byName[list]].Problems[j].clone(), nil
}

// Roadmap returns the official roadmap link for a list, or "" if unknown.
func Roadmap(name string) string {
	i, ok := c.byName[name]
	if !ok {
		return ""
	}
	return c.lists[i].Roadmap
}

// Categories returns the distinct topics of problems in first-seen order.
func Categories(problems []Problem) []string {
	seen := make(map[string]bool)
	var out []string
	for _, pr := range problems {
		for _, t := range pr.Topics {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}
