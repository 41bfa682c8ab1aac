package progress

import "sort"

// Store is an immutable snapshot of all progress: list name -> problem id ->
// ProblemProgress. Mutations return a new Store; untouched lists are shared
// between snapshots and never written to.
type Store struct {
	lists map[string]map[string]ProblemProgress
}

// DefaultStore returns an empty store with an empty map for each list name.
func DefaultStore(names []string) Store {
	lists := make(map[string]map[string]ProblemProgress, len(names))
	for _, n := range names {
		lists[n] = map[string]ProblemProgress{}
	}
	return Store{lists: lists}
}

// Get returns the progress of a problem, or DefaultProgress if the list or
// problem has no entry. The result is a copy.
func (s Store) Get(list, id string) ProblemProgress {
	if p, ok := s.lists[list][id]; ok {
		return p.Clone()
	}
	return DefaultProgress()
}

// List returns a copy of a list's entries. Unknown lists yield an empty map.
func (s Store) List(list string) map[string]ProblemProgress {
	src := s.lists[list]
	out := make(map[string]ProblemProgress, len(src))
	for id, p := range src {
		out[id] = p.Clone()
	}
	return out
}

// Lists returns the list names present in the store, sorted.
func (s Store) Lists() []string {
	names := make([]string, 0, len(s.lists))
	for n := range s.lists {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of stored problem entries across all lists.
func (s Store) Len() int {
	n := 0
	for _, l := range s.lists {
		n += len(l)
	}
	return n
}

// WithLists returns a store that has an (empty) entry for every name in
// names, keeping existing entries.
func (s Store) WithLists(names []string) Store {
	missing := false
	for _, n := range names {
		if _, ok := s.lists[n]; !ok {
			missing = true
			break
		}
	}
	if !missing {
		return s
	}
	lists := make(map[string]map[string]ProblemProgress, len(s.lists)+len(names))
	for k, v := range s.lists {
		lists[k] = v
	}
	for _, n := range names {
		if _, ok := lists[n]; !ok {
			lists[n] = map[string]ProblemProgress{}
		}
	}
	return Store{lists: lists}
}

// with returns a copy of s where list/id maps to p. Only the outer map and
// the touched list are copied.
func (s Store) with(list, id string, p ProblemProgress) Store {
	lists := make(map[string]map[string]ProblemProgress, len(s.lists)+1)
	for k, v := range s.lists {
		lists[k] = v
	}
	src := s.lists[list]
	lp := make(map[string]ProblemProgress, len(src)+1)
	for k, v := range src {
		lp[k] = v
	}
	lp[id] = p
	lists[list] = lp
	return Store{lists: lists}
}
