package progress

import (
	"encoding/json"
	"fmt"

	"cloud.google.com/go/civil"
)

// StorageKey is the key the store is persisted under.
const StorageKey = "leetcode-progress-v2"

// problemJSON is the wire form of ProblemProgress.
type problemJSON struct {
	Solved     bool                  `json:"solved"`
	SolvedDate *string               `json:"solvedDate"`
	Reviews    [ReviewCount]bool     `json:"reviews"`
	Dates      map[string]civil.Date `json:"dates"`
}

// MarshalJSON encodes the record with "YYYY-MM-DD" dates and a null
// solvedDate when unsolved.
func (p ProblemProgress) MarshalJSON() ([]byte, error) {
	w := problemJSON{
		Solved:  p.Solved,
		Reviews: p.Reviews,
		Dates:   p.Dates,
	}
	if w.Dates == nil {
		w.Dates = map[string]civil.Date{}
	}
	if !p.SolvedDate.IsZero() {
		s := p.SolvedDate.String()
		w.SolvedDate = &s
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes a record leniently: fields with the wrong shape fall
// back to their defaults and the result is normalised.
func (p *ProblemProgress) UnmarshalJSON(data []byte) error {
	pp, ok := decodeProblem(data)
	if !ok {
		return fmt.Errorf("decode problem progress: not an object or solved without a date")
	}
	*p = pp
	return nil
}

// MarshalJSON encodes the store as {list: {id: progress}}.
func (s Store) MarshalJSON() ([]byte, error) {
	if s.lists == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.lists)
}

// UnmarshalJSON decodes a store, replacing malformed entries with defaults.
func (s *Store) UnmarshalJSON(data []byte) error {
	st, _, err := DecodeStore(data)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// DecodeStore parses persisted progress. The document must be an object of
// objects; individual problem entries are decoded leniently. The "list/id"
// keys of entries that had to be defaulted (not objects, or solved with no
// recoverable solved date) are returned in skipped. Lists and ids not in the
// catalog are kept.
func DecodeStore(data []byte) (s Store, skipped []string, err error) {
	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Store{}, nil, fmt.Errorf("decode progress store: %w", err)
	}
	if raw == nil {
		return Store{}, nil, fmt.Errorf("decode progress store: document is null")
	}
	lists := make(map[string]map[string]ProblemProgress, len(raw))
	for name, entries := range raw {
		lp := make(map[string]ProblemProgress, len(entries))
		for id, msg := range entries {
			pp, ok := decodeProblem(msg)
			if !ok {
				skipped = append(skipped, name+"/"+id)
				pp = DefaultProgress()
			}
			lp[id] = pp
		}
		lists[name] = lp
	}
	return Store{lists: lists}, skipped, nil
}

func decodeProblem(data []byte) (ProblemProgress, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return DefaultProgress(), false
	}
	p := DefaultProgress()
	_ = json.Unmarshal(fields["solved"], &p.Solved)

	var solvedDate string
	if json.Unmarshal(fields["solvedDate"], &solvedDate) == nil {
		if d, err := civil.ParseDate(solvedDate); err == nil {
			p.SolvedDate = d
		}
	}

	var reviews []json.RawMessage
	if json.Unmarshal(fields["reviews"], &reviews) == nil {
		for i := 0; i < len(reviews) && i < ReviewCount; i++ {
			_ = json.Unmarshal(reviews[i], &p.Reviews[i])
		}
	}

	var dates map[string]json.RawMessage
	if json.Unmarshal(fields["dates"], &dates) == nil {
		for label, v := range dates {
			var s string
			if json.Unmarshal(v, &s) != nil {
				continue
			}
			if d, err := civil.ParseDate(s); err == nil {
				p.Dates[label] = d
			}
		}
	}
	return p.normalized()
}
