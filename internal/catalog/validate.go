package catalog

import (
	"fmt"
	"strings"
)

// validateLists performs structural checks on the seed lists.
// Returns a combined error describing all problems found, or nil if valid.
func validateLists(lists []List) error {
	var errs []string

	names := make(map[string]bool, len(lists))
	for _, l := range lists {
		if l.Name == "" {
			errs = append(errs, "list with empty name")
		}
		if names[l.Name] {
			errs = append(errs, fmt.Sprintf("duplicate list name: %q", l.Name))
		}
		names[l.Name] = true

		if len(l.Problems) == 0 {
			errs = append(errs, fmt.Sprintf("list %q has no problems", l.Name))
		}

		ids := make(map[string]bool, len(l.Problems))
		for _, pr := range l.Problems {
			prefix := fmt.Sprintf("list %q problem %q", l.Name, pr.ID)
			if pr.ID == "" {
				errs = append(errs, fmt.Sprintf("list %q has a problem with empty ID", l.Name))
			}
			if ids[pr.ID] {
				errs = append(errs, fmt.Sprintf("%s: duplicate ID", prefix))
			}
			ids[pr.ID] = true
			if strings.TrimSpace(pr.Title) == "" {
				errs = append(errs, fmt.Sprintf("%s: empty title", prefix))
			}
			if !pr.Difficulty.Valid() {
				errs = append(errs, fmt.Sprintf("%s: invalid difficulty %q", prefix, pr.Difficulty))
			}
			if len(pr.Topics) == 0 {
				errs = append(errs, fmt.Sprintf("%s: no topics", prefix))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
