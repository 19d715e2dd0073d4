package extract

import (
	"fmt"
	"strings"
)

// Policy selects how duplicate matches are removed.
type Policy string

const (
	// PolicyAdjacent drops an element only when it equals the element right
	// before it. [A, A, B, A] becomes [A, B, A]; the second A survives.
	// This is the default and matches the historical output of the tool.
	PolicyAdjacent Policy = "adjacent"
	// PolicyGlobal keeps the first occurrence of every value.
	PolicyGlobal Policy = "global"
)

// ParsePolicy accepts "adjacent" or "global" (case-insensitive). An empty
// string selects PolicyAdjacent.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyAdjacent:
		return PolicyAdjacent, nil
	case PolicyGlobal:
		return PolicyGlobal, nil
	default:
		return "", fmt.Errorf("unknown dedupe policy %q (want adjacent or global)", s)
	}
}

// Dedupe applies p to matches. Relative order is always preserved.
func Dedupe(matches []string, p Policy) []string {
	if p == PolicyGlobal {
		return DedupeGlobal(matches)
	}
	return DedupeAdjacent(matches)
}

// DedupeAdjacent collapses runs of identical consecutive elements into one.
// Equal values separated by a different value are all retained.
func DedupeAdjacent(matches []string) []string {
	out := make([]string, 0, len(matches))
	for i, m := range matches {
		if i > 0 && m == matches[i-1] {
			continue
		}
		out = append(out, m)
	}
	return out
}

// DedupeGlobal keeps the first occurrence of each value.
func DedupeGlobal(matches []string) []string {
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
