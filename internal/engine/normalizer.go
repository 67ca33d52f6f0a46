package engine

import "strings"

// NormalizeCategory maps a free-form category string onto the configured
// set, returning the canonical configured spelling or "" when nothing
// matches. The candidate is case-folded and trimmed first. An exact match
// wins immediately; otherwise the first configured category that contains
// the candidate, or is contained by it, is returned.
//
// The substring test is deliberately permissive and order-dependent: with
// overlapping configured names ("health", "healthcare") the first configured
// entry that passes wins.
func NormalizeCategory(candidate string, categories []string) string {
	candidate = strings.ToLower(strings.TrimSpace(candidate))
	if candidate == "" {
		return ""
	}

	for _, category := range categories {
		if candidate == category {
			return category
		}
	}

	for _, category := range categories {
		if strings.Contains(category, candidate) || strings.Contains(candidate, category) {
			return category
		}
	}

	return ""
}
