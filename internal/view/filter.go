package view

import "strings"

// InDateRange reports whether a date-string (YYYY-MM-DD, so lexicographic
// order is chronological order) falls in the inclusive [from, to] range.
// An empty bound is open.
func InDateRange(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}

// FilterByDateRange keeps rows whose date falls inside the inclusive range.
func FilterByDateRange[T any](rows []T, from, to string, date func(T) string) []T {
	if from == "" && to == "" {
		return rows
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if InDateRange(date(row), from, to) {
			out = append(out, row)
		}
	}
	return out
}

// MatchesMemberSearch is the members-directory search predicate: a
// case-insensitive substring match against name, phone, or email.
func MatchesMemberSearch(query, name, phone, email string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(name), q) ||
		strings.Contains(phone, query) ||
		strings.Contains(strings.ToLower(email), q)
}
