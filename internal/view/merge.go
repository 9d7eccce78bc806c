// Package view holds the pure read-model helpers the dashboards share:
// optimistic-merge reducers, list filters, and join projections. Nothing
// here touches the network, so every behavior is unit-testable in isolation.
package view

// MergeInsert prepends the authoritative row a successful insert returned,
// matching the newest-first ordering of fetched lists.
func MergeInsert[T any](rows []T, created T) []T {
	out := make([]T, 0, len(rows)+1)
	out = append(out, created)
	return append(out, rows...)
}

// MergeUpdate replaces the row whose key matches, leaving order and all
// other rows untouched.
func MergeUpdate[T any](rows []T, updated T, key func(T) string) []T {
	out := make([]T, len(rows))
	k := key(updated)
	for i, row := range rows {
		if key(row) == k {
			out[i] = updated
		} else {
			out[i] = row
		}
	}
	return out
}

// MergeDelete removes the row with the given key, if present.
func MergeDelete[T any](rows []T, id string, key func(T) string) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if key(row) != id {
			out = append(out, row)
		}
	}
	return out
}
