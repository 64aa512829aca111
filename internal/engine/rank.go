package engine

import (
	"github.com/cesargomez89/tidarr/internal/textutil"
)

// Rank moves items whose name matches query, exactly or after
// normalization, ahead of the rest. Both groups keep their input order.
func Rank[T any](items []T, query string, name func(T) string) []T {
	ranked := make([]T, 0, len(items))
	var rest []T
	for _, item := range items {
		if textutil.NamesMatch(name(item), query) {
			ranked = append(ranked, item)
		} else {
			rest = append(rest, item)
		}
	}
	return append(ranked, rest...)
}
