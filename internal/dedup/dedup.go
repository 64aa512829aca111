// Package dedup collapses the edition lists returned by the foreign catalog
// (remasters, deluxe editions, repeated uploads) into one item per release.
package dedup

import (
	"github.com/cesargomez89/tidarr/internal/textutil"
)

// Edition is anything that can be deduplicated by name.
type Edition interface {
	EditionName() string
	EditionPopularity() int
	EditionVersion() string
}

type Options struct {
	// Disabled returns every item untouched.
	Disabled bool
}

// Dedupe keeps one item per normalized name.
//
// Items carrying a version qualifier are dropped. Among the rest, the first
// item seen for a name is kept at that position and is replaced only by a
// later item with strictly greater popularity.
func Dedupe[T Edition](items []T, opts Options) []T {
	if opts.Disabled {
		return items
	}

	out := make([]T, 0, len(items))
	index := make(map[string]int, len(items))
	for _, item := range items {
		if item.EditionVersion() != "" {
			continue
		}
		key := textutil.Normalize(item.EditionName())
		if key == "" {
			// Names with nothing left after folding compare by raw name.
			key = item.EditionName()
		}
		if i, ok := index[key]; ok {
			if item.EditionPopularity() > out[i].EditionPopularity() {
				out[i] = item
			}
			continue
		}
		index[key] = len(out)
		out = append(out, item)
	}
	return out
}
