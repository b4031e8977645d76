// Package category enforces "at most one entry per category" over a fixed, ordered category list.
package category

// Used collects the category of every item
func Used[T comparable, E any](items []E, key func(E) T) map[T]struct{} {
	used := make(map[T]struct{}, len(items))
	for _, item := range items {
		used[key(item)] = struct{}{}
	}
	return used
}

// NextAvailable returns the first category in all that is not in used
func NextAvailable[T comparable](used map[T]struct{}, all []T) (T, bool) {
	for _, c := range all {
		if _, taken := used[c]; !taken {
			return c, true
		}
	}

	var zero T
	return zero, false
}

// Remaining returns every category in all that is not in used, in order
func Remaining[T comparable](used map[T]struct{}, all []T) []T {
	out := make([]T, 0, len(all))
	for _, c := range all {
		if _, taken := used[c]; !taken {
			out = append(out, c)
		}
	}
	return out
}

// Duplicates returns categories that appear more than once, in first-seen order
func Duplicates[T comparable, E any](items []E, key func(E) T) []T {
	seen := make(map[T]int, len(items))
	var dups []T
	for _, item := range items {
		k := key(item)
		seen[k]++
		if seen[k] == 2 {
			dups = append(dups, k)
		}
	}
	return dups
}
