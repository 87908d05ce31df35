package types

import "strings"

// AppendUnique appends item to an ordered, duplicate-free list.
// The item is trimmed first; blank items and exact (case-sensitive) duplicates
// leave the list unchanged. The second return value reports whether it was added.
func AppendUnique(items []string, item string) ([]string, bool) {
	trimmed := strings.TrimSpace(item)
	if trimmed == "" {
		return items, false
	}
	for _, existing := range items {
		if existing == trimmed {
			return items, false
		}
	}
	out := make([]string, len(items), len(items)+1)
	copy(out, items)
	return append(out, trimmed), true
}

// Dedupe removes exact duplicates, keeping the first occurrence of each entry
func Dedupe(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, exists := seen[item]; exists {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// RemoveAt returns a copy of items without the element at index i; later
// elements shift down. It returns false when i is out of range.
func RemoveAt[T any](items []T, i int) ([]T, bool) {
	if i < 0 || i >= len(items) {
		return items, false
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...), true
}
