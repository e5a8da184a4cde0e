// Package collection provides generic, functional-style helpers for slices —
// the derivation toolbox behind page-local statistics, top-failed-product
// rankings and recent-activity views.
//
// All functions work with Go generics (go 1.21+).
//
// Usage:
//
//	failed := collection.Filter(inspections, func(i models.Inspection) bool { return !i.Passed() })
//	byProduct := collection.CountBy(failed, func(i models.Inspection) string { return i.ProductCode })
package collection

import "sort"

// Map transforms each element of slice s using fn.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter returns elements of s for which fn returns true.
func Filter[T any](s []T, fn func(T) bool) []T {
	var out []T
	for _, v := range s {
		if fn(v) {
			out = append(out, v)
		}
	}
	return out
}

// First returns the first element matching fn, or (zero, false).
func First[T any](s []T, fn func(T) bool) (T, bool) {
	for _, v := range s {
		if fn(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// GroupBy partitions s into a map keyed by the string returned by fn.
func GroupBy[T any](s []T, fn func(T) string) map[string][]T {
	out := make(map[string][]T)
	for _, v := range s {
		k := fn(v)
		out[k] = append(out[k], v)
	}
	return out
}

// CountBy tallies elements by the key produced by fn.
func CountBy[T any](s []T, fn func(T) string) map[string]int {
	out := make(map[string]int)
	for _, v := range s {
		out[fn(v)]++
	}
	return out
}

// CountWhere counts elements satisfying fn.
func CountWhere[T any](s []T, fn func(T) bool) int {
	n := 0
	for _, v := range s {
		if fn(v) {
			n++
		}
	}
	return n
}

// SortBy sorts a copy of s with the given less function. The sort is stable,
// so elements comparing equal keep their input order.
func SortBy[T any](s []T, less func(a, b T) bool) []T {
	out := make([]T, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Reduce folds s into a single value using fn, starting with initial.
func Reduce[T, R any](s []T, initial R, fn func(carry R, item T) R) R {
	carry := initial
	for _, v := range s {
		carry = fn(carry, v)
	}
	return carry
}

// Take returns the first n elements.
func Take[T any](s []T, n int) []T {
	if n >= len(s) {
		return s
	}
	return s[:n]
}
