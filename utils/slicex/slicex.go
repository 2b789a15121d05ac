// File: slicex.go
// Title: Core Slice Utilities
// Description: Implements slice utility functions including transformation,
//              search, aggregation, and sorting operations with generic type
//              support. Used for statement filtering and scene statistics.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation with slice utilities

package slicex

import (
	"cmp"
	"slices"
)

// ===============================
// Core Transformation Functions
// ===============================

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Reduce reduces the slice to a single value using the provided function
func Reduce[T, R any](slice []T, initial R, reducer func(R, T) R) R {
	if slice == nil || reducer == nil {
		return initial
	}

	result := initial
	for _, item := range slice {
		result = reducer(result, item)
	}
	return result
}

// ForEach executes the provided function for each element
func ForEach[T any](slice []T, fn func(T)) {
	if slice == nil || fn == nil {
		return
	}

	for _, item := range slice {
		fn(item)
	}
}

// ===============================
// Search and Validation Functions
// ===============================

// Unique returns a new slice with duplicate elements removed
func Unique[T comparable](slice []T) []T {
	if slice == nil {
		return nil
	}

	seen := make(map[T]bool)
	result := make([]T, 0, len(slice))

	for _, item := range slice {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}

// Contains checks if the slice contains the specified element
func Contains[T comparable](slice []T, element T) bool {
	for _, item := range slice {
		if item == element {
			return true
		}
	}
	return false
}

// ContainsBy checks if any element matches the predicate
func ContainsBy[T any](slice []T, predicate func(T) bool) bool {
	if slice == nil || predicate == nil {
		return false
	}

	for _, item := range slice {
		if predicate(item) {
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first occurrence of the element, or -1
func IndexOf[T comparable](slice []T, element T) int {
	for i, item := range slice {
		if item == element {
			return i
		}
	}
	return -1
}

// Find returns the first element matching the predicate
func Find[T any](slice []T, predicate func(T) bool) (T, bool) {
	var zero T
	if slice == nil || predicate == nil {
		return zero, false
	}

	for _, item := range slice {
		if predicate(item) {
			return item, true
		}
	}
	return zero, false
}

// IsEmpty checks if the slice has no elements
func IsEmpty[T any](slice []T) bool {
	return len(slice) == 0
}

// IsNotEmpty checks if the slice has at least one element
func IsNotEmpty[T any](slice []T) bool {
	return len(slice) > 0
}

// Count returns the number of elements matching the predicate
func Count[T any](slice []T, predicate func(T) bool) int {
	if slice == nil || predicate == nil {
		return 0
	}

	count := 0
	for _, item := range slice {
		if predicate(item) {
			count++
		}
	}
	return count
}

// ===============================
// Aggregation Functions
// ===============================

// Min returns the minimum element (requires ordered type)
func Min[T cmp.Ordered](slice []T) (T, bool) {
	var zero T
	if len(slice) == 0 {
		return zero, false
	}

	min := slice[0]
	for _, item := range slice[1:] {
		if item < min {
			min = item
		}
	}
	return min, true
}

// Max returns the maximum element (requires ordered type)
func Max[T cmp.Ordered](slice []T) (T, bool) {
	var zero T
	if len(slice) == 0 {
		return zero, false
	}

	max := slice[0]
	for _, item := range slice[1:] {
		if item > max {
			max = item
		}
	}
	return max, true
}

// Sum returns the sum of all elements (requires numeric type)
func Sum[T interface{ ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64 }](slice []T) T {
	var sum T
	for _, item := range slice {
		sum += item
	}
	return sum
}

// ===============================
// Copying and Comparison
// ===============================

// Clone creates a shallow copy of the slice
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := make([]T, len(slice))
	copy(result, slice)
	return result
}

// Equal checks if two slices are equal (deep comparison)
func Equal[T comparable](slice1, slice2 []T) bool {
	if len(slice1) != len(slice2) {
		return false
	}

	for i, item := range slice1 {
		if item != slice2[i] {
			return false
		}
	}
	return true
}

// ===============================
// Advanced Operations
// ===============================

// GroupBy groups elements by a key function
func GroupBy[T any, K comparable](slice []T, keyFunc func(T) K) map[K][]T {
	if slice == nil || keyFunc == nil {
		return nil
	}

	groups := make(map[K][]T)
	for _, item := range slice {
		key := keyFunc(item)
		groups[key] = append(groups[key], item)
	}
	return groups
}

// Partition splits the slice into two based on a predicate
func Partition[T any](slice []T, predicate func(T) bool) ([]T, []T) {
	if slice == nil || predicate == nil {
		return nil, nil
	}

	var trueSlice, falseSlice []T
	for _, item := range slice {
		if predicate(item) {
			trueSlice = append(trueSlice, item)
		} else {
			falseSlice = append(falseSlice, item)
		}
	}
	return trueSlice, falseSlice
}

// Sort returns a sorted copy of the slice (requires ordered type)
func Sort[T cmp.Ordered](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := Clone(slice)
	slices.Sort(result)
	return result
}

// SortBy returns a sorted copy using a comparison function
func SortBy[T any](slice []T, less func(T, T) bool) []T {
	if slice == nil || less == nil {
		return nil
	}

	result := Clone(slice)
	slices.SortFunc(result, func(a, b T) int {
		if less(a, b) {
			return -1
		}
		if less(b, a) {
			return 1
		}
		return 0
	})
	return result
}
