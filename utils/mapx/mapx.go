// File: mapx.go
// Title: Core Map Utilities
// Description: Implements map utility functions including key/value access,
//              merging, filtering, and comparison with generic type support.
//              Used for parameter tables and statistics aggregation.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation with map utilities

package mapx

// Keys returns a slice of all keys in the map
func Keys[K comparable, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Values returns a slice of all values in the map
func Values[K comparable, V any](m map[K]V) []V {
	if m == nil {
		return nil
	}

	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}

// HasKey checks if the map contains the specified key
func HasKey[K comparable, V any](m map[K]V, key K) bool {
	if m == nil {
		return false
	}
	_, exists := m[key]
	return exists
}

// Filter returns a new map containing only entries that match the predicate
func Filter[K comparable, V any](m map[K]V, predicate func(K, V) bool) map[K]V {
	if m == nil || predicate == nil {
		return nil
	}

	result := make(map[K]V)
	for k, v := range m {
		if predicate(k, v) {
			result[k] = v
		}
	}
	return result
}

// Merge combines multiple maps into one, with later maps overriding earlier ones
func Merge[K comparable, V any](maps ...map[K]V) map[K]V {
	result := make(map[K]V)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// Clone creates a shallow copy of the map
func Clone[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}

	result := make(map[K]V, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

// Equal checks if two maps contain the same key-value pairs
func Equal[K, V comparable](m1, m2 map[K]V) bool {
	if len(m1) != len(m2) {
		return false
	}

	for k, v1 := range m1 {
		v2, exists := m2[k]
		if !exists || v1 != v2 {
			return false
		}
	}
	return true
}

// GetOrDefault returns the value for the key, or the default if absent
func GetOrDefault[K comparable, V any](m map[K]V, key K, defaultValue V) V {
	if m == nil {
		return defaultValue
	}
	if v, exists := m[key]; exists {
		return v
	}
	return defaultValue
}

// Size returns the number of entries in the map
func Size[K comparable, V any](m map[K]V) int {
	return len(m)
}

// IsEmpty checks if the map has no entries
func IsEmpty[K comparable, V any](m map[K]V) bool {
	return len(m) == 0
}
