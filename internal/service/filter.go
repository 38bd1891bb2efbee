package service

import "strings"

// FieldExtractor pulls one searchable string out of an entity.
type FieldExtractor[T any] func(T) string

// Filter keeps the entities where the query is a case-folded substring of at
// least one extracted field. An empty query returns the collection unchanged.
// Pure projection over an already-fetched slice; persistence is never touched.
func Filter[T any](items []T, query string, fields []FieldExtractor[T]) []T {
	if query == "" {
		return items
	}
	needle := strings.ToLower(query)

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), needle) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}
