package detectors

import (
	"slices"
	"sort"

	"dynamo-insights/internal/models"
)

// filterByOperation returns the records of the given operation types, in input order.
func filterByOperation(records []models.OperationRecord, ops ...models.OperationType) []models.OperationRecord {
	var filtered []models.OperationRecord
	for i := range records {
		if slices.Contains(ops, records[i].Operation) {
			filtered = append(filtered, records[i])
		}
	}
	return filtered
}

// sortByTimestamp sorts records in place, oldest first, keeping buffer order for ties.
func sortByTimestamp(records []models.OperationRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp < records[j].Timestamp
	})
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}

// orderedGroups groups values by key and remembers first-seen key order, so detectors that
// emit one result per group do so deterministically.
type orderedGroups[T any] struct {
	keys   []string
	groups map[string][]T
}

func newOrderedGroups[T any]() *orderedGroups[T] {
	return &orderedGroups[T]{groups: make(map[string][]T)}
}

func (g *orderedGroups[T]) add(key string, v T) {
	if _, exists := g.groups[key]; !exists {
		g.keys = append(g.keys, key)
	}
	g.groups[key] = append(g.groups[key], v)
}

func (g *orderedGroups[T]) each(fn func(key string, values []T)) {
	for _, key := range g.keys {
		fn(key, g.groups[key])
	}
}
