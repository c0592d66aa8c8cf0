package memory

import (
	"maps"
	"slices"

	"go-vehicle-api/internal/model"
)

func sortedValues[T any](rows map[int64]T) []T {
	ids := slices.Sorted(maps.Keys(rows))
	values := make([]T, 0, len(ids))
	for _, id := range ids {
		values = append(values, rows[id])
	}
	return values
}

func paginate[T any](rows []T, page model.Page) []T {
	if !page.Enabled() {
		return rows
	}

	start := page.Offset()
	if start < 0 || start >= len(rows) {
		return []T{}
	}
	end := min(start+page.Size, len(rows))
	return rows[start:end]
}
