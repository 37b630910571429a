package extract

import "github.com/ppiankov/citypop/internal/model"

// Merge concatenates per-table rows in table order. Rows are neither
// deduplicated nor reconciled across tables.
func Merge(tables []TableResult) []model.CityRow {
	total := 0
	for _, t := range tables {
		total += len(t.Rows)
	}

	merged := make([]model.CityRow, 0, total)
	for _, t := range tables {
		merged = append(merged, t.Rows...)
	}
	return merged
}
