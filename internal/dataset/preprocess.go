package dataset

import (
	"math"

	"github.com/ppiankov/citypop/internal/model"
)

// NullCount is the number of missing values in one column
type NullCount struct {
	Column string
	Count  int
}

// Result is the outcome of preprocessing a dataset
type Result struct {
	Records    []model.ProcessedRecord
	Columns    []string // columns kept after dropping Ref
	NullCounts []NullCount
	RowsBefore int
	RowsAfter  int
}

// RowsRemoved is the number of records dropped for missing values
func (r Result) RowsRemoved() int {
	return r.RowsBefore - r.RowsAfter
}

// Preprocess drops the Ref column, drops every record with a missing value
// and derives the population change and growth rate columns
func Preprocess(ds model.Dataset) Result {
	result := Result{
		Columns:    []string{model.ColCity, model.ColPopulation2011, model.ColPopulation2001, model.ColState},
		NullCounts: CountNulls(ds),
		RowsBefore: len(ds),
		Records:    make([]model.ProcessedRecord, 0, len(ds)),
	}

	for _, r := range ds {
		if r.HasMissing() {
			continue
		}

		change := r.Population2011.Value - r.Population2001.Value
		result.Records = append(result.Records, model.ProcessedRecord{
			City:              r.City,
			Population2011:    r.Population2011.Value,
			Population2001:    r.Population2001.Value,
			State:             r.State,
			PopulationChange:  change,
			GrowthRatePercent: GrowthRate(change, r.Population2001.Value),
		})
	}

	result.RowsAfter = len(result.Records)
	return result
}

// GrowthRate returns change as a percentage of base rounded to two decimals,
// or 0 when base is not positive. Halves round to even.
func GrowthRate(change, base int64) float64 {
	if base <= 0 {
		return 0
	}
	pct := float64(change) / float64(base) * 100
	return math.RoundToEven(pct*100) / 100
}

// CountNulls counts missing values per column, Ref excluded
func CountNulls(ds model.Dataset) []NullCount {
	counts := []NullCount{
		{Column: model.ColCity},
		{Column: model.ColPopulation2011},
		{Column: model.ColPopulation2001},
		{Column: model.ColState},
	}

	for _, r := range ds {
		if r.City == "" {
			counts[0].Count++
		}
		if r.Population2011.Missing() {
			counts[1].Count++
		}
		if r.Population2001.Missing() {
			counts[2].Count++
		}
		if r.State == "" {
			counts[3].Count++
		}
	}

	return counts
}
