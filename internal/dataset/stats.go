package dataset

import (
	"math"

	"github.com/go-gota/gota/series"
	"github.com/ppiankov/citypop/internal/model"
)

// ColumnStats is a descriptive summary of one numeric column.
// Missing values are excluded; an all-missing column has Count 0 and NaN stats.
type ColumnStats struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Q50    float64
	Q75    float64
	Max    float64
}

// Describe summarizes the population columns of the dataset
func Describe(ds model.Dataset) []ColumnStats {
	pop2011 := make([]float64, 0, len(ds))
	pop2001 := make([]float64, 0, len(ds))

	for _, r := range ds {
		if r.Population2011.Valid {
			pop2011 = append(pop2011, float64(r.Population2011.Value))
		}
		if r.Population2001.Valid {
			pop2001 = append(pop2001, float64(r.Population2001.Value))
		}
	}

	return []ColumnStats{
		describeColumn(model.ColPopulation2011, pop2011),
		describeColumn(model.ColPopulation2001, pop2001),
	}
}

func describeColumn(name string, values []float64) ColumnStats {
	stats := ColumnStats{Column: name, Count: len(values)}
	if len(values) == 0 {
		nan := math.NaN()
		stats.Mean, stats.Std, stats.Min, stats.Q25, stats.Q50, stats.Q75, stats.Max = nan, nan, nan, nan, nan, nan, nan
		return stats
	}

	s := series.New(values, series.Float, name)
	stats.Mean = s.Mean()
	stats.Std = s.StdDev()
	stats.Min = s.Min()
	stats.Q25 = s.Quantile(0.25)
	stats.Q50 = s.Quantile(0.5)
	stats.Q75 = s.Quantile(0.75)
	stats.Max = s.Max()
	return stats
}
