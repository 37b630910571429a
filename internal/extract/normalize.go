package extract

import (
	"math"
	"strconv"
	"strings"

	"github.com/ppiankov/citypop/internal/model"
)

// NormalizeStats summarizes numeric coercion over a dataset
type NormalizeStats struct {
	Records     int
	Missing2011 int
	Missing2001 int
}

// ParsePopulation strips thousands separators and parses the count.
// Integral values written in decimal float syntax are accepted; anything
// else, including values outside the int64 range, yields the missing marker.
func ParsePopulation(text string) model.Population {
	s := strings.TrimSpace(strings.ReplaceAll(text, ",", ""))
	if s == "" {
		return model.Population{}
	}

	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return model.Count(v)
	}

	// ParseFloat also takes hex floats such as 0x1p4; those are not counts
	if strings.ContainsAny(s, "xX") {
		return model.Population{}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return model.Population{}
	}
	if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return model.Population{}
	}
	return model.Count(int64(f))
}

// Normalize converts cleaned rows into typed records, preserving order
func Normalize(rows []model.CityRow) (model.Dataset, NormalizeStats) {
	dataset := make(model.Dataset, 0, len(rows))
	stats := NormalizeStats{Records: len(rows)}

	for _, row := range rows {
		record := model.CityRecord{
			City:           row.City,
			Population2011: ParsePopulation(row.Population2011),
			Population2001: ParsePopulation(row.Population2001),
			State:          row.State,
			Ref:            row.Ref,
		}
		if record.Population2011.Missing() {
			stats.Missing2011++
		}
		if record.Population2001.Missing() {
			stats.Missing2001++
		}
		dataset = append(dataset, record)
	}

	return dataset, stats
}
