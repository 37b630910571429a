package model

import "strconv"

// Column names shared by the intermediate and processed CSV files
const (
	ColCity             = "City"
	ColPopulation2011   = "Population (2011)"
	ColPopulation2001   = "Population (2001)"
	ColState            = "State or union territory"
	ColRef              = "Ref"
	ColPopulationChange = "Population Change"
	ColGrowthRate       = "Growth Rate (%)"
)

// CityRow is the five rightmost cells of a table row, cleaned but not yet typed
type CityRow struct {
	City           string
	Population2011 string
	Population2001 string
	State          string
	Ref            string
}

// Population is a population count that may be missing.
// The zero value is the missing marker, distinct from a count of 0.
type Population struct {
	Value int64
	Valid bool
}

// Count returns a present population value
func Count(v int64) Population {
	return Population{Value: v, Valid: true}
}

// Missing reports whether the value could not be parsed
func (p Population) Missing() bool {
	return !p.Valid
}

// String renders the value as a CSV cell; missing renders as empty
func (p Population) String() string {
	if !p.Valid {
		return ""
	}
	return strconv.FormatInt(p.Value, 10)
}

// CityRecord is one normalized row of the intermediate dataset
type CityRecord struct {
	City           string     `json:"city"`
	Population2011 Population `json:"population_2011"`
	Population2001 Population `json:"population_2001"`
	State          string     `json:"state"`
	Ref            string     `json:"ref,omitempty"`
}

// HasMissing reports whether any field other than Ref is missing.
// Empty text counts as missing, the same as an empty CSV cell.
func (r CityRecord) HasMissing() bool {
	return r.City == "" || r.State == "" ||
		r.Population2011.Missing() || r.Population2001.Missing()
}

// Dataset is an ordered sequence of records across all tables (not deduplicated)
type Dataset []CityRecord

// ProcessedRecord is a CityRecord without Ref plus the derived columns
type ProcessedRecord struct {
	City              string  `json:"city"`
	Population2011    int64   `json:"population_2011"`
	Population2001    int64   `json:"population_2001"`
	State             string  `json:"state"`
	PopulationChange  int64   `json:"population_change"`
	GrowthRatePercent float64 `json:"growth_rate_percent"`
}

// IntermediateHeader is the column order of the extracted dataset file
func IntermediateHeader() []string {
	return []string{ColCity, ColPopulation2011, ColPopulation2001, ColState, ColRef}
}

// ProcessedHeader is the column order of the preprocessed dataset file
func ProcessedHeader() []string {
	return []string{ColCity, ColPopulation2011, ColPopulation2001, ColState, ColPopulationChange, ColGrowthRate}
}
