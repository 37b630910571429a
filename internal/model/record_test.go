package model

import "testing"

func TestPopulation_String(t *testing.T) {
	if got := Count(1234567).String(); got != "1234567" {
		t.Errorf("expected 1234567, got %q", got)
	}
	if got := Count(0).String(); got != "0" {
		t.Errorf("expected 0 for zero count, got %q", got)
	}
	if got := (Population{}).String(); got != "" {
		t.Errorf("expected empty string for missing, got %q", got)
	}
}

func TestCityRecord_HasMissing(t *testing.T) {
	complete := CityRecord{City: "Pune", State: "Maharashtra", Population2011: Count(3124458), Population2001: Count(2538473)}

	tests := []struct {
		name   string
		mutate func(r *CityRecord)
		want   bool
	}{
		{"complete", func(r *CityRecord) {}, false},
		{"empty ref is fine", func(r *CityRecord) { r.Ref = "" }, false},
		{"missing 2011", func(r *CityRecord) { r.Population2011 = Population{} }, true},
		{"missing 2001", func(r *CityRecord) { r.Population2001 = Population{} }, true},
		{"empty city", func(r *CityRecord) { r.City = "" }, true},
		{"empty state", func(r *CityRecord) { r.State = "" }, true},
		{"zero population is present", func(r *CityRecord) { r.Population2001 = Count(0) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := complete
			tt.mutate(&r)
			if got := r.HasMissing(); got != tt.want {
				t.Errorf("HasMissing() = %v, want %v", got, tt.want)
			}
		})
	}
}
