package dataset

import (
	"math"
	"testing"

	"github.com/ppiankov/citypop/internal/model"
)

func TestDescribe(t *testing.T) {
	ds := model.Dataset{
		{Population2011: model.Count(10), Population2001: model.Count(5)},
		{Population2011: model.Count(20), Population2001: model.Population{}},
		{Population2011: model.Count(30), Population2001: model.Count(15)},
		{Population2011: model.Count(40), Population2001: model.Population{}},
	}

	stats := Describe(ds)
	if len(stats) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(stats))
	}

	s2011 := stats[0]
	if s2011.Column != model.ColPopulation2011 || s2011.Count != 4 {
		t.Errorf("unexpected 2011 stats: %+v", s2011)
	}
	if s2011.Mean != 25 || s2011.Min != 10 || s2011.Max != 40 {
		t.Errorf("unexpected 2011 mean/min/max: %+v", s2011)
	}
	if s2011.Std <= 0 {
		t.Errorf("expected positive std, got %v", s2011.Std)
	}

	s2001 := stats[1]
	if s2001.Count != 2 || s2001.Mean != 10 {
		t.Errorf("expected missing values excluded, got %+v", s2001)
	}
}

func TestDescribe_AllMissing(t *testing.T) {
	stats := Describe(model.Dataset{{City: "x"}})
	for _, s := range stats {
		if s.Count != 0 || !math.IsNaN(s.Mean) {
			t.Errorf("expected empty stats for %s, got %+v", s.Column, s)
		}
	}
}
