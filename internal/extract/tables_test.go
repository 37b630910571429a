package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/ppiankov/citypop/internal/model"
)

const rankedTable = `<table class="wikitable sortable"><tbody>
<tr><th>Rank</th><th>City</th><th>Population (2011)</th><th>Population (2001)</th><th>State or union territory</th><th>Ref</th></tr>
<tr><td>1</td><td><a href="/wiki/Delhi">Delhi</a></td><td>16,787,941[1]</td><td>12,877,470</td><td>Delhi</td><td><sup>[2]</sup></td></tr>
<tr><td colspan="6">Note: figures are provisional</td></tr>
<tr><td>2</td><td>Mumbai</td><td>12,442,373</td><td>11,978,450</td><td>Maharashtra</td><td>[3]</td></tr>
</tbody></table>`

const plainTable = `<table class="wikitable"><tbody>
<tr><th>City</th><th>Population (2011)</th><th>Population (2001)</th><th>State or union territory</th><th>Ref</th></tr>
<tr><th>Delhi</th><td>16,787,941[1]</td><td>12,877,470</td><td>Delhi</td><td>[2]</td></tr>
<tr><td>Only</td><td>four</td><td>cells</td><td>here</td></tr>
</tbody></table>`

func firstTable(t *testing.T, markup string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body>" + markup + "</body></html>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		t.Fatal("no table in fixture")
	}
	return table
}

func TestExtractTable_RankedAndPlainAgree(t *testing.T) {
	e := NewRowExtractor(5, nil)

	ranked := e.ExtractTable(0, firstTable(t, rankedTable))
	plain := e.ExtractTable(1, firstTable(t, plainTable))

	if len(ranked.Rows) != 2 || ranked.Skipped != 1 {
		t.Fatalf("ranked: expected 2 rows and 1 skipped, got %d rows, %d skipped", len(ranked.Rows), ranked.Skipped)
	}
	if len(plain.Rows) != 1 || plain.Skipped != 1 {
		t.Fatalf("plain: expected 1 row and 1 skipped, got %d rows, %d skipped", len(plain.Rows), plain.Skipped)
	}

	want := model.CityRow{
		City:           "Delhi",
		Population2011: "16,787,941",
		Population2001: "12,877,470",
		State:          "Delhi",
		Ref:            "",
	}
	if ranked.Rows[0] != want {
		t.Errorf("ranked row = %+v, want %+v", ranked.Rows[0], want)
	}
	if plain.Rows[0] != want {
		t.Errorf("plain row = %+v, want %+v", plain.Rows[0], want)
	}
	if ranked.Index != 0 || plain.Index != 1 {
		t.Errorf("unexpected indexes: %d, %d", ranked.Index, plain.Index)
	}
}

func TestExtractTable_CellCounts(t *testing.T) {
	tests := []struct {
		cells int
		rows  int
	}{
		{0, 0}, {1, 0}, {4, 0}, {5, 1}, {6, 1}, {9, 1},
	}

	for _, tt := range tests {
		var b strings.Builder
		b.WriteString("<table><tbody><tr><th>header</th></tr><tr>")
		for i := 0; i < tt.cells; i++ {
			b.WriteString("<td>c</td>")
		}
		b.WriteString("</tr></tbody></table>")

		result := NewRowExtractor(5, nil).ExtractTable(0, firstTable(t, b.String()))
		if len(result.Rows) != tt.rows {
			t.Errorf("%d cells: expected %d records, got %d", tt.cells, tt.rows, len(result.Rows))
		}
	}
}

func TestExtractTable_HeaderOnly(t *testing.T) {
	result := NewRowExtractor(5, nil).ExtractTable(0, firstTable(t, `<table><tr><th>a</th><th>b</th></tr></table>`))
	if len(result.Rows) != 0 || result.Skipped != 0 {
		t.Errorf("expected nothing extracted, got %+v", result)
	}
}

func TestNewRowExtractor_MinimumFive(t *testing.T) {
	if e := NewRowExtractor(2, nil); e.minCells != 5 {
		t.Errorf("expected minCells raised to 5, got %d", e.minCells)
	}
	if e := NewRowExtractor(7, nil); e.minCells != 7 {
		t.Errorf("expected minCells 7, got %d", e.minCells)
	}
}

func TestMerge_PreservesOrder(t *testing.T) {
	tables := []TableResult{
		{Index: 0, Rows: []model.CityRow{{City: "A"}, {City: "B"}}},
		{Index: 1, Rows: nil},
		{Index: 2, Rows: []model.CityRow{{City: "A"}, {City: "C"}}},
	}

	merged := Merge(tables)

	var got []string
	for _, r := range merged {
		got = append(got, r.City)
	}
	if strings.Join(got, ",") != "A,B,A,C" {
		t.Errorf("unexpected merge order: %v", got)
	}
}
