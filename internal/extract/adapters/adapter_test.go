package adapters

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func tablesPage(n int, wrap bool) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	if wrap {
		b.WriteString(`<div class="mw-parser-output">`)
	}
	b.WriteString(`<table class="infobox"><tr><td>not data</td></tr></table>`)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, `<table class="wikitable sortable" id="t%d"><tbody><tr><th>h</th></tr></tbody></table>`, i)
	}
	if wrap {
		b.WriteString("</div>")
	}
	b.WriteString("</body></html>")
	return b.String()
}

func TestRegistry_FindAdapter(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		url  string
		want string
	}{
		{"https://en.wikipedia.org/wiki/List_of_cities_in_India_by_population", "wikipedia"},
		{"https://example.com/cities", "generic"},
		{"", "generic"},
	}

	for _, tt := range tests {
		if got := r.FindAdapter(tt.url).Name(); got != tt.want {
			t.Errorf("FindAdapter(%q) = %s, want %s", tt.url, got, tt.want)
		}
	}
}

func TestLocateTables_FirstTwoOfFive(t *testing.T) {
	doc, err := ParseHTML(tablesPage(5, true))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	for _, a := range []Adapter{NewWikipediaAdapter(), NewGenericAdapter()} {
		tables := a.LocateTables(doc, []string{"wikitable", "sortable"}, 2)
		if len(tables) != 2 {
			t.Fatalf("%s: expected 2 tables, got %d", a.Name(), len(tables))
		}
		for i, want := range []string{"t1", "t2"} {
			if id, _ := tables[i].Attr("id"); id != want {
				t.Errorf("%s: table %d id = %q, want %q", a.Name(), i, id, want)
			}
		}
	}
}

func TestLocateTables_FewerThanLimit(t *testing.T) {
	doc, err := ParseHTML(tablesPage(1, false))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	tables := NewWikipediaAdapter().LocateTables(doc, []string{"wikitable"}, 2)
	if len(tables) != 1 {
		t.Errorf("expected 1 table, got %d", len(tables))
	}
}

func TestLocateTables_NoneFound(t *testing.T) {
	doc, err := ParseHTML(`<html><body><table class="navbox"><tr><td>x</td></tr></table></body></html>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if tables := NewGenericAdapter().LocateTables(doc, []string{"wikitable", "sortable"}, 2); len(tables) != 0 {
		t.Errorf("expected no tables, got %d", len(tables))
	}
}

func TestLocateTables_AnyClassMatches(t *testing.T) {
	page := `<html><body>
		<table class="sortable" id="a"><tr><td>1</td></tr></table>
		<table class="wikitable" id="b"><tr><td>2</td></tr></table>
		<table class="plain" id="c"><tr><td>3</td></tr></table>
	</body></html>`
	doc, err := ParseHTML(page)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	tables := NewGenericAdapter().LocateTables(doc, []string{"wikitable", "sortable"}, 0)
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}
	if id, _ := tables[0].Attr("id"); id != "a" {
		t.Errorf("expected document order, first id = %q", id)
	}
}

func tableIDs(tables []*goquery.Selection) []string {
	ids := make([]string, 0, len(tables))
	for _, s := range tables {
		id, _ := s.Attr("id")
		ids = append(ids, id)
	}
	return ids
}

func TestWikipediaAdapter_PrefersArticleTables(t *testing.T) {
	page := `<html><body>
		<table class="wikitable" id="outside"><tr><td>x</td></tr></table>
		<div class="mw-parser-output">
			<table class="wikitable" id="in1"><tr><td>y</td></tr></table>
			<table class="wikitable" id="in2"><tr><td>z</td></tr></table>
		</div>
	</body></html>`
	doc, err := ParseHTML(page)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	a := NewWikipediaAdapter()
	if got := strings.Join(tableIDs(a.LocateTables(doc, []string{"wikitable"}, 2)), ","); got != "in1,in2" {
		t.Errorf("limit 2: got %s, want in1,in2", got)
	}
	if got := len(a.LocateTables(doc, []string{"wikitable"}, 0)); got != 3 {
		t.Errorf("unlimited: got %d tables, want 3", got)
	}
}

func TestWikipediaAdapter_FallsBackWhenArticleIsShort(t *testing.T) {
	page := `<html><body>
		<table class="wikitable" id="outside"><tr><td>x</td></tr></table>
		<div class="mw-parser-output">
			<table class="wikitable" id="inside"><tr><td>y</td></tr></table>
		</div>
		<table class="sortable" id="after"><tr><td>z</td></tr></table>
	</body></html>`
	doc, err := ParseHTML(page)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	tables := NewWikipediaAdapter().LocateTables(doc, []string{"wikitable", "sortable"}, 2)
	if got := strings.Join(tableIDs(tables), ","); got != "outside,inside" {
		t.Errorf("got %s, want outside,inside", got)
	}
}
