package extract

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/ppiankov/citypop/internal/logger"
	"github.com/ppiankov/citypop/internal/model"
)

// cityColumns is the number of trailing cells that carry the record:
// City, Population (2011), Population (2001), State, Ref.
// A source that adds or removes trailing columns shifts these labels.
const cityColumns = 5

// TableResult holds the rows extracted from one located table
type TableResult struct {
	Index   int // 0-based position among located tables
	Rows    []model.CityRow
	Skipped int // rows discarded for having too few cells
}

// RowExtractor turns table rows into CityRows
type RowExtractor struct {
	minCells int
	log      logger.Logger
}

// NewRowExtractor creates a row extractor. minCells below five is raised
// to five since the record needs five positions.
func NewRowExtractor(minCells int, log logger.Logger) *RowExtractor {
	if minCells < cityColumns {
		minCells = cityColumns
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &RowExtractor{minCells: minCells, log: log}
}

// ExtractTable extracts every data row of the table, skipping the header row
func (e *RowExtractor) ExtractTable(index int, table *goquery.Selection) TableResult {
	result := TableResult{Index: index}

	body := table.Find("tbody").First()
	if body.Length() == 0 {
		body = table
	}

	rows := body.Find("tr")
	for i := 1; i < rows.Length(); i++ {
		row, ok := e.extractRow(rows.Eq(i))
		if !ok {
			result.Skipped++
			e.log.Debug("row skipped", logger.Int("table", index+1), logger.Int("row", i))
			continue
		}
		result.Rows = append(result.Rows, row)
	}

	return result
}

// extractRow labels the last five th/td cells of the row positionally
func (e *RowExtractor) extractRow(tr *goquery.Selection) (model.CityRow, bool) {
	cells := tr.Find("th, td")
	n := cells.Length()
	if n < e.minCells {
		return model.CityRow{}, false
	}

	text := func(offset int) string {
		return CleanText(cells.Eq(n - offset).Text())
	}

	return model.CityRow{
		City:           text(5),
		Population2011: text(4),
		Population2001: text(3),
		State:          text(2),
		Ref:            text(1),
	}, true
}
