package pipeline

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/ppiankov/citypop/internal/dataset"
	"github.com/ppiankov/citypop/internal/extract"
	"github.com/ppiankov/citypop/internal/model"
)

// Renderer writes human-readable progress and summaries for both stages.
// Its output is informational only and not part of the data contract.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

func (r *Renderer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleRounded)
	return t
}

// Step prints a progress line
func (r *Renderer) Step(msg string) {
	r.printf("⚙️  %s\n", msg)
}

// TablesFound reports how many candidate tables the adapter located
func (r *Renderer) TablesFound(found, selected int, adapter string) {
	r.printf("✓ Found %d tables (%s adapter). Processing %d...\n", found, adapter, selected)
}

// TablesExtracted prints per-table row counts
func (r *Renderer) TablesExtracted(results []extract.TableResult) {
	t := r.newTable()
	t.AppendHeader(table.Row{"Table", "Rows extracted", "Rows skipped"})
	for _, res := range results {
		t.AppendRow(table.Row{res.Index + 1, len(res.Rows), res.Skipped})
	}
	t.Render()
}

// NoData reports that nothing could be extracted
func (r *Renderer) NoData() {
	r.printf("No data was successfully scraped.\n")
}

// Converted reports the numeric normalization outcome
func (r *Renderer) Converted(stats extract.NormalizeStats) {
	r.printf("✓ Population columns converted to numbers (%d records, %d missing in 2011, %d missing in 2001)\n",
		stats.Records, stats.Missing2011, stats.Missing2001)
}

// Saved reports a written output file
func (r *Renderer) Saved(path string, records int) {
	r.printf("✓ Saved %d records to %s\n", records, path)
}

// Describe prints descriptive statistics of the population columns
func (r *Renderer) Describe(stats []dataset.ColumnStats) {
	r.printf("\nDescriptive statistics of the extracted data\n")

	header := table.Row{""}
	for _, s := range stats {
		header = append(header, s.Column)
	}

	t := r.newTable()
	t.AppendHeader(header)

	row := func(label string, value func(dataset.ColumnStats) string) {
		cells := table.Row{label}
		for _, s := range stats {
			cells = append(cells, value(s))
		}
		t.AppendRow(cells)
	}
	row("count", func(s dataset.ColumnStats) string { return strconv.Itoa(s.Count) })
	row("mean", func(s dataset.ColumnStats) string { return formatStat(s.Mean) })
	row("std", func(s dataset.ColumnStats) string { return formatStat(s.Std) })
	row("min", func(s dataset.ColumnStats) string { return formatStat(s.Min) })
	row("25%", func(s dataset.ColumnStats) string { return formatStat(s.Q25) })
	row("50%", func(s dataset.ColumnStats) string { return formatStat(s.Q50) })
	row("75%", func(s dataset.ColumnStats) string { return formatStat(s.Q75) })
	row("max", func(s dataset.ColumnStats) string { return formatStat(s.Max) })

	t.SetColumnConfigs(numericColumns(len(stats)))
	t.Render()
}

// Preprocessed prints the column, null and row-drop summaries
func (r *Renderer) Preprocessed(result dataset.Result) {
	r.printf("\n✓ 'Ref' column dropped. Columns remaining: %v\n", result.Columns)

	r.printf("\nMissing values per column\n")
	t := r.newTable()
	t.AppendHeader(table.Row{"Column", "Missing"})
	for _, nc := range result.NullCounts {
		t.AppendRow(table.Row{nc.Column, nc.Count})
	}
	t.Render()

	r.printf("\n✓ Rows with missing values dropped\n")
	r.printf("  Rows before: %d\n", result.RowsBefore)
	r.printf("  Rows after:  %d\n", result.RowsAfter)
	r.printf("  Removed:     %d\n", result.RowsRemoved())
	r.printf("✓ Derived columns '%s' and '%s' computed\n", model.ColPopulationChange, model.ColGrowthRate)
}

// Sample prints the first n processed records
func (r *Renderer) Sample(records []model.ProcessedRecord, n int) {
	if n <= 0 || len(records) == 0 {
		return
	}
	if n > len(records) {
		n = len(records)
	}

	r.printf("\nSample of the final dataset\n")
	t := r.newTable()
	header := table.Row{}
	for _, col := range model.ProcessedHeader() {
		header = append(header, col)
	}
	t.AppendHeader(header)
	for _, rec := range records[:n] {
		t.AppendRow(table.Row{
			rec.City,
			rec.Population2011,
			rec.Population2001,
			rec.State,
			rec.PopulationChange,
			strconv.FormatFloat(rec.GrowthRatePercent, 'f', 2, 64),
		})
	}
	t.Render()
}

// Error reports a pipeline failure
func (r *Renderer) Error(err error) {
	r.printf("An unexpected error occurred: %v\n", err)
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// numericColumns right-aligns every column after the label column
func numericColumns(n int) []table.ColumnConfig {
	configs := make([]table.ColumnConfig, 0, n)
	for i := 2; i <= n+1; i++ {
		configs = append(configs, table.ColumnConfig{Number: i, Align: text.AlignRight})
	}
	return configs
}
