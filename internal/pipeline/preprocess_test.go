package pipeline

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/ppiankov/citypop/internal/model"
)

func TestPreprocessorRun(t *testing.T) {
	cfg := testConfig(t, model.DefaultURL)
	cfg.Output.SampleRows = 1

	intermediate := strings.Join([]string{
		"City,Population (2011),Population (2001),State or union territory,Ref",
		"Delhi,11034555,9879172,Delhi,[2]",
		"Bangalore,8443675,,Karnataka,[3]",
		"Pune,3124458,2538473,Maharashtra,",
	}, "\n") + "\n"
	if err := os.WriteFile(cfg.Output.IntermediatePath, []byte(intermediate), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	result, err := NewPreprocessor(cfg, NewRenderer(&out), nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.RowsBefore != 3 || result.RowsAfter != 2 {
		t.Errorf("rows before/after = %d/%d, want 3/2", result.RowsBefore, result.RowsAfter)
	}

	data, err := os.ReadFile(cfg.Output.ProcessedPath)
	if err != nil {
		t.Fatalf("read processed file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("processed file has %d lines, want 3:\n%s", len(lines), data)
	}
	if lines[1] != "Delhi,11034555,9879172,Delhi,1155383,11.70" {
		t.Errorf("unexpected Delhi row: %s", lines[1])
	}

	text := out.String()
	for _, want := range []string{"Descriptive statistics", "Rows before: 3", "Rows after:  2", "Sample of the final dataset"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPreprocessorRun_MissingInput(t *testing.T) {
	cfg := testConfig(t, model.DefaultURL)

	if _, err := NewPreprocessor(cfg, NewRenderer(&bytes.Buffer{}), nil).Run(context.Background()); err == nil {
		t.Fatal("expected error for missing intermediate file")
	}
	if _, err := os.Stat(cfg.Output.ProcessedPath); err == nil {
		t.Error("expected no processed file")
	}
}

func TestRendererError(t *testing.T) {
	var out bytes.Buffer
	NewRenderer(&out).Error(os.ErrNotExist)
	if got := out.String(); got != "An unexpected error occurred: file does not exist\n" {
		t.Errorf("Error() wrote %q", got)
	}
}
