package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ppiankov/citypop/internal/extract"
	"github.com/ppiankov/citypop/internal/model"
)

// ErrMissingColumn is returned when an input file lacks a required column
var ErrMissingColumn = errors.New("missing column")

// WriteIntermediate writes the extracted dataset, missing populations as empty cells
func WriteIntermediate(w io.Writer, ds model.Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(model.IntermediateHeader()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range ds {
		row := []string{r.City, r.Population2011.String(), r.Population2001.String(), r.State, r.Ref}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadIntermediate reads a dataset written by WriteIntermediate. Columns are
// matched by name; Ref is optional.
func ReadIntermediate(r io.Reader) (model.Dataset, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: empty file")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range []string{model.ColCity, model.ColPopulation2011, model.ColPopulation2001, model.ColState} {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := index[name]
		if !ok {
			return ""
		}
		return rec[i]
	}

	var ds model.Dataset
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record at line %d: %w", line, err)
		}

		ds = append(ds, model.CityRecord{
			City:           field(rec, model.ColCity),
			Population2011: extract.ParsePopulation(field(rec, model.ColPopulation2011)),
			Population2001: extract.ParsePopulation(field(rec, model.ColPopulation2001)),
			State:          field(rec, model.ColState),
			Ref:            field(rec, model.ColRef),
		})
	}

	return ds, nil
}

// WriteProcessed writes the preprocessed dataset with the derived columns
func WriteProcessed(w io.Writer, records []model.ProcessedRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(model.ProcessedHeader()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.City,
			strconv.FormatInt(r.Population2011, 10),
			strconv.FormatInt(r.Population2001, 10),
			r.State,
			strconv.FormatInt(r.PopulationChange, 10),
			strconv.FormatFloat(r.GrowthRatePercent, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveIntermediate writes the dataset to path
func SaveIntermediate(path string, ds model.Dataset) error {
	return writeFile(path, func(w io.Writer) error { return WriteIntermediate(w, ds) })
}

// LoadIntermediate reads the dataset from path
func LoadIntermediate(path string) (model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return ReadIntermediate(f)
}

// SaveProcessed writes the processed records to path
func SaveProcessed(path string, records []model.ProcessedRecord) error {
	return writeFile(path, func(w io.Writer) error { return WriteProcessed(w, records) })
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	return write(f)
}
