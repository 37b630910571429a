package pipeline

import (
	"context"
	"fmt"

	"github.com/ppiankov/citypop/internal/dataset"
	"github.com/ppiankov/citypop/internal/extract"
	"github.com/ppiankov/citypop/internal/extract/adapters"
	"github.com/ppiankov/citypop/internal/logger"
	"github.com/ppiankov/citypop/internal/model"
)

// Scraper runs the first stage: fetch, locate, extract, merge, normalize, save
type Scraper struct {
	fetcher   *Fetcher
	registry  *adapters.Registry
	extractor *extract.RowExtractor
	renderer  *Renderer
	config    *model.Config
	log       logger.Logger
}

// NewScraper creates a scraper with the given configuration
func NewScraper(cfg *model.Config, renderer *Renderer, log logger.Logger) *Scraper {
	if log == nil {
		log = logger.NewNop()
	}
	log = log.With(logger.String("stage", "scrape"))

	return &Scraper{
		fetcher:   NewFetcher(cfg.Source, cfg.Cache, log),
		registry:  adapters.NewRegistry(),
		extractor: extract.NewRowExtractor(cfg.Extract.MinCells, log),
		renderer:  renderer,
		config:    cfg,
		log:       log,
	}
}

// ScrapeResult describes what the scrape stage produced
type ScrapeResult struct {
	Adapter     string
	TablesFound int
	Tables      []extract.TableResult
	Dataset     model.Dataset
	Stats       extract.NormalizeStats
	OutputPath  string // empty when no file was written
}

// Run executes the scrape stage. A fetch or parse failure returns before
// anything is written. If extraction is interrupted after some tables were
// processed, their records are still written and the interruption is
// returned alongside the result.
func (s *Scraper) Run(ctx context.Context) (*ScrapeResult, error) {
	s.renderer.Step("Attempting to scrape data...")

	page, err := s.fetcher.Fetch(ctx, s.config.Source.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	doc, err := adapters.ParseHTML(page.HTML)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	classes := s.config.Extract.TableClasses
	adapter := s.registry.FindAdapter(page.FinalURL)
	found := len(adapter.LocateTables(doc, classes, 0))
	selected := adapter.LocateTables(doc, classes, s.config.Extract.MaxTables)

	result := &ScrapeResult{Adapter: adapter.Name(), TablesFound: found}
	s.renderer.TablesFound(found, len(selected), adapter.Name())
	s.log.Info("tables located",
		logger.String("adapter", adapter.Name()),
		logger.Strings("classes", classes),
		logger.Bool("from_cache", page.FromCache),
		logger.Int("found", found),
		logger.Int("selected", len(selected)))

	var extractErr error
	for i, table := range selected {
		if err := ctx.Err(); err != nil {
			extractErr = fmt.Errorf("extraction interrupted after %d of %d tables: %w", i, len(selected), err)
			break
		}
		res := s.extractor.ExtractTable(i, table)
		result.Tables = append(result.Tables, res)
		s.log.Debug("table extracted", logger.Int("table", i+1), logger.Int("rows", len(res.Rows)), logger.Int("skipped", res.Skipped))
	}
	if len(result.Tables) > 0 {
		s.renderer.TablesExtracted(result.Tables)
	}

	rows := extract.Merge(result.Tables)
	if len(rows) == 0 {
		s.renderer.NoData()
		return result, extractErr
	}

	s.renderer.Step("Combining and cleaning the scraped data...")
	result.Dataset, result.Stats = extract.Normalize(rows)
	s.renderer.Converted(result.Stats)

	path := s.config.Output.IntermediatePath
	if err := dataset.SaveIntermediate(path, result.Dataset); err != nil {
		return result, fmt.Errorf("save dataset: %w", err)
	}
	result.OutputPath = path
	s.renderer.Saved(path, len(result.Dataset))

	return result, extractErr
}
