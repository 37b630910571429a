package pipeline

import (
	"context"
	"fmt"

	"github.com/ppiankov/citypop/internal/dataset"
	"github.com/ppiankov/citypop/internal/logger"
	"github.com/ppiankov/citypop/internal/model"
)

// Preprocessor runs the second stage over the intermediate file
type Preprocessor struct {
	renderer *Renderer
	config   *model.Config
	log      logger.Logger
}

// NewPreprocessor creates a preprocessor with the given configuration
func NewPreprocessor(cfg *model.Config, renderer *Renderer, log logger.Logger) *Preprocessor {
	if log == nil {
		log = logger.NewNop()
	}
	return &Preprocessor{
		renderer: renderer,
		config:   cfg,
		log:      log.With(logger.String("stage", "preprocess")),
	}
}

// Run loads the intermediate dataset, derives the statistical columns and
// writes the processed file
func (p *Preprocessor) Run(ctx context.Context) (*dataset.Result, error) {
	in := p.config.Output.IntermediatePath
	out := p.config.Output.ProcessedPath

	ds, err := dataset.LoadIntermediate(in)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", in, err)
	}
	p.log.Info("dataset loaded", logger.String("path", in), logger.Int("records", len(ds)))

	p.renderer.Describe(dataset.Describe(ds))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := dataset.Preprocess(ds)
	p.renderer.Preprocessed(result)
	p.log.Info("records dropped", logger.Int("before", result.RowsBefore), logger.Int("after", result.RowsAfter))

	if err := dataset.SaveProcessed(out, result.Records); err != nil {
		return &result, fmt.Errorf("save processed dataset: %w", err)
	}
	p.renderer.Saved(out, len(result.Records))
	p.renderer.Sample(result.Records, p.config.Output.SampleRows)

	return &result, nil
}
