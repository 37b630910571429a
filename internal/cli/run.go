package cli

import (
	"os"

	"github.com/ppiankov/citypop/internal/logger"
	"github.com/ppiankov/citypop/internal/model"
	"github.com/ppiankov/citypop/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var intermediatePath string

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scrape and preprocess in one go",
	Long: `Run executes the scrape stage and, when it wrote the intermediate CSV
without error, the preprocess stage over that file.

Example:
  citypop run
  citypop run --intermediate raw.csv --out final.csv`,
	Args: cobra.NoArgs,
	RunE: runAll,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addSourceFlags(runCmd)
	addProcessedFlags(runCmd)

	runCmd.Flags().StringVar(&intermediatePath, "intermediate", model.DefaultIntermediatePath, "intermediate CSV path")
}

func runAll(cmd *cobra.Command, args []string) error {
	bindings := append([]flagBinding{{"intermediate", "output.intermediate_path"}}, scrapeBindings...)
	bindings = append(bindings, processedBindings...)
	cfg, err := loadConfig(viper.GetViper(), cmd, bindings)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := signalContext()
	defer cancel()

	renderer := pipeline.NewRenderer(os.Stdout)

	scraped, err := pipeline.NewScraper(cfg, renderer, log).Run(ctx)
	if err != nil {
		log.Debug("scrape failed", logger.Error(err))
		renderer.Error(err)
		return nil
	}
	if scraped.OutputPath == "" {
		return nil
	}

	if _, err := pipeline.NewPreprocessor(cfg, renderer, log).Run(ctx); err != nil {
		log.Debug("preprocess failed", logger.Error(err))
		renderer.Error(err)
	}
	return nil
}
