package cli

import (
	"os"

	"github.com/ppiankov/citypop/internal/logger"
	"github.com/ppiankov/citypop/internal/model"
	"github.com/ppiankov/citypop/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	preprocessIn string
	processedOut string
	sampleRows   int
)

// preprocessCmd represents the preprocess command
var preprocessCmd = &cobra.Command{
	Use:   "preprocess",
	Short: "Derive change and growth columns from the intermediate CSV",
	Long: `Preprocess reads the intermediate CSV, drops the reference column and
every row with a missing value, computes "Population Change" and
"Growth Rate (%)" and writes the final CSV.

Example:
  citypop preprocess
  citypop preprocess --in cities.csv --out cities_final.csv --sample 10`,
	Args: cobra.NoArgs,
	RunE: runPreprocess,
}

func init() {
	rootCmd.AddCommand(preprocessCmd)

	preprocessCmd.Flags().StringVar(&preprocessIn, "in", model.DefaultIntermediatePath, "intermediate CSV path")
	addProcessedFlags(preprocessCmd)
}

// addProcessedFlags registers the final output flags shared by preprocess and run
func addProcessedFlags(cmd *cobra.Command) {
	defaults := model.DefaultConfig()

	cmd.Flags().StringVar(&processedOut, "out", defaults.Output.ProcessedPath, "final CSV path")
	cmd.Flags().IntVar(&sampleRows, "sample", defaults.Output.SampleRows, "rows of the final dataset to print")
}

var processedBindings = []flagBinding{
	{"out", "output.processed_path"},
	{"sample", "output.sample_rows"},
}

func runPreprocess(cmd *cobra.Command, args []string) error {
	bindings := append([]flagBinding{{"in", "output.intermediate_path"}}, processedBindings...)
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
	if _, err := pipeline.NewPreprocessor(cfg, renderer, log).Run(ctx); err != nil {
		log.Debug("preprocess failed", logger.Error(err))
		renderer.Error(err)
	}
	return nil
}
