package cli

import (
	"os"
	"time"

	"github.com/ppiankov/citypop/internal/logger"
	"github.com/ppiankov/citypop/internal/model"
	"github.com/ppiankov/citypop/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	sourceURL     string
	userAgent     string
	timeout       time.Duration
	maxBytes      int64
	scrapeOut     string
	maxTables     int
	insecureTLS   bool
	useCache      bool
	respectRobots bool
	httpProxy     string
	httpsProxy    string
)

var scrapeBindings = []flagBinding{
	{"url", "source.url"},
	{"ua", "source.user_agent"},
	{"timeout", "source.timeout"},
	{"max-bytes", "source.max_body_bytes"},
	{"insecure", "source.insecure_tls"},
	{"respect-robots", "source.respect_robots"},
	{"http-proxy", "source.http_proxy"},
	{"https-proxy", "source.https_proxy"},
	{"max-tables", "extract.max_tables"},
	{"cache", "cache.enabled"},
}

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Fetch the population tables and write the intermediate CSV",
	Long: `Scrape fetches the source page, locates the city population tables,
extracts and cleans their rows and writes them to the intermediate CSV.

Population values that cannot be read as integers are written as empty
cells.

Example:
  citypop scrape
  citypop scrape --out cities.csv --max-tables 3
  citypop scrape --cache --respect-robots`,
	Args: cobra.NoArgs,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
	addSourceFlags(scrapeCmd)

	scrapeCmd.Flags().StringVar(&scrapeOut, "out", model.DefaultIntermediatePath, "intermediate CSV path")
}

// addSourceFlags registers the fetch and extraction flags shared by scrape and run
func addSourceFlags(cmd *cobra.Command) {
	defaults := model.DefaultConfig()

	cmd.Flags().StringVar(&sourceURL, "url", defaults.Source.URL, "source page URL")
	cmd.Flags().StringVar(&userAgent, "ua", defaults.Source.UserAgent, "HTTP User-Agent")
	cmd.Flags().DurationVar(&timeout, "timeout", defaults.Source.Timeout, "fetch timeout")
	cmd.Flags().Int64Var(&maxBytes, "max-bytes", defaults.Source.MaxBodyBytes, "max response bytes to read")
	cmd.Flags().IntVar(&maxTables, "max-tables", defaults.Extract.MaxTables, "number of data tables to process")
	cmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification")
	cmd.Flags().BoolVar(&useCache, "cache", false, "cache the fetched page on disk")
	cmd.Flags().BoolVar(&respectRobots, "respect-robots", false, "honor robots.txt before fetching")
	cmd.Flags().StringVar(&httpProxy, "http-proxy", "", "proxy for http URLs")
	cmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "proxy for https URLs")
}

func runScrape(cmd *cobra.Command, args []string) error {
	bindings := append([]flagBinding{{"out", "output.intermediate_path"}}, scrapeBindings...)
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
	if _, err := pipeline.NewScraper(cfg, renderer, log).Run(ctx); err != nil {
		log.Debug("scrape failed", logger.Error(err))
		renderer.Error(err)
	}
	return nil
}
