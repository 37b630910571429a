package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/ppiankov/citypop/internal/logger"
	"github.com/ppiankov/citypop/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is overridden at build time with -ldflags "-X .../cli.version=..."
var version = "v0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "citypop",
	Short: "citypop - India city population scraper and preprocessor",
	Long: `citypop extracts the city population tables from the Wikipedia article
"List of cities in India by population", normalizes them into a CSV
dataset and derives population change and growth rate columns.

The work happens in two stages with a file handoff:
  scrape      fetch the page and write the intermediate CSV
  preprocess  read the intermediate CSV and write the final CSV
  run         both stages back to back`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("citypop %s\n", version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.citypop/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(filepath.Join(home, ".citypop"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	configureEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// configureEnv maps CITYPOP_SECTION_KEY variables onto section.key
func configureEnv(v *viper.Viper) {
	v.SetEnvPrefix("CITYPOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// setDefaults registers every configuration key so env variables and
// config file values are picked up by Unmarshal
func setDefaults(v *viper.Viper, cfg *model.Config) {
	v.SetDefault("source.url", cfg.Source.URL)
	v.SetDefault("source.user_agent", cfg.Source.UserAgent)
	v.SetDefault("source.timeout", cfg.Source.Timeout)
	v.SetDefault("source.max_body_bytes", cfg.Source.MaxBodyBytes)
	v.SetDefault("source.insecure_tls", cfg.Source.InsecureTLS)
	v.SetDefault("source.respect_robots", cfg.Source.RespectRobots)
	v.SetDefault("source.http_proxy", cfg.Source.HTTPProxy)
	v.SetDefault("source.https_proxy", cfg.Source.HTTPSProxy)

	v.SetDefault("extract.table_classes", cfg.Extract.TableClasses)
	v.SetDefault("extract.max_tables", cfg.Extract.MaxTables)
	v.SetDefault("extract.min_cells", cfg.Extract.MinCells)

	v.SetDefault("output.intermediate_path", cfg.Output.IntermediatePath)
	v.SetDefault("output.processed_path", cfg.Output.ProcessedPath)
	v.SetDefault("output.sample_rows", cfg.Output.SampleRows)

	v.SetDefault("cache.enabled", cfg.Cache.Enabled)
	v.SetDefault("cache.dir", cfg.Cache.Dir)
	v.SetDefault("cache.memory_ttl", cfg.Cache.MemoryTTL)
	v.SetDefault("cache.disk_ttl", cfg.Cache.DiskTTL)

	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
}

// flagBinding maps a command flag onto a configuration key
type flagBinding struct {
	flag string
	key  string
}

// loadConfig resolves the configuration for cmd: flags, then env, then the
// config file, then defaults. Flags are bound here rather than in init so
// commands can bind different flags to the same key.
func loadConfig(v *viper.Viper, cmd *cobra.Command, bindings []flagBinding) (*model.Config, error) {
	cfg := model.DefaultConfig()
	setDefaults(v, cfg)

	for _, b := range bindings {
		if err := v.BindPFlag(b.key, cmd.Flags().Lookup(b.flag)); err != nil {
			return nil, fmt.Errorf("bind --%s: %w", b.flag, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Output.Verbose = v.GetBool("verbose")
	if cfg.Output.Verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// newLogger builds the diagnostic logger; it writes to stderr
func newLogger(cfg model.LogConfig) (logger.Logger, error) {
	return logger.New(logger.Config{
		Level:       cfg.Level,
		Format:      cfg.Format,
		OutputPaths: []string{"stderr"},
	})
}

// signalContext is canceled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
