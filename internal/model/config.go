package model

import "time"

// Config holds the complete citypop configuration
type Config struct {
	Source  SourceConfig  `yaml:"source" mapstructure:"source"`
	Extract ExtractConfig `yaml:"extract" mapstructure:"extract"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Cache   CacheConfig   `yaml:"cache" mapstructure:"cache"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// SourceConfig controls how the source page is fetched
type SourceConfig struct {
	URL           string        `yaml:"url" mapstructure:"url"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	InsecureTLS   bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
	HTTPProxy     string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy    string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
}

// ExtractConfig controls table location and row extraction
type ExtractConfig struct {
	TableClasses []string `yaml:"table_classes" mapstructure:"table_classes"` // A table matches if it carries any of these
	MaxTables    int      `yaml:"max_tables" mapstructure:"max_tables"`
	MinCells     int      `yaml:"min_cells" mapstructure:"min_cells"`
}

// OutputConfig names the files each stage reads and writes
type OutputConfig struct {
	IntermediatePath string `yaml:"intermediate_path" mapstructure:"intermediate_path"`
	ProcessedPath    string `yaml:"processed_path" mapstructure:"processed_path"`
	SampleRows       int    `yaml:"sample_rows" mapstructure:"sample_rows"`
	Verbose          bool   `yaml:"-" mapstructure:"verbose"`
}

// CacheConfig controls the optional page cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// LogConfig controls diagnostic logging
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // console or json
}

// Defaults for the India city population source
const (
	DefaultURL              = "https://en.wikipedia.org/wiki/List_of_cities_in_India_by_population"
	DefaultUserAgent        = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultIntermediatePath = "india_cities_population_cleaned_final.csv"
	DefaultProcessedPath    = "india_cities_preprocessed.csv"
)

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			URL:          DefaultURL,
			UserAgent:    DefaultUserAgent,
			Timeout:      30 * time.Second,
			MaxBodyBytes: 10_000_000,
		},
		Extract: ExtractConfig{
			TableClasses: []string{"wikitable", "sortable"},
			MaxTables:    2,
			MinCells:     5,
		},
		Output: OutputConfig{
			IntermediatePath: DefaultIntermediatePath,
			ProcessedPath:    DefaultProcessedPath,
			SampleRows:       5,
		},
		Cache: CacheConfig{
			Dir:       ".citypop-cache",
			MemoryTTL: 10 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}
