package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Scan    ScanConfig    `envconfig:"SCAN"`
	Output  OutputConfig  `envconfig:"OUTPUT"`
	Logging LoggingConfig `envconfig:"LOGGING"`
	Prompt  PromptConfig  `envconfig:"PROMPT"`
}

// ScanConfig controls input discovery
type ScanConfig struct {
	// Extensions is the allow-list of input file extensions, lowercased,
	// including the leading dot. Files with any other extension are ignored.
	Extensions []string `envconfig:"EXTENSIONS"`
}

// OutputConfig controls where and how artifacts are written
type OutputConfig struct {
	Dir       string `envconfig:"DIR"`
	BOMPrefix bool   `envconfig:"BOM_PREFIX"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `envconfig:"LEVEL"`
	Format   string `envconfig:"FORMAT"`
	Output   string `envconfig:"OUTPUT"`
	FilePath string `envconfig:"FILE_PATH"`
}

// PromptConfig controls the interactive pause before exit
type PromptConfig struct {
	// Enabled pauses for a keypress once processing finishes. Disable for
	// scripted runs and tests.
	Enabled bool `envconfig:"ENABLED"`
}

// fileConfig mirrors Config for YAML decoding. Bool fields are pointers so an
// absent key is distinguishable from an explicit false.
type fileConfig struct {
	Scan struct {
		Extensions []string `yaml:"extensions"`
	} `yaml:"scan"`
	Output struct {
		Dir       string `yaml:"dir"`
		BOMPrefix *bool  `yaml:"bom_prefix"`
	} `yaml:"output"`
	Logging struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"logging"`
	Prompt struct {
		Enabled *bool `yaml:"enabled"`
	} `yaml:"prompt"`
}

// Load assembles the configuration in three layers: built-in defaults, then
// the optional config.yaml file, then TABLEMERGE_* environment variables.
// Later layers win, and a layer only touches the fields it explicitly sets.
func Load() (*Config, error) {
	cfg := Default()

	if configFile := getConfigFilePath(); configFile != "" {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		applyFile(cfg, fileCfg)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*fileConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyFile overlays the file's explicitly-set values onto cfg
func applyFile(cfg *Config, file *fileConfig) {
	if len(file.Scan.Extensions) > 0 {
		cfg.Scan.Extensions = file.Scan.Extensions
	}
	if file.Output.Dir != "" {
		cfg.Output.Dir = file.Output.Dir
	}
	if file.Output.BOMPrefix != nil {
		cfg.Output.BOMPrefix = *file.Output.BOMPrefix
	}
	if file.Logging.Level != "" {
		cfg.Logging.Level = file.Logging.Level
	}
	if file.Logging.Format != "" {
		cfg.Logging.Format = file.Logging.Format
	}
	if file.Logging.Output != "" {
		cfg.Logging.Output = file.Logging.Output
	}
	if file.Logging.FilePath != "" {
		cfg.Logging.FilePath = file.Logging.FilePath
	}
	if file.Prompt.Enabled != nil {
		cfg.Prompt.Enabled = *file.Prompt.Enabled
	}
}

// applyEnv overlays TABLEMERGE_* environment variables onto cfg. Values are
// parsed by envconfig; a variable overrides the lower layers only when it is
// actually present in the environment.
func applyEnv(cfg *Config) error {
	var env Config
	if err := envconfig.Process("TABLEMERGE", &env); err != nil {
		return err
	}

	if envSet("TABLEMERGE_SCAN_EXTENSIONS") {
		cfg.Scan.Extensions = env.Scan.Extensions
	}
	if envSet("TABLEMERGE_OUTPUT_DIR") {
		cfg.Output.Dir = env.Output.Dir
	}
	if envSet("TABLEMERGE_OUTPUT_BOM_PREFIX") {
		cfg.Output.BOMPrefix = env.Output.BOMPrefix
	}
	if envSet("TABLEMERGE_LOGGING_LEVEL") {
		cfg.Logging.Level = env.Logging.Level
	}
	if envSet("TABLEMERGE_LOGGING_FORMAT") {
		cfg.Logging.Format = env.Logging.Format
	}
	if envSet("TABLEMERGE_LOGGING_OUTPUT") {
		cfg.Logging.Output = env.Logging.Output
	}
	if envSet("TABLEMERGE_LOGGING_FILE_PATH") {
		cfg.Logging.FilePath = env.Logging.FilePath
	}
	if envSet("TABLEMERGE_PROMPT_ENABLED") {
		cfg.Prompt.Enabled = env.Prompt.Enabled
	}

	return nil
}

func envSet(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

// validate validates the configuration and normalizes bad values
func (c *Config) validate() error {
	if len(c.Scan.Extensions) == 0 {
		return fmt.Errorf("at least one input extension must be configured")
	}
	for i, ext := range c.Scan.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("invalid extension %q: must start with a dot", ext)
		}
		c.Scan.Extensions[i] = ext
	}

	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}

	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		c.Logging.Format = "text"
	}

	switch c.Logging.Output {
	case "stdout", "file", "both":
	default:
		c.Logging.Output = "stdout"
	}

	if c.Logging.Output != "stdout" && c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/tablemerge.log"
	}

	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	// Check for config file in common locations
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			Extensions: []string{".csv", ".tsv", ".xlsx", ".xlsm", ".xltx", ".xltm"},
		},
		Output: OutputConfig{
			Dir:       ".",
			BOMPrefix: true,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "stdout",
			FilePath: "logs/tablemerge.log",
		},
		Prompt: PromptConfig{
			Enabled: true,
		},
	}
}
