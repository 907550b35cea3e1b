package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Cleaning CleaningConfig `yaml:"cleaning" envconfig:"CLEANING"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Models   ModelsConfig   `yaml:"models" envconfig:"MODELS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/app.log"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	BaseDir string `yaml:"base_dir" envconfig:"BASE_DIR"`
	DataDir string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
	LogsDir string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs"`
}

// CleaningConfig controls the record cleaning pipeline bounds
type CleaningConfig struct {
	MagMin   float64 `yaml:"mag_min" envconfig:"MAG_MIN" default:"0"`
	MagMax   float64 `yaml:"mag_max" envconfig:"MAG_MAX" default:"10"`
	DepthMin float64 `yaml:"depth_min" envconfig:"DEPTH_MIN" default:"0"`
	DepthMax float64 `yaml:"depth_max" envconfig:"DEPTH_MAX" default:"700"`
}

// AnalysisConfig controls descriptive analysis output
type AnalysisConfig struct {
	TopRegions       int     `yaml:"top_regions" envconfig:"TOP_REGIONS" default:"20"`
	TopEvents        int     `yaml:"top_events" envconfig:"TOP_EVENTS" default:"10"`
	HighMagThreshold float64 `yaml:"high_mag_threshold" envconfig:"HIGH_MAG_THRESHOLD" default:"7.0"`
}

// ModelsConfig controls the analytical model runs
type ModelsConfig struct {
	Clusters      int `yaml:"clusters" envconfig:"CLUSTERS" default:"5"`
	MaxElbowK     int `yaml:"max_elbow_k" envconfig:"MAX_ELBOW_K" default:"10"`
	PCAComponents int `yaml:"pca_components" envconfig:"PCA_COMPONENTS" default:"3"`
	SampleSize    int `yaml:"sample_size" envconfig:"SAMPLE_SIZE" default:"100000"`
	Seed          int `yaml:"seed" envconfig:"SEED" default:"42"`
}

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("QUAKE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Logging.Level == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Output == "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if envConfig.Logging.FilePath == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if envConfig.Paths.BaseDir == "" {
		envConfig.Paths.BaseDir = fileConfig.Paths.BaseDir
	}
	if envConfig.Analysis.TopRegions == 0 {
		envConfig.Analysis.TopRegions = fileConfig.Analysis.TopRegions
	}
	if envConfig.Models.Clusters == 0 {
		envConfig.Models.Clusters = fileConfig.Models.Clusters
	}
	return envConfig
}

// validate checks the configuration for invalid values
func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Cleaning.MagMin > c.Cleaning.MagMax {
		return fmt.Errorf("magnitude bounds inverted: min=%.2f max=%.2f",
			c.Cleaning.MagMin, c.Cleaning.MagMax)
	}
	if c.Cleaning.DepthMin > c.Cleaning.DepthMax {
		return fmt.Errorf("depth bounds inverted: min=%.2f max=%.2f",
			c.Cleaning.DepthMin, c.Cleaning.DepthMax)
	}

	if c.Models.Clusters < 1 {
		return fmt.Errorf("clusters must be at least 1, got %d", c.Models.Clusters)
	}
	if c.Models.PCAComponents < 1 {
		return fmt.Errorf("pca_components must be at least 1, got %d", c.Models.PCAComponents)
	}

	return nil
}

// getConfigFilePath returns the configuration file path
func getConfigFilePath() string {
	if path := os.Getenv("QUAKE_CONFIG_FILE"); path != "" {
		return path
	}
	return filepath.Join(".", "config.yaml")
}
