package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level wakaterm configuration.
type Config struct {
	LogDir        string   `mapstructure:"log_dir"`
	IgnoreFile    string   `mapstructure:"ignore_file"`
	Database      string   `mapstructure:"database"`
	RetentionDays int      `mapstructure:"retention_days"`
	Reporter      Reporter `mapstructure:"reporter"`
	Output        Output   `mapstructure:"output"`
}

// Reporter configures the external time-tracking client.
type Reporter struct {
	Enabled        bool   `mapstructure:"enabled"`
	CLIPath        string `mapstructure:"cli_path"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
}

// Timeout returns the reporter timeout as a duration.
func (r Reporter) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. A missing config file is
// not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log_dir", DefaultLogDir)
	v.SetDefault("ignore_file", DefaultIgnoreFile)
	v.SetDefault("database", DefaultDatabase)
	v.SetDefault("retention_days", DefaultRetentionDays)
	v.SetDefault("reporter.enabled", DefaultReporter.Enabled)
	v.SetDefault("reporter.cli_path", DefaultReporter.CLIPath)
	v.SetDefault("reporter.timeout_seconds", DefaultReporter.TimeoutSeconds)
	v.SetDefault("output.color", DefaultOutput.Color)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.LogDir = expandPath(cfg.LogDir)
	cfg.IgnoreFile = expandPath(cfg.IgnoreFile)
	cfg.Database = expandPath(cfg.Database)

	return &cfg, nil
}

// Defaults returns a Config with every default applied and paths expanded,
// for callers that must proceed even when Load fails.
func Defaults() *Config {
	return &Config{
		LogDir:        expandPath(DefaultLogDir),
		IgnoreFile:    expandPath(DefaultIgnoreFile),
		Database:      expandPath(DefaultDatabase),
		RetentionDays: DefaultRetentionDays,
		Reporter:      DefaultReporter,
		Output:        DefaultOutput,
	}
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
