// Package config provides configuration loading and defaults for wakaterm.
package config

// DefaultLogDir is the default location of the activity log files.
const DefaultLogDir = "~/.local/share/wakaterm-logs"

// DefaultConfigDir is the default location for wakaterm configuration.
const DefaultConfigDir = "~/.config/wakaterm"

// DefaultIgnoreFile is the default ignore pattern file.
const DefaultIgnoreFile = "~/.config/wakaterm/ignore"

// DefaultDatabase is the default path of the SQLite trend database.
const DefaultDatabase = "~/.config/wakaterm/wakaterm.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultRetentionDays is how many days of log files cleanup keeps.
const DefaultRetentionDays = 30

// DefaultReporter holds the default external reporting settings.
var DefaultReporter = Reporter{
	Enabled:        true,
	CLIPath:        "wakatime-cli",
	TimeoutSeconds: 30,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
}
