// Package config loads the domino CLI configuration.
//
// Sources, lowest to highest precedence: built-in defaults, a YAML file
// (--config, or domino.yaml / domino.yml in the working directory),
// DOMINO_* environment variables, and flags explicitly set on the
// command line.
package config

// Config holds all CLI configuration options.
type Config struct {
	Output      string `koanf:"output"`
	LogLevel    string `koanf:"log_level"`
	Precheck    bool   `koanf:"precheck"`
	Trace       bool   `koanf:"trace"`
	NoColor     bool   `koanf:"no_color"`
	Addr        string `koanf:"addr"`
	HistoryFile string `koanf:"history_file"`
}

// Default configuration values.
const (
	DefaultOutput   = "text"
	DefaultLogLevel = "warn"
	DefaultAddr     = ":8080"
	EnvPrefix       = "DOMINO_"
)

// Output formats accepted by the renderer.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputTable = "table"
)

// configNames are the file names searched when --config is not given.
var configNames = []string{"domino.yaml", "domino.yml"}

// Default returns a Config populated with defaults only.
func Default() *Config {
	return &Config{
		Output:   DefaultOutput,
		LogLevel: DefaultLogLevel,
		Addr:     DefaultAddr,
	}
}
