// Package config loads the runtime settings for the UniCaronas terminal
// client. Sources are layered, later ones taking precedence:
// defaults → environment (.env supported) → JSON file → command-line flags.
package config

// Config holds runtime settings for the client.
type Config struct {
	// DatabasePath is the path of the local SQLite database file holding
	// all app state.
	DatabasePath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "unicaronas.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given with -c/-config) and
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
