package config

// Config holds runtime settings for the Meetly CLI.
//
// Fields:
//   - StorePath: path of the flat-file account store.
//   - ExportDir: directory where iCalendar exports are written.
type Config struct {
	StorePath string
	ExportDir string
}

// LoadDefaults populates c with sensible defaults. The store file name
// follows the historical convention of the account file.
func (c *Config) LoadDefaults() {
	c.StorePath = "usuarios.csv"
	c.ExportDir = "."
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
