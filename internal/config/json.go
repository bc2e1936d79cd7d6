package config

import (
	"encoding/json"
	"os"

	"github.com/meetly/meetly/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed
// values are copied into the runtime Config.
type jsonConfig struct {
	StorePath string `json:"store_path"`
	ExportDir string `json:"export_dir"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via
// flagx.JsonConfigFlags; when neither is given, no JSON is loaded. Empty
// JSON fields keep the values already in cfg. Read or unmarshal errors
// panic: a config file that was explicitly requested must be usable.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later
// stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.ExportDir != "" {
		cfg.ExportDir = jc.ExportDir
	}
}
