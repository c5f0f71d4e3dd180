package config

import (
	"encoding/json"
	"os"

	"github.com/nmorozs/quizadmin/internal/flagx"
	"github.com/nmorozs/quizadmin/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds.
type JsonConfig struct {
	BaseURL     string         `json:"base_url"`
	HTTPTimeout timex.Duration `json:"http_timeout"`
	TokenFile   string         `json:"token_file"`
	LogLevel    *int           `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flag. With no such flag it is a no-op. Read or unmarshal
// errors panic; the entrypoint treats a broken config file as fatal.
// Zero-value JSON fields leave the current config values untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.HTTPTimeout.Duration != 0 {
		cfg.HTTPTimeout = jc.HTTPTimeout.Duration
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
