package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/zedbuild/buildcalc/internal/flagx"
	"github.com/zedbuild/buildcalc/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "2s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabasePath  string         `json:"database_path"`
	DefaultCity   string         `json:"default_city"`
	Currency      string         `json:"currency"`
	PurchaseDelay timex.Duration `json:"purchase_delay"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via
// flagx.JsonConfigFlags(); when empty, no JSON is loaded. Only fields
// present in the file override the current values. Panics on read or
// unmarshal errors (caller should recover if desired).
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

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.DefaultCity != "" {
		cfg.DefaultCity = jc.DefaultCity
	}
	if jc.Currency != "" {
		cfg.Currency = jc.Currency
	}
	if jc.PurchaseDelay.Duration != 0 {
		cfg.PurchaseDelay = time.Duration(jc.PurchaseDelay.Duration)
	}
}
