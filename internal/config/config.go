package config

import (
	"time"

	"github.com/zedbuild/buildcalc/internal/prices"
)

// Config holds runtime settings for the BuildCalc CLI.
//
// Fields:
//   - DatabasePath: location of the local SQLite database file.
//   - DefaultCity: city whose price table seeds new databases.
//   - Currency: currency code used when printing costs.
//   - PurchaseDelay: how long the simulated purchase flow takes.
//
// Units: PurchaseDelay is a time.Duration (e.g., 2*time.Second).
type Config struct {
	DatabasePath  string
	DefaultCity   string
	Currency      string
	PurchaseDelay time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "buildcalc.db"
	c.DefaultCity = "Lusaka"
	c.Currency = prices.Currency
	c.PurchaseDelay = 2 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
