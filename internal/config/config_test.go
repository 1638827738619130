package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "buildcalc.db", c.DatabasePath)
	assert.Equal(t, "Lusaka", c.DefaultCity)
	assert.Equal(t, "ZMW", c.Currency)
	assert.Equal(t, 2*time.Second, c.PurchaseDelay)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "buildcalc.db", cfg.DatabasePath)
	assert.Equal(t, "Lusaka", cfg.DefaultCity)
	assert.Equal(t, 2*time.Second, cfg.PurchaseDelay)
}
