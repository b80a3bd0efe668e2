package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Validate_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero servers", func(c *Config) { c.ServerCount = 0 }, "server count"},
		{"negative servers", func(c *Config) { c.ServerCount = -1 }, "server count"},
		{"negative rate", func(c *Config) { c.ArrivalRate = -0.1 }, "arrival rate"},
		{"empty catalog", func(c *Config) { c.Catalog = nil }, "catalog"},
		{"demand above 100", func(c *Config) { c.Catalog = []RequestType{{Name: "x", CPU: 120, Memory: 10}} }, "out of range"},
		{"negative demand", func(c *Config) { c.Catalog = []RequestType{{Name: "x", CPU: 10, Memory: -1}} }, "out of range"},
		{"inverted duration range", func(c *Config) { c.DurationMin = 10; c.DurationMax = 10 }, "duration range"},
		{"negative duration min", func(c *Config) { c.DurationMin = -1 }, "duration range"},
		{"negative history capacity", func(c *Config) { c.HistoryCapacity = -1 }, "history capacity"},
		{"unknown policy", func(c *Config) { c.Policy = "fastest-first" }, "unknown scheduling policy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Validate_AcceptsZeroRate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ArrivalRate = 0
	assert.NoError(t, cfg.Validate())
}
