package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "taskprinter", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "3000", cfg.App.Port)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "stdout", cfg.Log.Output)

	assert.Equal(t, "taskbob", cfg.Printer.Address)
	assert.Equal(t, 9100, cfg.Printer.Port)
	assert.Equal(t, "PC850", cfg.Printer.Codepage)
	assert.Empty(t, cfg.Printer.Device)
	assert.Equal(t, 9600, cfg.Printer.BaudRate)
	assert.Equal(t, 5*time.Second, cfg.Printer.ConnectTimeout)
	assert.Equal(t, 10*time.Second, cfg.Printer.WriteTimeout)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("TASKPRINTER_PRINTER_ADDRESS", "192.168.1.50")
	t.Setenv("TASKPRINTER_PRINTER_PORT", "9101")
	t.Setenv("TASKPRINTER_PRINTER_CODEPAGE", "WPC1252")
	t.Setenv("TASKPRINTER_LOG_LEVEL", "debug")
	t.Setenv("TASKPRINTER_APP_PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.50", cfg.Printer.Address)
	assert.Equal(t, 9101, cfg.Printer.Port)
	assert.Equal(t, "WPC1252", cfg.Printer.Codepage)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "8080", cfg.App.Port)
}

func TestLoad_InvalidPrinterPort(t *testing.T) {
	t.Setenv("TASKPRINTER_PRINTER_PORT", "70000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "printer.port")
}

func TestConfig_Defaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	defaults := cfg.Defaults()
	assert.Equal(t, "taskbob", defaults.Address)
	assert.Equal(t, 9100, defaults.Port)
	assert.Equal(t, "PC850", defaults.Codepage)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "negative printer port",
			mutate:  func(c *Config) { c.Printer.Port = -1 },
			wantErr: true,
		},
		{
			name:    "zero baud rate",
			mutate:  func(c *Config) { c.Printer.BaudRate = 0 },
			wantErr: true,
		},
		{
			name:    "negative connect timeout",
			mutate:  func(c *Config) { c.Printer.ConnectTimeout = -time.Second },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			applyDefaults(cfg)
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
