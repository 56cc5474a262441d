package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/spalter/task-printer/internal/domain/task"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig
	Log     LogConfig
	HTTP    HTTPConfig
	Printer PrinterConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// PrinterConfig holds the default print target. Per-request values in
// a print job always win over these.
type PrinterConfig struct {
	Address        string
	Port           int
	Codepage       string
	Device         string
	BaudRate       int
	ConnectTimeout time.Duration
	WriteTimeout   time.Duration
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with TASKPRINTER_ prefix (e.g., TASKPRINTER_PRINTER_ADDRESS)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	// Set config file settings
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/taskprinter")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Enable environment variable override
	v.SetEnvPrefix("TASKPRINTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Build config struct
	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:  v.GetDuration("http.read_timeout"),
			WriteTimeout: v.GetDuration("http.write_timeout"),
			IdleTimeout:  v.GetDuration("http.idle_timeout"),
		},
		Printer: PrinterConfig{
			Address:        v.GetString("printer.address"),
			Port:           v.GetInt("printer.port"),
			Codepage:       v.GetString("printer.codepage"),
			Device:         v.GetString("printer.device"),
			BaudRate:       v.GetInt("printer.baud_rate"),
			ConnectTimeout: v.GetDuration("printer.connect_timeout"),
			WriteTimeout:   v.GetDuration("printer.write_timeout"),
		},
	}

	// Apply defaults for empty values
	applyDefaults(cfg)

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "taskprinter"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "3000"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.Printer.Address == "" {
		cfg.Printer.Address = task.DefaultAddress
	}
	if cfg.Printer.Port == 0 {
		cfg.Printer.Port = task.DefaultPort
	}
	if cfg.Printer.Codepage == "" {
		cfg.Printer.Codepage = task.DefaultCodepage.String()
	}
	if cfg.Printer.BaudRate == 0 {
		cfg.Printer.BaudRate = 9600
	}
	if cfg.Printer.ConnectTimeout == 0 {
		cfg.Printer.ConnectTimeout = 5 * time.Second
	}
	if cfg.Printer.WriteTimeout == 0 {
		cfg.Printer.WriteTimeout = 10 * time.Second
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Printer.Port < 0 || c.Printer.Port > 65535 {
		return fmt.Errorf("printer.port must be between 0 and 65535, got %d", c.Printer.Port)
	}
	if c.Printer.BaudRate <= 0 {
		return fmt.Errorf("printer.baud_rate must be positive, got %d", c.Printer.BaudRate)
	}
	if c.Printer.ConnectTimeout < 0 || c.Printer.WriteTimeout < 0 {
		return fmt.Errorf("printer timeouts cannot be negative")
	}
	return nil
}

// Defaults returns the printer target defaults applied to every job
// that omits a field.
func (c *Config) Defaults() task.Defaults {
	return task.Defaults{
		Address:  c.Printer.Address,
		Port:     c.Printer.Port,
		Codepage: c.Printer.Codepage,
		Device:   c.Printer.Device,
	}
}
