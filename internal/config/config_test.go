package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a config that passes Validate.
func validConfig() *Config {
	return &Config{
		Server:  ServerConfig{Port: 8080, ShutdownTimeout: time.Second, RequestTimeout: time.Minute},
		Source:  SourceConfig{Kind: SourceOpensheet, BaseURL: "https://opensheet.elk.sh", SheetID: "abc"},
		Rate:    RateLimitConfig{Enabled: true, RequestsPerMinute: 100},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 90*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, SourceOpensheet, cfg.Source.Kind)
	assert.Equal(t, "https://opensheet.elk.sh", cfg.Source.BaseURL)
	assert.NotEmpty(t, cfg.Source.SheetID)
	assert.Equal(t, 100, cfg.Rate.RequestsPerMinute)
	assert.True(t, cfg.Security.EnableCSP)
}

func TestLoad_OverrideDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SHEET_ID", "my-sheet")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "my-sheet", cfg.Source.SheetID)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Rate.Enabled)
}

func TestLoad_XLSXSource(t *testing.T) {
	t.Setenv("SOURCE_KIND", " XLSX ")
	t.Setenv("SOURCE_XLSX_PATH", "/data/dashboard.xlsx")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, SourceXLSX, cfg.Source.Kind)
	assert.Equal(t, "/data/dashboard.xlsx", cfg.Source.XLSXPath)
}

func TestLoad_XLSXSourceMissingPath(t *testing.T) {
	t.Setenv("SOURCE_KIND", "xlsx")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SOURCE_XLSX_PATH")
}

func TestLoad_Duration(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "45s")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "1m30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 45*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 90*time.Second, cfg.Server.RequestTimeout)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("SERVER_PORT", "eighty")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_PORT")
}

func TestLoad_CommaSeparatedSlice(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 172.16.0.0/12 , 192.168.0.0/16")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}, cfg.Security.TrustedProxies)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "invalid port", mutate: func(c *Config) { c.Server.Port = 99999 }, wantErr: "SERVER_PORT"},
		{name: "unknown source", mutate: func(c *Config) { c.Source.Kind = "csv" }, wantErr: "SOURCE_KIND"},
		{name: "missing sheet id", mutate: func(c *Config) { c.Source.SheetID = "" }, wantErr: "SHEET_ID"},
		{name: "relative base url", mutate: func(c *Config) { c.Source.BaseURL = "opensheet" }, wantErr: "SOURCE_BASE_URL"},
		{name: "invalid log level", mutate: func(c *Config) { c.Logging.Level = "verbose" }, wantErr: "LOG_LEVEL"},
		{name: "invalid log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "LOG_FORMAT"},
		{name: "zero rate", mutate: func(c *Config) { c.Rate.RequestsPerMinute = 0 }, wantErr: "RATE_LIMIT_REQUESTS_PER_MINUTE"},
		{name: "zero rate disabled", mutate: func(c *Config) { c.Rate.Enabled = false; c.Rate.RequestsPerMinute = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"", 8080, ":8080"},
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"127.0.0.1", 3000, "127.0.0.1:3000"},
		{"localhost", 443, "localhost:443"},
	}

	for _, tt := range tests {
		cfg := &ServerConfig{Host: tt.host, Port: tt.port}
		assert.Equal(t, tt.want, cfg.Addr(), "host=%q port=%d", tt.host, tt.port)
	}
}

func TestConfigString_MasksSheetID(t *testing.T) {
	cfg := validConfig()
	cfg.Source.SheetID = "secret-sheet-id"

	str := cfg.String()
	assert.False(t, strings.Contains(str, "secret-sheet-id"), "String() should mask the sheet id")
	assert.Contains(t, str, "MASKED")
}
