package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()

	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "missing app name",
			mutate:  func(c *Config) { c.App.Name = "" },
			wantErr: []string{"app.name is required"},
		},
		{
			name:    "unknown environment",
			mutate:  func(c *Config) { c.App.Environment = "staging" },
			wantErr: []string{"app.environment must be one of"},
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: []string{"server.port must be at most 65535"},
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: []string{"log.format must be one of"},
		},
		{
			name: "log file enabled without path",
			mutate: func(c *Config) {
				c.Log.File.Enabled = true
				c.Log.File.Path = ""
			},
			wantErr: []string{"log.file.path is required when"},
		},
		{
			name:    "short session secret",
			mutate:  func(c *Config) { c.Auth.SessionSecret = "short" },
			wantErr: []string{"auth.session_secret must be at least 16"},
		},
		{
			name:    "relative login path",
			mutate:  func(c *Config) { c.Auth.LoginPath = "login" },
			wantErr: []string{"auth.login_path must start with"},
		},
		{
			name:    "empty dsn",
			mutate:  func(c *Config) { c.Database.DSN = "" },
			wantErr: []string{"database.dsn is required"},
		},
		{
			name:    "zero pool size",
			mutate:  func(c *Config) { c.Database.MaxOpenConns = 0 },
			wantErr: []string{"database.max_open_conns is required"},
		},
		{
			name:    "unknown gorm log level",
			mutate:  func(c *Config) { c.Database.LogLevel = "verbose" },
			wantErr: []string{"database.log_level must be one of"},
		},
		{
			name: "idle pool larger than open pool",
			mutate: func(c *Config) {
				c.Database.MaxOpenConns = 2
				c.Database.MaxIdleConns = 5
			},
			wantErr: []string{"database.max_idle_conns must not exceed"},
		},
		{
			name:    "invalid quote api url",
			mutate:  func(c *Config) { c.Services.Quote.BaseURL = "not a url" },
			wantErr: []string{"services.quote.base_url must be a valid URL"},
		},
		{
			name: "several failures are reported together",
			mutate: func(c *Config) {
				c.App.Version = ""
				c.Server.ReadTimeout = time.Millisecond
			},
			wantErr: []string{"app.version is required", "server.read_timeout must be at least 1s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			for _, msg := range tt.wantErr {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestConfig_Validate_ProdRequiresSecret(t *testing.T) {
	cfg := validConfig(t)
	cfg.App.Environment = "prod"

	require.ErrorIs(t, cfg.Validate(), ErrInsecureSecret)

	cfg.Auth.SessionSecret = "a-real-secret-from-the-environment"
	require.NoError(t, cfg.Validate())
}

func TestFormatFieldPath(t *testing.T) {
	tests := map[string]string{
		"Config.Server.Port":            "server.port",
		"Config.Database.MaxOpenConns":  "database.max_open_conns",
		"Config.Database.DSN":           "database.dsn",
		"Config.Auth.SessionTTL":        "auth.session_ttl",
		"Config.Services.Quote.BaseURL": "services.quote.base_url",
		"Config.Log.File.MaxSizeMB":     "log.file.max_size_mb",
	}

	for in, want := range tests {
		assert.Equal(t, want, formatFieldPath(in), in)
	}
}
