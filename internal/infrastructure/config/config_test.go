package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default configuration", func(t *testing.T) {
		cfg, err := Load()

		require.NoError(t, err)
		require.NotNil(t, cfg)

		// Check server defaults
		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 5000, cfg.Server.Port)
		assert.Equal(t, "release", cfg.Server.Mode)
		assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "0.0.0.0:5000", cfg.Server.Addr())

		// Check classifier defaults
		assert.Equal(t, "http://localhost:8080", cfg.Classifier.BaseURL)
		assert.Equal(t, "", cfg.Classifier.APIToken)
		assert.Equal(t, 10*time.Second, cfg.Classifier.RequestTimeout)
		assert.Equal(t, 15*time.Second, cfg.Classifier.HTTPTimeout)
		assert.Equal(t, 8, cfg.Classifier.MaxConcurrent)

		// Check log defaults
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "stdout", cfg.Log.Output)
		assert.False(t, cfg.Log.Sampling)

		assert.True(t, cfg.Metrics.Enabled)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
		assert.Empty(t, cfg.ConfigFile)
	})

	t.Run("reads from environment variables", func(t *testing.T) {
		t.Setenv("TOXICITY_SERVER_PORT", "9090")
		t.Setenv("TOXICITY_CLASSIFIER_BASE_URL", "https://tei.internal:443")
		t.Setenv("TOXICITY_CLASSIFIER_REQUEST_TIMEOUT", "2s")
		t.Setenv("TOXICITY_LOG_LEVEL", "debug")
		t.Setenv("TOXICITY_LOG_SAMPLING", "true")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "https://tei.internal:443", cfg.Classifier.BaseURL)
		assert.Equal(t, 2*time.Second, cfg.Classifier.RequestTimeout)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.Sampling)
	})

	t.Run("reads config file from working directory", func(t *testing.T) {
		dir := t.TempDir()
		content := `
server:
  port: 7000
  mode: debug
classifier:
  base_url: "http://model:80"
  max_concurrent: 2
log:
  format: console
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
		origWD, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { _ = os.Chdir(origWD) })

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 7000, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Server.Mode)
		assert.Equal(t, "http://model:80", cfg.Classifier.BaseURL)
		assert.Equal(t, 2, cfg.Classifier.MaxConcurrent)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.NotEmpty(t, cfg.ConfigFile)
	})

	t.Run("rejects invalid port", func(t *testing.T) {
		t.Setenv("TOXICITY_SERVER_PORT", "70000")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("rejects non-http classifier url", func(t *testing.T) {
		t.Setenv("TOXICITY_CLASSIFIER_BASE_URL", "ftp://model:21")

		_, err := Load()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "http or https")
	})
}

func validConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            5000,
			Mode:            "test",
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     time.Second,
			ShutdownTimeout: time.Second,
		},
		Classifier: ClassifierConfig{
			BaseURL:        "http://localhost:8080",
			HTTPTimeout:    time.Second,
			RequestTimeout: time.Second,
			MaxConcurrent:  1,
		},
		Log:     LogConfig{Level: "info", Format: "json", Output: "stdout"},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown gin mode", mutate: func(c *Config) { c.Server.Mode = "verbose" }, wantErr: true},
		{name: "zero read timeout", mutate: func(c *Config) { c.Server.ReadTimeout = 0 }, wantErr: true},
		{name: "negative request timeout", mutate: func(c *Config) { c.Classifier.RequestTimeout = -time.Second }, wantErr: true},
		{name: "zero max concurrent", mutate: func(c *Config) { c.Classifier.MaxConcurrent = 0 }, wantErr: true},
		{name: "classifier url without host", mutate: func(c *Config) { c.Classifier.BaseURL = "http://" }, wantErr: true},
		{name: "unknown log level", mutate: func(c *Config) { c.Log.Level = "trace" }, wantErr: true},
		{name: "unknown log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: true},
		{name: "unknown log output", mutate: func(c *Config) { c.Log.Output = "syslog" }, wantErr: true},
		{name: "metrics path without slash", mutate: func(c *Config) { c.Metrics.Path = "metrics" }, wantErr: true},
		{name: "metrics path ignored when disabled", mutate: func(c *Config) {
			c.Metrics.Enabled = false
			c.Metrics.Path = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
