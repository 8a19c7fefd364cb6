package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0644))
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
  mode: debug
store:
  driver: memory
jwt:
  secret: test-secret
  expire_hours: 2
storage:
  type: minio
ai:
  model: test-model
notifications:
  poll_interval: 3s
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, "test-model", cfg.AI.Model)
	assert.Equal(t, "https://ai.gateway.lovable.dev/v1", cfg.AI.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Notifications.PollInterval)
	assert.Equal(t, float64(75), cfg.Insights.WeakThreshold)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := writeConfig(t, "store:\n  driver: memory\nstorage:\n  type: minio\n")
	t.Setenv("AI_API_KEY", "from-env")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.AI.APIKey)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Server:        ServerConfig{Mode: "debug"},
			Store:         StoreConfig{Driver: "bolt"},
			Notifications: NotificationsConfig{PollInterval: 5 * time.Second},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Store.Driver = "sqlite" }, wantErr: true},
		{name: "short secret in release", mutate: func(c *Config) { c.Server.Mode = "release"; c.JWT.Secret = "short" }, wantErr: true},
		{name: "zero poll interval", mutate: func(c *Config) { c.Notifications.PollInterval = 0 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
