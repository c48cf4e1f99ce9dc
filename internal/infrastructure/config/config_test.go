package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Hearth", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, DriverMemory, cfg.Cache.Driver)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 10, cfg.Tags.Max)
	assert.Equal(t, 15, cfg.Tags.Suggested)
	assert.True(t, cfg.Fixtures.Enable)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, []string{"localhost:6379"}, cfg.Redis.Addrs())
}

func TestLoadFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hearth.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  environment: production
server:
  port: 9090
database:
  driver: sqlite
  path: /var/lib/hearth/hearth.db
cache:
  driver: redis
redis:
  enable_cluster: true
  cluster_nodes: ["a:7000", "b:7001"]
`), 0o600))

	t.Setenv("HEARTH_SERVER_PORT", "9191")
	t.Setenv("HEARTH_TAGS_MAX", "3")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 9191, cfg.Server.Port, "Environment overrides the file")
	assert.Equal(t, 3, cfg.Tags.Max)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, DriverRedis, cfg.Cache.Driver)
	assert.Equal(t, []string{"a:7000", "b:7001"}, cfg.Redis.Addrs())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:       AppConfig{Name: "Hearth"},
			Server:    ServerConfig{Port: 8080},
			Database:  DatabaseConfig{Driver: DriverMemory},
			Cache:     CacheConfig{Driver: DriverMemory},
			RateLimit: RateLimitConfig{Enable: true, RequestsPerMin: 60},
			Tags:      TagsConfig{Max: 10},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing name", mutate: func(c *Config) { c.App.Name = "" }, wantErr: "app.name"},
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "server.port"},
		{name: "unknown database", mutate: func(c *Config) { c.Database.Driver = "postgres" }, wantErr: "database.driver"},
		{name: "sqlite without path", mutate: func(c *Config) { c.Database.Driver = DriverSQLite }, wantErr: "database.path"},
		{name: "unknown cache", mutate: func(c *Config) { c.Cache.Driver = "memcached" }, wantErr: "cache.driver"},
		{name: "zero rate", mutate: func(c *Config) { c.RateLimit.RequestsPerMin = 0 }, wantErr: "rate_limit"},
		{name: "rate limit disabled", mutate: func(c *Config) { c.RateLimit = RateLimitConfig{} }},
		{name: "no tags", mutate: func(c *Config) { c.Tags.Max = 0 }, wantErr: "tags.max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
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
