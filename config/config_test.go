package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: authgate
  log:
    level: debug
http:
  port: 8080
storage:
  driver: memory
auth:
  kdf:
    algorithm: scrypt
    n: 1024
session:
  cookieName: sid
  ttl: 1h
`

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("SESSION_COOKIENAME", "override")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "authgate", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, KDFScrypt, cfg.Auth.KDF.Algorithm)
	assert.Equal(t, 1024, cfg.Auth.KDF.N)
	require.NotNil(t, cfg.Session)
	assert.Equal(t, "override", cfg.Session.CookieName)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.ErrorContains(t, err, "config file config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, DefaultKDF(), cfg.Auth.KDF)
	assert.Equal(t, defaultSessionCookieName, cfg.Session.CookieName)
	assert.Equal(t, defaultSessionTTL, cfg.Session.TTL)
	assert.Equal(t, defaultCleanupInterval, cfg.Session.CleanupInterval)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestApplyDefaults_KeepsConfiguredKDF(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{KDF: KDFConfig{Algorithm: KDFScrypt, N: 16}}}
	cfg.ApplyDefaults()

	assert.Equal(t, KDFScrypt, cfg.Auth.KDF.Algorithm)
	assert.Equal(t, 16, cfg.Auth.KDF.N)
	assert.Equal(t, uint32(16), cfg.Auth.KDF.SaltLength)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "memory ok", mutate: func(c *Config) { c.Storage.Driver = StorageDriverMemory }},
		{name: "postgres without section", mutate: func(c *Config) {}, wantErr: "requires a postgres section"},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "mongo" }, wantErr: "unknown storage driver"},
		{name: "unknown kdf", mutate: func(c *Config) {
			c.Storage.Driver = StorageDriverMemory
			c.Auth.KDF.Algorithm = "md5"
		}, wantErr: "unknown kdf algorithm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.ApplyDefaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
