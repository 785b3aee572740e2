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
	content := []byte(`env: prod
access_ttl: 20m
refresh_ttl: 72h
secret: super-secret
http:
  port: "9090"
postgres:
  host: db.internal
  port: "5433"
  user: shop
  password: shop-pass
  dbname: shop
redis_addr: localhost:6379
frontend_url: https://shop.example.com
`)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg := Load(path)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, 20*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 72*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, "super-secret", cfg.Secret)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "disable", cfg.DB.Sslmode)
	assert.Equal(t, "localhost:6379", cfg.RedisAddress)
	assert.Equal(t, "https://shop.example.com", cfg.FrontendURL)
}

func TestLoad_Defaults(t *testing.T) {
	content := []byte(`secret: super-secret
postgres:
  user: shop
  password: shop-pass
  dbname: shop
`)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg := Load(path)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 168*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
}
