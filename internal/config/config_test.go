package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/api", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, StorageFile, cfg.Storage.Driver)
	assert.Equal(t, time.Second, cfg.Checkout.PromoDelay)
	assert.Equal(t, 2*time.Second, cfg.Checkout.SubmitDelay)
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := writeFile(t, dir, "custom.yaml", `
env: prod
log:
  level: debug
api:
  baseURL: https://shop.example.com/api
  timeout: 3s
storage:
  driver: memory
checkout:
  promoDelay: 0s
`)
	t.Setenv("SHOPHUB_API_BASEURL", "https://override.example.com/api")
	t.Setenv("SHOPHUB_CHECKOUT_SUBMITDELAY", "500ms")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "https://override.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, time.Duration(0), cfg.Checkout.PromoDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Checkout.SubmitDelay)
}

// カレントの storefront.yaml と .env を拾う
func TestLoad_DefaultFileAndDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, dir, DefaultFile, "storage:\n  driver: redis\n")
	writeFile(t, dir, ".env", "SHOPHUB_STORAGE_REDISADDR=cache:6380\n")
	t.Cleanup(func() { _ = os.Unsetenv("SHOPHUB_STORAGE_REDISADDR") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, StorageRedis, cfg.Storage.Driver)
	assert.Equal(t, "cache:6380", cfg.Storage.RedisAddr)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"base url", func(c *Config) { c.API.BaseURL = " " }, "api.baseURL is required"},
		{"timeout", func(c *Config) { c.API.Timeout = 0 }, "api.timeout must be > 0"},
		{"driver", func(c *Config) { c.Storage.Driver = "s3" }, "unknown storage.driver: s3"},
		{"postgres", func(c *Config) { c.Storage.Driver = StoragePostgres }, "storage.databaseURL is required"},
		{"file dir", func(c *Config) { c.Storage.Dir = "" }, "storage.dir is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.EqualError(t, cfg.Validate(), tc.want)
		})
	}
}

func TestEnvKey(t *testing.T) {
	cases := map[string]string{
		"API_BASEURL":           "api.baseURL",
		"STORAGE_DRIVER":        "storage.driver",
		"STORAGE_REDIS_ADDR":    "storage.redisAddr",
		"STORAGE_REDISADDR":     "storage.redisAddr",
		"STORAGE_DATABASE_URL":  "storage.databaseURL",
		"CHECKOUT_SUBMIT_DELAY": "checkout.submitDelay",
		"LOG__LEVEL":            "log.level",
		"SOMETHING_ELSE":        "something.else",
	}
	for raw, want := range cases {
		assert.Equal(t, want, envKey(raw), raw)
	}
}

// YAMLが無くても区切り付きの環境変数が効く
func TestLoad_EnvOnlyMultiWordKeys(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SHOPHUB_STORAGE_DRIVER", "redis")
	t.Setenv("SHOPHUB_STORAGE_REDIS_ADDR", "cache:6390")
	t.Setenv("SHOPHUB_STORAGE_REDIS_DB", "2")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, StorageRedis, cfg.Storage.Driver)
	assert.Equal(t, "cache:6390", cfg.Storage.RedisAddr)
	assert.Equal(t, 2, cfg.Storage.RedisDB)
}
