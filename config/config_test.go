package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"storage": map[string]any{
			"maxUploadSize": 10000000,
			"bucketUrl":     "",
		},
		"search": map[string]any{
			"defaultPageSize": 20,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STORAGE_MAXUPLOADSIZE", want: "storage.maxUploadSize"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "SEARCH_DEFAULTPAGESIZE", want: "search.defaultPageSize"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	t.Run("fills unset values", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)

		assert.Equal(t, 10, cfg.Storage.MaxFilesPerRequest)
		// 10 files of 10_000_000 bytes plus 1MB, in KiB
		assert.Equal(t, "98681KB", cfg.HTTP.MaxRequestBodySize)
		assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQueryThreshold)
		assert.Equal(t, "uploads", cfg.Storage.Root)
		assert.Equal(t, int64(10_000_000), cfg.Storage.MaxUploadSize)
		assert.Equal(t, "/uploads/", cfg.Storage.PublicPrefix)
		assert.Equal(t, 20, cfg.Search.DefaultPageSize)
		assert.Equal(t, 100, cfg.Search.MaxPageSize)
		assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	})

	t.Run("keeps configured values", func(t *testing.T) {
		cfg := &Config{}
		cfg.Storage.MaxUploadSize = 2048
		cfg.Search.DefaultPageSize = 10
		cfg.Search.MaxPageSize = 50
		applyDefaults(cfg)

		assert.Equal(t, int64(2048), cfg.Storage.MaxUploadSize)
		assert.Equal(t, 10, cfg.Search.DefaultPageSize)
		assert.Equal(t, 50, cfg.Search.MaxPageSize)
	})

	t.Run("body limit follows the upload settings", func(t *testing.T) {
		cfg := &Config{}
		cfg.Storage.MaxUploadSize = 1 << 20
		cfg.Storage.MaxFilesPerRequest = 3
		applyDefaults(cfg)

		assert.Equal(t, "4096KB", cfg.HTTP.MaxRequestBodySize)
	})

	t.Run("explicit body limit is kept", func(t *testing.T) {
		cfg := &Config{}
		cfg.HTTP.MaxRequestBodySize = "64MB"
		applyDefaults(cfg)

		assert.Equal(t, "64MB", cfg.HTTP.MaxRequestBodySize)
	})

	t.Run("default page size never exceeds the cap", func(t *testing.T) {
		cfg := &Config{}
		cfg.Search.DefaultPageSize = 500
		cfg.Search.MaxPageSize = 100
		applyDefaults(cfg)

		assert.Equal(t, 100, cfg.Search.DefaultPageSize)
	})
}

func TestReplicasFromEnv(t *testing.T) {
	vars := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		"POSTGRES_REPLICAS_3_HOST":     "unreachable",
		"POSTGRES_REPLICAS_3_PORT":     "5434",
	}
	lookup := func(key string) (string, bool) {
		v, ok := vars[key]

		return v, ok
	}

	replicas := replicasFromEnv(lookup)

	assert.Len(t, replicas, 2)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
	assert.Equal(t, "5433", replicas[1].Port)
	assert.Empty(t, replicasFromEnv(func(string) (string, bool) { return "", false }))
}

func TestLoadWithEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o755))
	yaml := "storage:\n  maxUploadSize: 2048\n  publicPrefix: /files/\nredis:\n  ttl: 1m\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(yaml), 0o600))
	t.Chdir(dir)
	t.Setenv("STORAGE_MAXUPLOADSIZE", "4096")

	cfg, err := LoadWithEnv[Config]("config", "config")
	require.NoError(t, err)

	assert.Equal(t, int64(4096), cfg.Storage.MaxUploadSize)
	assert.Equal(t, "/files/", cfg.Storage.PublicPrefix)
	assert.Equal(t, time.Minute, cfg.Redis.TTL)

	_, err = LoadWithEnv[Config]("missing", "config")
	assert.Error(t, err)
}
