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
		"storage": map[string]any{
			"bucketUrl": "mem://",
			"key":       "user_location",
		},
		"geo": map[string]any{
			"apiKey":          "",
			"searchMinLength": 3,
		},
		"backend": map[string]any{
			"baseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "GEO_APIKEY", want: "geo.apiKey"},
		{envKey: "GEO_SEARCHMINLENGTH", want: "geo.searchMinLength"},
		{envKey: "BACKEND_BASEURL", want: "backend.baseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverridesYAMLWithEnv(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
env:
  env: test
  log:
    level: debug
backend:
  baseUrl: http://localhost:9000
device:
  timeout: 5s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yamlBody), 0o600))
	t.Setenv("BACKEND_BASEURL", "http://backend.internal")

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, "http://backend.internal", cfg.Backend.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Device.Timeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultStorageKey, cfg.Storage.Key)
	assert.Equal(t, defaultCountry, cfg.Geo.Country)
	assert.Equal(t, defaultSearchMinLength, cfg.Geo.SearchMinLength)
	assert.Equal(t, defaultGeolocationTimeout, cfg.Device.Timeout)
	assert.NotNil(t, cfg.Backend)
}
