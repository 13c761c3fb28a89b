package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"backend": map[string]any{
			"url":            "",
			"publishableKey": "",
		},
		"storage": map[string]any{
			"maxUploadBytes": 0,
		},
		"session": map[string]any{
			"resetRedirectUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "BACKEND_URL", want: "backend.url"},
		{envKey: "BACKEND_PUBLISHABLEKEY", want: "backend.publishableKey"},
		{envKey: "STORAGE_MAXUPLOADBYTES", want: "storage.maxUploadBytes"},
		{envKey: "SESSION_RESETREDIRECTURL", want: "session.resetRedirectUrl"},
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

func TestApplyDefaults_FallsBackToPlaceholders(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults(func(string) string { return "" })

	assert.Equal(t, PlaceholderBackendURL, cfg.Backend.URL)
	assert.Equal(t, PlaceholderPublishableKey, cfg.Backend.PublishableKey)
	assert.True(t, cfg.HasPlaceholderBackend())
	assert.Equal(t, "todos-images", cfg.Storage.Bucket)
	assert.Equal(t, int64(5<<20), cfg.Storage.MaxUploadBytes)
	assert.Equal(t, time.Minute, cfg.Session.RefreshMargin)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestApplyDefaults_ReadsLegacyEnvNames(t *testing.T) {
	env := map[string]string{
		"VITE_SUPABASE_URL":        "https://ignored.example.co",
		"SUPABASE_URL":             "https://project.example.co/",
		"SUPABASE_PUBLISHABLE_KEY": "sb_publishable_123",
	}
	cfg := &Config{}
	cfg.applyDefaults(func(k string) string { return env[k] })

	assert.Equal(t, "https://project.example.co", cfg.Backend.URL)
	assert.Equal(t, "sb_publishable_123", cfg.Backend.PublishableKey)
	assert.False(t, cfg.HasPlaceholderBackend())
}

func TestApplyDefaults_ConfiguredValuesWin(t *testing.T) {
	cfg := &Config{Backend: &BackendConfig{URL: "https://configured.example.co", PublishableKey: "key"}}
	cfg.applyDefaults(func(string) string { return "https://env.example.co" })

	assert.Equal(t, "https://configured.example.co", cfg.Backend.URL)
	assert.Equal(t, "key", cfg.Backend.PublishableKey)
}
