package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.ElementsMatch(t, []string{"gpt-4-turbo", "gpt-3.5-turbo"}, cfg.DefaultModels)
	assert.Equal(t, "cl100k_base", cfg.FallbackEncoding)
	assert.Equal(t, 10, cfg.TopN)
	assert.Equal(t, 60, cfg.TitleWidth)
}

func TestRateFor(t *testing.T) {
	cfg := Default()

	tests := []struct {
		model string
		want  float64
	}{
		{"gpt-4-turbo", 5.0},
		{"GPT-4o", 5.0},
		{"gpt-3.5-turbo", 0.002},
		{"text-davinci-3.5", 0.002},
		{"gpt-3", 0.002},
		{"llama-3", 0.0},
		{"", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.RateFor(tt.model))
		})
	}
}

func TestLoad_Explicit(t *testing.T) {
	path := writeConfig(t, `
top_n = 3
default_models = ["llama-3"]

[[rates]]
match = "llama"
per_million = 0.5
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.TopN)
	assert.Equal(t, []string{"llama-3"}, cfg.DefaultModels)
	assert.Equal(t, "cl100k_base", cfg.FallbackEncoding, "unset keys keep defaults")
	assert.Equal(t, 60, cfg.TitleWidth)
	assert.Equal(t, 0.5, cfg.RateFor("Llama-3-70b"))
	assert.Equal(t, 0.0, cfg.RateFor("gpt-4"), "rates table is replaced, not merged")
}

func TestLoad_ExplicitMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestLoad_DefaultLocationMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", `top_n = `},
		{"zero top", `top_n = 0`},
		{"negative rate", "[[rates]]\nmatch = \"x\"\nper_million = -1.0\n"},
		{"empty match", "[[rates]]\nper_million = 1.0\n"},
		{"no default models", `default_models = []`},
		{"blank fallback", `fallback_encoding = " "`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}
