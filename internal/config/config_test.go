package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/etnz/advisor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "advisor.yaml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "CAD", cfg.Currency)
	assert.Equal(t, ProviderTemplate, cfg.Narrator.Provider)
	assert.Equal(t, 20*time.Second, cfg.Narrator.Timeout)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Empty(t, cfg.OpenAI.APIKey)
}

func TestLoad_File(t *testing.T) {
	file := writeFile(t, `
log:
  level: debug
narrator:
  provider: openai
  model: gpt-4o-mini
  timeout: 5s
openai:
  api_key: sk-test
server:
  port: 9000
assumptions:
  growth:
    base: 0.1
    recession_shock: -0.3
    bull: 0.15
returns:
  - symbol: ACME.TO
    return: 0.12
fallback_return: 0.07
`)
	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ProviderOpenAI, cfg.Narrator.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Narrator.Model)
	assert.Equal(t, 5*time.Second, cfg.Narrator.Timeout)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, 9000, cfg.Server.Port)

	tables := cfg.Tables()
	assert.Equal(t, 0.12, tables.SecurityReturn("ACME.TO"))
	assert.Equal(t, 0.07, tables.SecurityReturn("UNKNOWN"))
	assert.Equal(t, advisor.Assumption{Base: 0.1, RecessionShock: -0.3, Bull: 0.15}, tables.Assumption(advisor.Growth))
	assert.Equal(t, 0.07, tables.Assumption(advisor.Balanced).Base)
}

func TestLoad_EnvOverrides(t *testing.T) {
	file := writeFile(t, "narrator:\n  provider: gemini\n")
	t.Setenv("ADVISOR_SERVER_PORT", "7000")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("MOCK_AI", "")

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, ProviderGemini, cfg.Narrator.Provider)
	assert.Equal(t, "g-key", cfg.Gemini.APIKey)

	t.Setenv("MOCK_AI", "true")
	cfg, err = Load(file)
	require.NoError(t, err)
	assert.Equal(t, ProviderTemplate, cfg.Narrator.Provider)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"provider", "narrator:\n  provider: claude\n", `unknown narrator provider "claude"`},
		{"tier", "assumptions:\n  reckless:\n    base: 0.2\n", `unknown risk tolerance: "reckless"`},
		{"port", "server:\n  port: 70000\n", "invalid server port"},
		{"symbol", "returns:\n  - return: 0.1\n", "missing symbol"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MOCK_AI", "")
			_, err := Load(writeFile(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
