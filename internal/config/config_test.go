package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_CreatesDefaultFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("OPENAI_API_KEY", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err, "expected default config file to be written")

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, filepath.Join(dir, "uploaded_documents"), cfg.GetUploadDir())
	assert.Equal(t, int64(100_000_000), cfg.Storage.MaxUploadBytes)
	assert.Equal(t, "openai", cfg.Completion.Provider)
	assert.Equal(t, "text-davinci-003", cfg.Completion.Model)
	assert.Equal(t, 200, cfg.Completion.MaxTokens)
	assert.Empty(t, cfg.Completion.APIKey)
	assert.False(t, cfg.Storage.RestrictFileNames)
}

func TestLoadConfig_ParsesYAML(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("GEMINI_KEY", "g-123")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9100
storage:
  upload_directory: /srv/docs
  restrict_file_names: true
completion:
  provider: gemini
  model: gemini-2.0-flash
  api_key_env: GEMINI_KEY
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "/srv/docs", cfg.GetUploadDir())
	assert.True(t, cfg.Storage.RestrictFileNames)
	assert.Equal(t, "gemini", cfg.Completion.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.Completion.Model)
	assert.Equal(t, "g-123", cfg.Completion.APIKey)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Unset fields fall back to defaults
	assert.Equal(t, 200, cfg.Completion.MaxTokens)
	assert.Equal(t, "100M", cfg.Server.BodyLimit)
	assert.Equal(t, int64(100_000_000), cfg.Storage.MaxUploadBytes)
}

func TestLoadConfig_ModelFollowsProvider(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantModel string
	}{
		{name: "openai", yaml: "completion:\n  provider: openai\n", wantModel: "text-davinci-003"},
		{name: "no provider", yaml: "server:\n  port: 9000\n", wantModel: "text-davinci-003"},
		{name: "gemini", yaml: "completion:\n  provider: gemini\n", wantModel: "gemini-2.0-flash"},
		{name: "anthropic", yaml: "completion:\n  provider: anthropic\n", wantModel: "claude-sonnet-4-20250514"},
		{name: "explicit model kept", yaml: "completion:\n  provider: anthropic\n  model: claude-haiku\n", wantModel: "claude-haiku"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))

			cfg, err := LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantModel, cfg.Completion.Model)
		})
	}
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "7777")
	t.Setenv("UPLOAD_DIR", "elsewhere")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	dir := t.TempDir()
	cfg, err := LoadConfig(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, filepath.Join(dir, "elsewhere"), cfg.GetUploadDir())
	assert.Equal(t, "sk-test", cfg.Completion.APIKey)
	assert.Equal(t, "0.0.0.0:7777", cfg.GetServerAddr())
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestEnsureDirectories(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.UploadDirectory = filepath.Join(t.TempDir(), "nested", "uploads")

	require.NoError(t, cfg.EnsureDirectories())

	info, err := os.Stat(cfg.Storage.UploadDirectory)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
