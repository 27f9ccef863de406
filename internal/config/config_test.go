package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scripter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPPort, cfg.Server.Port)
	assert.Equal(t, StorageLocal, cfg.Storage.Backend)
	assert.Equal(t, DefaultUploadDir, cfg.Storage.Dir)
	assert.True(t, cfg.Storage.DeleteAfterTranscribe)
	assert.Equal(t, ProviderDeepgram, cfg.Transcription.Provider)
	assert.Equal(t, "phonecall", cfg.Transcription.Model)
	assert.Equal(t, "nova", cfg.Transcription.Tier)
	assert.True(t, cfg.Transcription.Punctuate)
	assert.Equal(t, ProviderOpenAI, cfg.Generation.Provider)
	assert.Equal(t, "gpt-4-32k-0613", cfg.Generation.Model)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "8081"
  write_timeout: 90s
storage:
  dir: /tmp/records
  delete_after_transcribe: false
transcription:
  provider: openai
  model: whisper-1
generation:
  provider: gemini
  model: gemini-1.5-flash
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, 90*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "/tmp/records", cfg.Storage.Dir)
	assert.False(t, cfg.Storage.DeleteAfterTranscribe)
	assert.Equal(t, ProviderOpenAI, cfg.Transcription.Provider)
	assert.Equal(t, ProviderGemini, cfg.Generation.Provider)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultHost, cfg.Server.Host)
	assert.Equal(t, DefaultMaxUploadMB, cfg.Storage.MaxUploadMB)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, "server:\n  port: \"8081\"\n")
	t.Setenv("SCRIPTER_PORT", "9090")
	t.Setenv("SCRIPTER_DELETE_AFTER_TRANSCRIBE", "false")
	t.Setenv("SCRIPTER_MAX_UPLOAD_MB", "25")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.False(t, cfg.Storage.DeleteAfterTranscribe)
	assert.Equal(t, int64(25<<20), cfg.Storage.MaxUploadBytes())
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name          string
		yaml          string
		env           map[string]string
		errorContains string
	}{
		{
			name:          "unknown transcription provider",
			yaml:          "transcription:\n  provider: whisper_cpp\n",
			errorContains: "transcription.provider",
		},
		{
			name:          "unknown storage backend",
			yaml:          "storage:\n  backend: s3\n",
			errorContains: "storage.backend",
		},
		{
			name:          "bad port",
			yaml:          "server:\n  port: \"http\"\n",
			errorContains: "port invalid",
		},
		{
			name:          "bad base url",
			yaml:          "transcription:\n  base_url: api.deepgram.com\n",
			errorContains: "must start with http",
		},
		{
			name:          "malformed yaml",
			yaml:          "server: [",
			errorContains: "failed to parse config file",
		},
		{
			name:          "bad bool env",
			yaml:          "",
			env:           map[string]string{"SCRIPTER_DELETE_AFTER_TRANSCRIBE": "maybe"},
			errorContains: "SCRIPTER_DELETE_AFTER_TRANSCRIBE",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errorContains)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidatePort(t *testing.T) {
	assert.NoError(t, ValidatePort("5000", "server"))
	assert.Error(t, ValidatePort("", "server"))
	assert.Error(t, ValidatePort("0", "server"))
	assert.Error(t, ValidatePort("70000", "server"))
}
