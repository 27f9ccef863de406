package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAPIKeys(t *testing.T) {
	testCases := []struct {
		name          string
		openaiKey     string
		deepgramKey   string
		geminiKey     string
		expectError   bool
		errorContains string
	}{
		{
			name:        "valid OpenAI key",
			openaiKey:   "sk-1234567890abcdef1234567890abcdef",
			expectError: false,
		},
		{
			name:        "valid Deepgram key",
			deepgramKey: "0123456789abcdef0123456789abcdef01234567",
			expectError: false,
		},
		{
			name:        "all valid keys",
			openaiKey:   "sk-1234567890abcdef1234567890abcdef",
			deepgramKey: "0123456789abcdef0123456789abcdef01234567",
			geminiKey:   "AIzaTest-1234567890abcdef1234567890",
			expectError: false,
		},
		{
			name:          "invalid OpenAI key format",
			openaiKey:     "invalid-key",
			expectError:   true,
			errorContains: "invalid OPENAI_API_KEY",
		},
		{
			name:          "OpenAI key too short",
			openaiKey:     "sk-short",
			expectError:   true,
			errorContains: "too short",
		},
		{
			name:          "Deepgram key too short",
			deepgramKey:   "abc",
			expectError:   true,
			errorContains: "invalid DEEPGRAM_API_KEY",
		},
		{
			name:          "invalid Gemini key format",
			geminiKey:     "invalid-key",
			expectError:   true,
			errorContains: "invalid GEMINI_API_KEY",
		},
		{
			name:        "empty keys are allowed",
			expectError: false,
		},
		{
			name:        "surrounding whitespace is trimmed",
			openaiKey:   "  sk-1234567890abcdef1234567890abcdef\n",
			expectError: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("OPENAI_API_KEY", tc.openaiKey)
			t.Setenv("DEEPGRAM_API_KEY", tc.deepgramKey)
			t.Setenv("GEMINI_API_KEY", tc.geminiKey)

			apiKeys, err := GetAPIKeys()

			if tc.expectError {
				assert.Error(t, err)
				if tc.errorContains != "" {
					assert.Contains(t, err.Error(), tc.errorContains)
				}
				return
			}
			require.NoError(t, err)
			require.NotNil(t, apiKeys)
			assert.NotContains(t, apiKeys.OpenAI, " ")
		})
	}
}

func TestAPIKeys_RequireFor(t *testing.T) {
	testCases := []struct {
		name          string
		keys          APIKeys
		transcription string
		generation    string
		errorContains string
	}{
		{
			name:          "deepgram and openai present",
			keys:          APIKeys{OpenAI: "sk-x", Deepgram: "dg"},
			transcription: ProviderDeepgram,
			generation:    ProviderOpenAI,
		},
		{
			name:          "deepgram missing",
			keys:          APIKeys{OpenAI: "sk-x"},
			transcription: ProviderDeepgram,
			generation:    ProviderOpenAI,
			errorContains: "DEEPGRAM_API_KEY",
		},
		{
			name:          "openai covers both roles",
			keys:          APIKeys{OpenAI: "sk-x"},
			transcription: ProviderOpenAI,
			generation:    ProviderOpenAI,
		},
		{
			name:          "gemini missing",
			keys:          APIKeys{Deepgram: "dg"},
			transcription: ProviderDeepgram,
			generation:    ProviderGemini,
			errorContains: "GEMINI_API_KEY",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.Transcription.Provider = tc.transcription
			cfg.Generation.Provider = tc.generation

			err := tc.keys.RequireFor(cfg)
			if tc.errorContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errorContains)
		})
	}
}

func TestAPIKeys_Available(t *testing.T) {
	keys := &APIKeys{OpenAI: "sk-x", Gemini: "AIza"}
	assert.Equal(t, []string{"OpenAI", "Gemini"}, keys.Available())
	assert.Empty(t, (&APIKeys{}).Available())
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Run("no env file", func(t *testing.T) {
		path, err := LoadEnv()
		require.NoError(t, err)
		assert.Empty(t, path)
	})

	t.Run("loads .env", func(t *testing.T) {
		require.NoError(t, os.Unsetenv("SCRIPTER_TEST_VALUE"))
		t.Cleanup(func() { _ = os.Unsetenv("SCRIPTER_TEST_VALUE") })
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SCRIPTER_TEST_VALUE=from-file\n"), 0o600))

		path, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, ".env", path)
		assert.Equal(t, "from-file", os.Getenv("SCRIPTER_TEST_VALUE"))
	})
}
