package config

import "time"

// Provider names
const (
	ProviderDeepgram = "deepgram"
	ProviderOpenAI   = "openai"
	ProviderGemini   = "gemini"
)

// Storage backends
const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// Default configuration constants
const (
	// Server defaults
	DefaultHost         = "0.0.0.0"
	DefaultHTTPPort     = "5000"
	DefaultReadTimeout  = 60 * time.Second
	DefaultWriteTimeout = 10 * time.Minute
	DefaultIdleTimeout  = 120 * time.Second
	DefaultEnvironment  = "development"

	// Storage defaults
	DefaultUploadDir   = "upload/record"
	DefaultMaxUploadMB = 100
	DefaultBucket      = "call-recordings"

	// Deepgram defaults
	DefaultDeepgramBaseURL = "https://api.deepgram.com"
	DefaultDeepgramModel   = "phonecall"
	DefaultDeepgramTier    = "nova"

	// OpenAI defaults
	DefaultWhisperModel = "whisper-1"
	DefaultChatModel    = "gpt-4-32k-0613"

	// Gemini defaults
	DefaultGeminiModel = "gemini-1.5-pro"

	// Timeouts for upstream calls
	DefaultTranscriptionTimeout = 5 * time.Minute
	DefaultGenerationTimeout    = 10 * time.Minute

	// Logging
	DefaultLogLevel = "info"
)
