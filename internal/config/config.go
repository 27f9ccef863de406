package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete service configuration
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Storage       StorageConfig       `yaml:"storage"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Generation    GenerationConfig    `yaml:"generation"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	Environment  string        `yaml:"environment"`
}

// StorageConfig describes where uploaded recordings live
type StorageConfig struct {
	// Backend is "local" or "minio"
	Backend string `yaml:"backend"`
	// Dir is the upload directory for the local backend
	Dir string `yaml:"dir"`
	// MaxUploadMB caps the size of a single upload
	MaxUploadMB int `yaml:"max_upload_mb"`
	// DeleteAfterTranscribe removes a recording once it has been transcribed
	DeleteAfterTranscribe bool `yaml:"delete_after_transcribe"`

	Minio MinioConfig `yaml:"minio"`
}

// MinioConfig holds S3-compatible object storage settings
type MinioConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// TranscriptionConfig selects and tunes the speech-to-text provider
type TranscriptionConfig struct {
	Provider  string        `yaml:"provider"`
	BaseURL   string        `yaml:"base_url"`
	Model     string        `yaml:"model"`
	Tier      string        `yaml:"tier"`
	Punctuate bool          `yaml:"punctuate"`
	Language  string        `yaml:"language"`
	Timeout   time.Duration `yaml:"timeout"`
}

// GenerationConfig selects and tunes the language-model provider
type GenerationConfig struct {
	Provider string        `yaml:"provider"`
	BaseURL  string        `yaml:"base_url"`
	Model    string        `yaml:"model"`
	Timeout  time.Duration `yaml:"timeout"`
}

// LoggingConfig controls the zap logger
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         DefaultHost,
			Port:         DefaultHTTPPort,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
			IdleTimeout:  DefaultIdleTimeout,
			Environment:  DefaultEnvironment,
		},
		Storage: StorageConfig{
			Backend:               StorageLocal,
			Dir:                   DefaultUploadDir,
			MaxUploadMB:           DefaultMaxUploadMB,
			DeleteAfterTranscribe: true,
			Minio: MinioConfig{
				Endpoint: "localhost:9000",
				Bucket:   DefaultBucket,
			},
		},
		Transcription: TranscriptionConfig{
			Provider:  ProviderDeepgram,
			BaseURL:   DefaultDeepgramBaseURL,
			Model:     DefaultDeepgramModel,
			Tier:      DefaultDeepgramTier,
			Punctuate: true,
			Timeout:   DefaultTranscriptionTimeout,
		},
		Generation: GenerationConfig{
			Provider: ProviderOpenAI,
			Model:    DefaultChatModel,
			Timeout:  DefaultGenerationTimeout,
		},
		Logging: LoggingConfig{
			Level:       DefaultLogLevel,
			Development: true,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// SCRIPTER_* environment variables, in that order of precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for obvious mistakes
func (c *Config) Validate() error {
	var errs []error

	errs = append(errs, ValidatePort(c.Server.Port, "server"))
	errs = append(errs, ValidateOneOf(c.Storage.Backend, "storage.backend", StorageLocal, StorageMinio))
	errs = append(errs, ValidateOneOf(c.Transcription.Provider, "transcription.provider", ProviderDeepgram, ProviderOpenAI))
	errs = append(errs, ValidateOneOf(c.Generation.Provider, "generation.provider", ProviderOpenAI, ProviderGemini))
	errs = append(errs, ValidateTimeout(c.Transcription.Timeout, "transcription"))
	errs = append(errs, ValidateTimeout(c.Generation.Timeout, "generation"))

	if c.Storage.Backend == StorageLocal && c.Storage.Dir == "" {
		errs = append(errs, errors.New("storage.dir is required for the local backend"))
	}
	if c.Storage.Backend == StorageMinio {
		if c.Storage.Minio.Endpoint == "" {
			errs = append(errs, errors.New("storage.minio.endpoint is required for the minio backend"))
		}
		if c.Storage.Minio.Bucket == "" {
			errs = append(errs, errors.New("storage.minio.bucket is required for the minio backend"))
		}
	}
	if c.Storage.MaxUploadMB <= 0 {
		errs = append(errs, errors.New("storage.max_upload_mb must be positive"))
	}
	if c.Transcription.BaseURL != "" {
		errs = append(errs, ValidateURL(c.Transcription.BaseURL, "transcription.base_url"))
	}
	if c.Generation.BaseURL != "" {
		errs = append(errs, ValidateURL(c.Generation.BaseURL, "generation.base_url"))
	}

	return errors.Join(errs...)
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// MaxUploadBytes returns the upload limit in bytes
func (s StorageConfig) MaxUploadBytes() int64 {
	return int64(s.MaxUploadMB) << 20
}

func (c *Config) applyEnv() error {
	setString(&c.Server.Host, "SCRIPTER_HOST")
	setString(&c.Server.Port, "SCRIPTER_PORT")
	setString(&c.Server.Environment, "SCRIPTER_ENV")

	setString(&c.Storage.Backend, "SCRIPTER_STORAGE_BACKEND")
	setString(&c.Storage.Dir, "SCRIPTER_UPLOAD_DIR")
	setString(&c.Storage.Minio.Endpoint, "MINIO_ENDPOINT")
	setString(&c.Storage.Minio.AccessKey, "MINIO_ACCESS_KEY")
	setString(&c.Storage.Minio.SecretKey, "MINIO_SECRET_KEY")
	setString(&c.Storage.Minio.Bucket, "MINIO_BUCKET")

	setString(&c.Transcription.Provider, "SCRIPTER_TRANSCRIPTION_PROVIDER")
	setString(&c.Transcription.BaseURL, "SCRIPTER_TRANSCRIPTION_BASE_URL")
	setString(&c.Transcription.Model, "SCRIPTER_TRANSCRIPTION_MODEL")
	setString(&c.Generation.Provider, "SCRIPTER_GENERATION_PROVIDER")
	setString(&c.Generation.BaseURL, "SCRIPTER_GENERATION_BASE_URL")
	setString(&c.Generation.Model, "SCRIPTER_GENERATION_MODEL")

	setString(&c.Logging.Level, "SCRIPTER_LOG_LEVEL")

	if err := setBool(&c.Storage.DeleteAfterTranscribe, "SCRIPTER_DELETE_AFTER_TRANSCRIBE"); err != nil {
		return err
	}
	if err := setBool(&c.Storage.Minio.UseSSL, "MINIO_USE_SSL"); err != nil {
		return err
	}
	if err := setInt(&c.Storage.MaxUploadMB, "SCRIPTER_MAX_UPLOAD_MB"); err != nil {
		return err
	}
	if c.Server.Environment == "production" {
		c.Logging.Development = false
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = b
	return nil
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}
