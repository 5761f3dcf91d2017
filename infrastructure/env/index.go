package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"kyc.gateman.io/application/constants"
	"kyc.gateman.io/application/utils"
	"kyc.gateman.io/infrastructure/logger"
	"kyc.gateman.io/infrastructure/validator"
)

// Config holds every credential, path and threshold the service needs. It is
// built once at startup and handed to each component.
type Config struct {
	Port            string        `env:"PORT" validate:"required"`
	GinMode         string        `env:"GIN_MODE" validate:"oneof=debug release test"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" validate:"gt=0"`

	UploadDir             string `env:"UPLOAD_DIR" validate:"required"`
	MaxUploadMB           int64  `env:"MAX_UPLOAD_MB" validate:"gt=0"`
	DeleteUploadsAfterRun bool   `env:"DELETE_UPLOADS_AFTER_RUN"`
	WorkerPoolSize        int64  `env:"WORKER_POOL_SIZE" validate:"gt=0"`

	AddressMatchThreshold int     `env:"ADDRESS_MATCH_THRESHOLD" validate:"gte=0,lte=100"`
	FaceDistanceThreshold float64 `env:"FACE_DISTANCE_THRESHOLD" validate:"gt=0"`
	VideoMatchThreshold   int     `env:"VIDEO_MATCH_THRESHOLD" validate:"gte=0,lte=100"`

	OCRProvider           string `env:"OCR_PROVIDER" validate:"oneof=tesseract google_vision"`
	TesseractLanguages    string `env:"TESSERACT_LANGUAGES" validate:"required"`
	GoogleCredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`

	FaceCascadePath string `env:"FACE_CASCADE_PATH" validate:"required"`
	FaceModelPath   string `env:"FACE_MODEL_PATH" validate:"required"`
	FaceInputSize   int    `env:"FACE_INPUT_SIZE" validate:"gt=0"`

	FFmpegPath   string `env:"FFMPEG_PATH" validate:"required"`
	STTProvider  string `env:"STT_PROVIDER" validate:"oneof=openai gemini"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY" validate:"required_if=STTProvider openai"`
	WhisperModel string `env:"WHISPER_MODEL" validate:"required_if=STTProvider openai"`
	GeminiAPIKey string `env:"GEMINI_API_KEY" validate:"required_if=STTProvider gemini"`
	GeminiModel  string `env:"GEMINI_MODEL" validate:"required_if=STTProvider gemini"`

	// zero means no deadline around external calls
	ExternalCallTimeout time.Duration `env:"EXTERNAL_CALL_TIMEOUT" validate:"gte=0"`

	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	AsyncJobTTL   time.Duration `env:"ASYNC_JOB_TTL" validate:"gt=0"`

	RateLimitPerMinute float64  `env:"RATE_LIMIT_PER_MINUTE" validate:"gt=0"`
	CORSOrigins        []string `env:"CORS_ORIGINS" validate:"min=1"`
}

// AsyncEnabled reports whether queued verification is available.
func (c *Config) AsyncEnabled() bool {
	return c.RedisAddr != ""
}

func (c *Config) AllowAllOrigins() bool {
	return utils.HasItemString(&c.CORSOrigins, "*")
}

// Load reads a .env file when present, then the process environment, applying
// defaults and validating the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file loaded, using process environment")
	}

	cfg := &Config{
		Port:                  valueOrDefault("PORT", "8000"),
		GinMode:               valueOrDefault("GIN_MODE", "release"),
		UploadDir:             valueOrDefault("UPLOAD_DIR", "uploads"),
		TesseractLanguages:    valueOrDefault("TESSERACT_LANGUAGES", "eng"),
		GoogleCredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		OCRProvider:           valueOrDefault("OCR_PROVIDER", "tesseract"),
		FaceCascadePath:       valueOrDefault("FACE_CASCADE_PATH", "./models/haarcascade_frontalface_default.xml"),
		FaceModelPath:         valueOrDefault("FACE_MODEL_PATH", "./models/facenet/facenet.onnx"),
		FFmpegPath:            valueOrDefault("FFMPEG_PATH", "ffmpeg"),
		STTProvider:           valueOrDefault("STT_PROVIDER", "openai"),
		OpenAIAPIKey:          os.Getenv("OPENAI_API_KEY"),
		WhisperModel:          valueOrDefault("WHISPER_MODEL", "whisper-1"),
		GeminiAPIKey:          os.Getenv("GEMINI_API_KEY"),
		GeminiModel:           valueOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		RedisPassword:         os.Getenv("REDIS_PASSWORD"),
		CORSOrigins:           parseCSV(valueOrDefault("CORS_ORIGINS", "*")),
	}

	var err error
	if cfg.DeleteUploadsAfterRun, err = parseBool("DELETE_UPLOADS_AFTER_RUN", false); err != nil {
		return nil, err
	}
	if cfg.MaxUploadMB, err = parseInt64("MAX_UPLOAD_MB", 15); err != nil {
		return nil, err
	}
	if cfg.WorkerPoolSize, err = parseInt64("WORKER_POOL_SIZE", 4); err != nil {
		return nil, err
	}
	if cfg.AddressMatchThreshold, err = parseInt("ADDRESS_MATCH_THRESHOLD", constants.DEFAULT_ADDRESS_MATCH_THRESHOLD); err != nil {
		return nil, err
	}
	if cfg.VideoMatchThreshold, err = parseInt("VIDEO_MATCH_THRESHOLD", constants.DEFAULT_VIDEO_MATCH_THRESHOLD); err != nil {
		return nil, err
	}
	if cfg.FaceInputSize, err = parseInt("FACE_INPUT_SIZE", 160); err != nil {
		return nil, err
	}
	if cfg.FaceDistanceThreshold, err = parseFloat("FACE_DISTANCE_THRESHOLD", constants.DEFAULT_FACE_DISTANCE_THRESHOLD); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute, err = parseFloat("RATE_LIMIT_PER_MINUTE", 25); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = parseDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.ExternalCallTimeout, err = parseDuration("EXTERNAL_CALL_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.AsyncJobTTL, err = parseDuration("ASYNC_JOB_TTL", 30*time.Minute); err != nil {
		return nil, err
	}

	if errs := validator.ValidatorInstance.ValidateStruct(cfg); errs != nil {
		messages := make([]string, 0, len(*errs))
		for _, e := range *errs {
			messages = append(messages, e.Error())
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
	}
	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseCSV(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func parseInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func parseInt64(key string, fallback int64) (int64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func parseFloat(key string, fallback float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
