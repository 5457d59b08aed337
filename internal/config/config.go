package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Secure    bool
}

// Enabled — архив включается только при полном наборе ключей
func (c S3Config) Enabled() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != "" && c.Bucket != ""
}

type TelegramConfig struct {
	Token  string
	ChatID int64
}

func (c TelegramConfig) Enabled() bool {
	return c.Token != "" && c.ChatID != 0
}

type Config struct {
	Port string

	AssemblyAIKey     string
	AssemblyAIBaseURL string
	DeepgramKey       string
	DeepgramBaseURL   string

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	MurfKey     string
	MurfVoiceID string
	MurfBaseURL string

	ElevenLabsKey     string
	ElevenLabsVoiceID string
	ElevenLabsBaseURL string

	UploadMaxBytes     int64
	RateLimitPerMinute int
	HTTPClientTimeout  time.Duration
	TmpDir             string

	S3       S3Config
	Telegram TelegramConfig
}

// Load читает .env (если есть) и переменные окружения.
// Отсутствие API-ключей не ошибка: соответствующая интеграция уходит в fallback.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port: getEnv("PORT", "8000"),

		AssemblyAIKey:     os.Getenv("ASSEMBLYAI_API_KEY"),
		AssemblyAIBaseURL: getEnv("ASSEMBLYAI_BASE_URL", "https://api.assemblyai.com"),
		DeepgramKey:       os.Getenv("DEEPGRAM_API_KEY"),
		DeepgramBaseURL:   getEnv("DEEPGRAM_BASE_URL", "https://api.deepgram.com"),

		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),

		MurfKey:     os.Getenv("MURF_API_KEY"),
		MurfVoiceID: getEnv("MURF_VOICE_ID", "en-US-natalie"),
		MurfBaseURL: getEnv("MURF_BASE_URL", "https://api.murf.ai"),

		ElevenLabsKey:     os.Getenv("ELEVENLABS_API_KEY"),
		ElevenLabsVoiceID: getEnv("ELEVENLABS_VOICE_ID", "EXAVITQu4vr4xnSDxMaL"), // Rachel
		ElevenLabsBaseURL: getEnv("ELEVENLABS_BASE_URL", "https://api.elevenlabs.io"),

		UploadMaxBytes:     getInt64("UPLOAD_MAX_BYTES", 32<<20),
		RateLimitPerMinute: int(getInt64("RATE_LIMIT_PER_MINUTE", 0)),
		HTTPClientTimeout:  getDuration("HTTP_CLIENT_TIMEOUT", 0),
		TmpDir:             os.Getenv("TMP_DIR"),

		S3: S3Config{
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
			Bucket:    os.Getenv("S3_BUCKET"),
			Region:    os.Getenv("S3_REGION"),
			Secure:    getEnv("S3_INSECURE", "") != "true",
		},

		Telegram: TelegramConfig{
			Token:  os.Getenv("TELEGRAM_NOTIFY_TOKEN"),
			ChatID: getInt64("TELEGRAM_NOTIFY_CHAT_ID", 0),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
