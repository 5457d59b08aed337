package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/echomind/internal/config"
	"github.com/Vovarama1992/echomind/internal/delivery"
	"github.com/Vovarama1992/echomind/internal/error_notificator"
	"github.com/Vovarama1992/echomind/internal/infra"
	"github.com/Vovarama1992/echomind/internal/ports"
	"github.com/Vovarama1992/echomind/internal/speech"
	"github.com/Vovarama1992/echomind/internal/summary"
	"github.com/Vovarama1992/echomind/internal/transcription"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / LOGGER
	// =========================================================================

	cfg := config.Load()

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	info := func(msg string) {
		zl.Log(logger.LogEntry{Level: "info", Message: msg, Service: "echomind"})
	}
	warn := func(msg string, err error) {
		zl.Log(logger.LogEntry{Level: "warn", Message: msg, Error: err, Service: "echomind"})
	}

	// без таймаута по умолчанию: зависший провайдер держит запрос
	httpClient := &http.Client{Timeout: cfg.HTTPClientTimeout}

	// =========================================================================
	// INFRASTRUCTURE
	// =========================================================================

	var archive ports.RecordingArchive = infra.NewNullArchive()
	if cfg.S3.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		s3Archive, err := infra.NewS3Archive(ctx, cfg.S3)
		cancel()
		if err != nil {
			warn("s3 archive disabled", err)
		} else {
			archive = s3Archive
			info("s3 archive enabled: " + cfg.S3.Bucket)
		}
	}

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	var errInfra error_notificator.Notificator = error_notificator.NullInfra{}
	if cfg.Telegram.Enabled() {
		bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
		if err != nil {
			warn("telegram notifications disabled", err)
		} else {
			errInfra = error_notificator.NewInfra(bot, cfg.Telegram.ChatID)
			info("telegram notifications enabled: @" + bot.Self.UserName)
		}
	}
	errService := error_notificator.NewService(errInfra)

	// =========================================================================
	// CLIENTS (STT / LLM / TTS)
	// =========================================================================

	var stt transcription.Transcriber = transcription.NewNullTranscriber()
	switch {
	case cfg.AssemblyAIKey != "":
		stt = transcription.NewAssemblyAIClient(cfg.AssemblyAIKey, cfg.AssemblyAIBaseURL, httpClient)
		info("stt: assemblyai")
	case cfg.DeepgramKey != "":
		stt = transcription.NewDeepgramClient(cfg.DeepgramKey, cfg.DeepgramBaseURL, httpClient)
		info("stt: deepgram")
	default:
		info("stt: not configured, using dummy transcript")
	}

	var llm summary.Summarizer = summary.NewNullSummarizer()
	if cfg.OpenAIKey != "" {
		llm = summary.NewOpenAISummarizer(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, httpClient)
		info("llm: openai " + cfg.OpenAIModel)
	} else {
		info("llm: not configured, using canned summary")
	}

	silence, err := speech.SilentWAV()
	if err != nil {
		log.Fatalf("failed to build silent wav: %v", err)
	}

	var tts speech.Synthesizer = speech.NewNullSynthesizer(silence)
	switch {
	case cfg.MurfKey != "":
		tts = speech.NewMurfClient(cfg.MurfKey, cfg.MurfVoiceID, cfg.MurfBaseURL, httpClient)
		info("tts: murf " + cfg.MurfVoiceID)
	case cfg.ElevenLabsKey != "":
		tts = speech.NewElevenLabsClient(cfg.ElevenLabsKey, cfg.ElevenLabsVoiceID, cfg.ElevenLabsBaseURL, httpClient)
		info("tts: elevenlabs " + cfg.ElevenLabsVoiceID)
	default:
		info("tts: not configured, using silent wav")
	}

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	transcriptionService := transcription.NewService(stt, archive, errService, cfg.TmpDir, zl)
	summaryService := summary.NewService(llm, errService, zl)
	speechService := speech.NewService(tts, silence, errService, zl)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := delivery.NewRouter(zl)

	delivery.RegisterRoutes(
		r,
		delivery.NewHealthHandler(),
		delivery.NewTranscribeHandler(transcriptionService, cfg.UploadMaxBytes, zl),
		delivery.NewSummarizeHandler(summaryService, zl),
		delivery.NewTTSHandler(speechService, zl),
		cfg.RateLimitPerMinute,
	)

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "echomind",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
