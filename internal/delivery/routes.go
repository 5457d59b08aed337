package delivery

import (
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func NewRouter(log *logger.ZapLogger) chi.Router {
	r := chi.NewRouter()
	r.Use(
		CORS(),
		RequestLogger(log),
	)
	return r
}

func RegisterRoutes(
	r chi.Router,
	hHealth *HealthHandler,
	hTranscribe *TranscribeHandler,
	hSummarize *SummarizeHandler,
	hTTS *TTSHandler,
	rateLimitPerMinute int,
) {
	r.Group(func(pr chi.Router) {
		pr.Use(httputil.RecoverMiddleware)

		pr.Get("/", hHealth.Root)
		pr.Get("/ping", hHealth.Ping)

		pr.Route("/api", func(api chi.Router) {
			api.Get("/health", hHealth.Health)
			api.Get("/hello", hHealth.Hello)

			// --- внешние интеграции ---
			api.Group(func(ext chi.Router) {
				if rateLimitPerMinute > 0 {
					ext.Use(httprate.LimitByIP(rateLimitPerMinute, time.Minute))
				}
				ext.Post("/transcribe", hTranscribe.Transcribe)
				ext.Post("/summarize", hSummarize.Summarize)
				ext.Post("/tts", hTTS.Synthesize)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
}
