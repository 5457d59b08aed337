package delivery

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"
)

type TTSHandler struct {
	svc SpeechService
	log *logger.ZapLogger
}

func NewTTSHandler(svc SpeechService, log *logger.ZapLogger) *TTSHandler {
	return &TTSHandler{svc: svc, log: log}
}

func (h *TTSHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "invalid tts payload", Error: err})
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "No text provided")
		return
	}

	res := h.svc.Synthesize(r.Context(), req.Text)

	setOutcome(w, res.Outcome)
	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Audio)))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, bytes.NewReader(res.Audio)); err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "stream wav", Error: err})
	}
}
