package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
)

type SummarizeHandler struct {
	svc SummaryService
	log *logger.ZapLogger
}

func NewSummarizeHandler(svc SummaryService, log *logger.ZapLogger) *SummarizeHandler {
	return &SummarizeHandler{svc: svc, log: log}
}

func (h *SummarizeHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Transcript string `json:"transcript"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "invalid summarize payload", Error: err})
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	res := h.svc.Summarize(r.Context(), req.Transcript)

	setOutcome(w, res.Outcome)
	writeJSON(w, http.StatusOK, res.Summary)
}
