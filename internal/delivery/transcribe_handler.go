package delivery

import (
	"errors"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
)

const multipartMemory = 10 << 20

type TranscribeHandler struct {
	svc      TranscriptionService
	maxBytes int64
	log      *logger.ZapLogger
}

func NewTranscribeHandler(svc TranscriptionService, maxBytes int64, log *logger.ZapLogger) *TranscribeHandler {
	return &TranscribeHandler{svc: svc, maxBytes: maxBytes, log: log}
}

func (h *TranscribeHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	if h.maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "invalid multipart", Error: err})
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "missing file", Error: err})
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	res, err := h.svc.Transcribe(r.Context(), header.Filename, file)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "failed to stage upload", Error: err})
		writeError(w, http.StatusInternalServerError, "failed to store upload")
		return
	}

	setOutcome(w, res.Outcome)
	writeJSON(w, http.StatusOK, map[string]string{"transcript": res.Transcript})
}
