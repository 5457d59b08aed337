package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/echomind/internal/ports"
)

// OutcomeHeader помечает деградированные ответы; тело при этом не меняется.
const OutcomeHeader = "X-Echomind-Outcome"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func setOutcome(w http.ResponseWriter, o ports.Outcome) {
	if o != ports.OutcomeOK {
		w.Header().Set(OutcomeHeader, string(o))
	}
}
