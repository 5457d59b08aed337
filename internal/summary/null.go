package summary

import (
	"context"

	"github.com/Vovarama1992/echomind/internal/ports"
)

const CannedSummary = "Team discussed project deadlines and scheduled a client call for next week."

func CannedActions() []string {
	return []string{"Prepare agenda for client call", "Finalize deadlines", "Share meeting notes"}
}

// NullSummarizer используется, когда OPENAI_API_KEY не задан.
type NullSummarizer struct{}

func NewNullSummarizer() *NullSummarizer {
	return &NullSummarizer{}
}

func (*NullSummarizer) Summarize(context.Context, string) (Summary, error) {
	return Summary{Summary: CannedSummary, Actions: CannedActions()}, ports.ErrNotConfigured
}
