package summary

import "context"

type Summary struct {
	Summary string   `json:"summary"`
	Actions []string `json:"actions"`
}

// Summarizer — транскрипт → краткое резюме + до 3 action items
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (Summary, error)
}
