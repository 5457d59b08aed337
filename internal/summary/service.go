package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vovarama1992/echomind/internal/ports"
	"github.com/Vovarama1992/go-utils/logger"
)

type Result struct {
	Summary
	Outcome ports.Outcome
	Err     error
}

type Service struct {
	client   Summarizer
	notifier ports.Notifier
	log      *logger.ZapLogger
}

func NewService(client Summarizer, notifier ports.Notifier, log *logger.ZapLogger) *Service {
	return &Service{client: client, notifier: notifier, log: log}
}

func (s *Service) Summarize(ctx context.Context, transcript string) Result {
	if transcript == "" {
		return Result{Summary: Summary{Summary: "", Actions: []string{}}, Outcome: ports.OutcomeOK}
	}

	sum, err := s.client.Summarize(ctx, transcript)
	outcome := ports.Classify(err)

	switch outcome {
	case ports.OutcomeFallback:
		return Result{Summary: Summary{Summary: CannedSummary, Actions: CannedActions()}, Outcome: outcome}
	case ports.OutcomeFailed:
		s.log.Log(logger.LogEntry{Level: "error", Message: "summarization failed", Error: err, Service: "summary"})
		if nErr := s.notifier.Notify(ctx, "summary", err, fmt.Sprintf("transcript: %d chars", len(transcript))); nErr != nil && ports.Classify(nErr) == ports.OutcomeFailed {
			s.log.Log(logger.LogEntry{Level: "warn", Message: "notify failed", Error: nErr, Service: "summary"})
		}
		return Result{
			Summary: Summary{Summary: fmt.Sprintf("[summarization failed: %v]", err), Actions: []string{}},
			Outcome: outcome,
			Err:     err,
		}
	}

	if sum.Actions == nil {
		sum.Actions = []string{}
	}
	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("summarized %d chars into %d actions: %s", len(transcript), len(sum.Actions), strings.Join(sum.Actions, "; ")),
		Service: "summary",
	})
	return Result{Summary: sum, Outcome: ports.OutcomeOK}
}
