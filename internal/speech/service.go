package speech

import (
	"context"
	"fmt"

	"github.com/Vovarama1992/echomind/internal/ports"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"
)

type Result struct {
	Audio   []byte
	Outcome ports.Outcome
	Err     error
}

type Service struct {
	tts      Synthesizer
	silence  []byte
	notifier ports.Notifier
	log      *logger.ZapLogger
}

func NewService(tts Synthesizer, silence []byte, notifier ports.Notifier, log *logger.ZapLogger) *Service {
	return &Service{
		tts:      tts,
		silence:  silence,
		notifier: notifier,
		log:      log,
	}
}

// Synthesize: одна попытка синтеза; при любой неудаче — пустой WAV.
func (s *Service) Synthesize(ctx context.Context, text string) Result {
	audio, err := s.tts.Synthesize(ctx, text)
	if err == nil && len(audio) == 0 {
		err = fmt.Errorf("synthesizer returned empty audio")
	}

	outcome := ports.Classify(err)
	switch outcome {
	case ports.OutcomeFallback:
		return Result{Audio: s.silence, Outcome: outcome}
	case ports.OutcomeFailed:
		s.log.Log(logger.LogEntry{Level: "error", Message: "tts failed, sending silence", Error: err, Service: "speech"})
		if nErr := s.notifier.Notify(ctx, "speech", err, fmt.Sprintf("text: %d chars", len(text))); nErr != nil && ports.Classify(nErr) == ports.OutcomeFailed {
			s.log.Log(logger.LogEntry{Level: "warn", Message: "notify failed", Error: nErr, Service: "speech"})
		}
		return Result{Audio: s.silence, Outcome: outcome, Err: err}
	}

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "synthesized " + humanize.Bytes(uint64(len(audio))),
		Service: "speech",
	})
	return Result{Audio: audio, Outcome: ports.OutcomeOK}
}
