package delivery

import (
	"context"
	"io"

	"github.com/Vovarama1992/echomind/internal/speech"
	"github.com/Vovarama1992/echomind/internal/summary"
	"github.com/Vovarama1992/echomind/internal/transcription"
)

type TranscriptionService interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (transcription.Result, error)
}

type SummaryService interface {
	Summarize(ctx context.Context, transcript string) summary.Result
}

type SpeechService interface {
	Synthesize(ctx context.Context, text string) speech.Result
}
