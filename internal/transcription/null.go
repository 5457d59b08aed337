package transcription

import (
	"context"

	"github.com/Vovarama1992/echomind/internal/ports"
)

const DummyTranscript = "Dummy transcript: Meeting discussed deadlines and tasks."

// NullTranscriber используется, когда ASSEMBLYAI_API_KEY не задан.
type NullTranscriber struct{}

func NewNullTranscriber() *NullTranscriber {
	return &NullTranscriber{}
}

func (*NullTranscriber) Name() string { return "none" }

func (*NullTranscriber) Transcribe(context.Context, string) (string, error) {
	return DummyTranscript, ports.ErrNotConfigured
}
