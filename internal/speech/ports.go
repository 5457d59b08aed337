package speech

import "context"

// Synthesizer — текст → WAV. Совместимость разных версий API решает адаптер.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
