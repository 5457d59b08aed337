package speech

import (
	"context"

	"github.com/Vovarama1992/echomind/internal/ports"
)

// NullSynthesizer всегда отдаёт тишину.
type NullSynthesizer struct {
	silence []byte
}

func NewNullSynthesizer(silence []byte) *NullSynthesizer {
	return &NullSynthesizer{silence: silence}
}

func (n *NullSynthesizer) Synthesize(context.Context, string) ([]byte, error) {
	return n.silence, ports.ErrNotConfigured
}
