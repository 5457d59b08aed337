package speech

import (
	"context"
	"errors"
	"testing"

	"github.com/Vovarama1992/echomind/internal/ports"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSynth struct {
	audio []byte
	err   error
	calls int
}

func (f *fakeSynth) Synthesize(context.Context, string) ([]byte, error) {
	f.calls++
	return f.audio, f.err
}

type fakeNotifier struct{ calls int }

func (n *fakeNotifier) Notify(context.Context, string, error, string) error {
	n.calls++
	return nil
}

func newService(t *testing.T, tts Synthesizer, n ports.Notifier) (*Service, []byte) {
	t.Helper()
	silence, err := SilentWAV()
	require.NoError(t, err)
	return NewService(tts, silence, n, logger.NewZapLogger(zap.NewNop().Sugar())), silence
}

func TestSynthesizeSuccess(t *testing.T) {
	tts := &fakeSynth{audio: []byte("RIFF....WAVE")}
	svc, _ := newService(t, tts, &fakeNotifier{})

	res := svc.Synthesize(context.Background(), "hello")
	assert.Equal(t, []byte("RIFF....WAVE"), res.Audio)
	assert.Equal(t, ports.OutcomeOK, res.Outcome)
	assert.Equal(t, 1, tts.calls, "exactly one synthesis attempt")
}

func TestSynthesizeNullClient(t *testing.T) {
	silence, err := SilentWAV()
	require.NoError(t, err)
	svc, _ := newService(t, NewNullSynthesizer(silence), &fakeNotifier{})

	res := svc.Synthesize(context.Background(), "hello")
	assert.Equal(t, silence, res.Audio)
	assert.Equal(t, ports.OutcomeFallback, res.Outcome)
}

func TestSynthesizeFailureFallsBackToSilence(t *testing.T) {
	n := &fakeNotifier{}
	tts := &fakeSynth{err: errors.New("murf down")}
	svc, silence := newService(t, tts, n)

	res := svc.Synthesize(context.Background(), "hello")
	assert.Equal(t, silence, res.Audio)
	assert.Equal(t, ports.OutcomeFailed, res.Outcome)
	assert.EqualError(t, res.Err, "murf down")
	assert.Equal(t, 1, tts.calls)
	assert.Equal(t, 1, n.calls)
}

func TestSynthesizeEmptyAudioFallsBackToSilence(t *testing.T) {
	svc, silence := newService(t, &fakeSynth{audio: []byte{}}, &fakeNotifier{})

	res := svc.Synthesize(context.Background(), "hello")
	assert.Equal(t, silence, res.Audio)
	assert.Equal(t, ports.OutcomeFailed, res.Outcome)
}
