package speech

import (
	"encoding/binary"
	"fmt"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	SampleRate = 22050
	Channels   = 1
	BitDepth   = 16
)

var (
	silenceOnce sync.Once
	silence     []byte
	silenceErr  error
)

// SilentWAV — валидный пустой WAV: mono, 16 bit, 22050 Hz, 0 фреймов.
func SilentWAV() ([]byte, error) {
	silenceOnce.Do(func() {
		silence, silenceErr = EncodeWAV(nil, SampleRate, Channels)
	})
	if silenceErr != nil {
		return nil, silenceErr
	}
	out := make([]byte, len(silence))
	copy(out, silence)
	return out, nil
}

// EncodeWAV заворачивает 16-bit little-endian PCM в WAV-контейнер.
// wav.Encoder пишет заголовок через Seek, поэтому собираем во временном файле.
func EncodeWAV(pcm []byte, sampleRate, channels int) ([]byte, error) {
	if len(pcm)%2 != 0 {
		return nil, fmt.Errorf("pcm payload not aligned")
	}

	file, err := os.CreateTemp("", "echomind_tts_*.wav")
	if err != nil {
		return nil, fmt.Errorf("temp file: %w", err)
	}
	defer os.Remove(file.Name())
	defer file.Close()

	samples := make([]int, len(pcm)/2)
	for i := range samples {
		samples[i] = int(int16(binary.LittleEndian.Uint16(pcm[i*2:])))
	}
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:   samples,
	}

	enc := wav.NewEncoder(file, sampleRate, BitDepth, channels, 1)
	if err := enc.Write(buf); err != nil {
		return nil, fmt.Errorf("write wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close wav encoder: %w", err)
	}

	return os.ReadFile(file.Name())
}
