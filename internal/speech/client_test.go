package speech

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMurfEncodedAudio(t *testing.T) {
	wavBytes := []byte("RIFF-murf-audio")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/speech/generate", r.URL.Path)
		assert.Equal(t, "murf-key", r.Header.Get("api-key"))

		var req murfRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Read this", req.Text)
		assert.Equal(t, "en-US-natalie", req.VoiceID)
		assert.Equal(t, "WAV", req.Format)
		assert.True(t, req.EncodeAsBase64)

		_ = json.NewEncoder(w).Encode(murfResponse{EncodedAudio: base64.StdEncoding.EncodeToString(wavBytes)})
	}))
	defer srv.Close()

	c := NewMurfClient("murf-key", "en-US-natalie", srv.URL, srv.Client())
	audio, err := c.Synthesize(context.Background(), "Read this")
	require.NoError(t, err)
	assert.Equal(t, wavBytes, audio)
}

func TestMurfAudioFileURL(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/speech/generate":
			_ = json.NewEncoder(w).Encode(murfResponse{AudioFile: srv.URL + "/files/out.wav"})
		case "/files/out.wav":
			_, _ = w.Write([]byte("RIFF-downloaded"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	audio, err := NewMurfClient("k", "v", srv.URL, srv.Client()).Synthesize(context.Background(), "t")
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFF-downloaded"), audio)
}

func TestMurfErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("api-key") == "bad" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"errorMessage":"invalid api key"}`))
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := NewMurfClient("bad", "v", srv.URL, srv.Client()).Synthesize(context.Background(), "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")

	_, err = NewMurfClient("ok", "v", srv.URL, srv.Client()).Synthesize(context.Background(), "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no audio")
}

func TestElevenLabsWrapsPCM(t *testing.T) {
	pcm := []byte{0x10, 0x00, 0x20, 0x00, 0x30}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/text-to-speech/voice-1", r.URL.Path)
		assert.Equal(t, "pcm_22050", r.URL.Query().Get("output_format"))
		assert.Equal(t, "xi-key", r.Header.Get("xi-api-key"))
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"text":"hi"`)
		_, _ = w.Write(pcm)
	}))
	defer srv.Close()

	audio, err := NewElevenLabsClient("xi-key", "voice-1", srv.URL, srv.Client()).Synthesize(context.Background(), "hi")
	require.NoError(t, err)

	h := parseWAVHeader(t, audio)
	assert.Equal(t, uint32(22050), h.sampleRate)
	assert.Equal(t, uint32(4), h.dataSize)
	assert.Equal(t, pcm[:4], audio[44:])
}
