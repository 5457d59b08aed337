package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type MurfClient struct {
	apiKey  string
	voiceID string
	baseURL string
	httpCli *http.Client
}

func NewMurfClient(apiKey, voiceID, baseURL string, httpCli *http.Client) *MurfClient {
	if httpCli == nil {
		httpCli = http.DefaultClient
	}
	return &MurfClient{
		apiKey:  apiKey,
		voiceID: voiceID,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpCli: httpCli,
	}
}

type murfRequest struct {
	Text           string `json:"text"`
	VoiceID        string `json:"voiceId"`
	Format         string `json:"format"`
	SampleRate     int    `json:"sampleRate"`
	ChannelType    string `json:"channelType"`
	EncodeAsBase64 bool   `json:"encodeAsBase64"`
}

type murfResponse struct {
	AudioFile    string `json:"audioFile"`
	EncodedAudio string `json:"encodedAudio"`
}

// TEXT → SPEECH (WAV)
func (c *MurfClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	payload, err := json.Marshal(murfRequest{
		Text:           text,
		VoiceID:        c.voiceID,
		Format:         "WAV",
		SampleRate:     SampleRate,
		ChannelType:    "MONO",
		EncodeAsBase64: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/speech/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("murf request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("murf error: status %d: %s", resp.StatusCode, b)
	}

	var parsed murfResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode murf: %w", err)
	}

	switch {
	case parsed.EncodedAudio != "":
		audio, err := base64.StdEncoding.DecodeString(parsed.EncodedAudio)
		if err != nil {
			return nil, fmt.Errorf("decode murf audio: %w", err)
		}
		return audio, nil
	case parsed.AudioFile != "":
		return c.download(ctx, parsed.AudioFile)
	}
	return nil, fmt.Errorf("murf returned no audio")
}

func (c *MurfClient) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("murf download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("murf download: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
