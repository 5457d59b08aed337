package transcription

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/Vovarama1992/echomind/internal/infra"
)

var errEmptyTranscript = errors.New("empty transcript")

// DeepgramClient — запасной STT, если AssemblyAI не настроен.
type DeepgramClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewDeepgramClient(apiKey, baseURL string, httpClient *http.Client) *DeepgramClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	query := url.Values{
		"model":        {"nova-2"},
		"smart_format": {"true"},
		"punctuate":    {"true"},
	}
	return &DeepgramClient{
		apiKey:   apiKey,
		endpoint: strings.TrimRight(baseURL, "/") + "/v1/listen?" + query.Encode(),
		client:   httpClient,
	}
}

func (*DeepgramClient) Name() string { return "deepgram" }

type listenResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string `json:"transcript"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

func (r listenResponse) text() (string, error) {
	if len(r.Results.Channels) == 0 || len(r.Results.Channels[0].Alternatives) == 0 {
		return "", errEmptyTranscript
	}
	return r.Results.Channels[0].Alternatives[0].Transcript, nil
}

// Transcribe стримит файл в prerecorded /v1/listen, без чтения целиком в память.
func (c *DeepgramClient) Transcribe(ctx context.Context, filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, f)
	if err != nil {
		return "", err
	}
	if st, err := f.Stat(); err == nil {
		req.ContentLength = st.Size()
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", infra.ContentType(filepath.Ext(filePath)))

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("deepgram request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("deepgram error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var parsed listenResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode deepgram: %w", err)
	}
	return parsed.text()
}
