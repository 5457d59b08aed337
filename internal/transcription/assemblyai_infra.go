package transcription

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
)

type AssemblyAIClient struct {
	client *aai.Client
}

func NewAssemblyAIClient(apiKey, baseURL string, httpClient *http.Client) *AssemblyAIClient {
	opts := []aai.ClientOption{aai.WithAPIKey(apiKey)}
	if baseURL = strings.TrimRight(baseURL, "/"); baseURL != "" {
		opts = append(opts, aai.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, aai.WithHTTPClient(httpClient))
	}
	return &AssemblyAIClient{client: aai.NewClientWithOptions(opts...)}
}

func (*AssemblyAIClient) Name() string { return "assemblyai" }

// Transcribe: SDK сам делает upload, создаёт транскрипт с дефолтным конфигом и ждёт completed/error.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	transcript, err := c.client.Transcripts.TranscribeFromReader(ctx, f, nil)
	if err != nil {
		return "", fmt.Errorf("assemblyai: %w", err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		id := ""
		if transcript.ID != nil {
			id = *transcript.ID
		}
		return "", fmt.Errorf("transcript %s: %s", id, msg)
	}

	raw, err := json.Marshal(transcript)
	if err != nil {
		return "", fmt.Errorf("encode assemblyai transcript: %w", err)
	}
	return extractText(raw), nil
}

// extractText: поле text, потом transcript, иначе весь ответ целиком.
func extractText(body []byte) string {
	var shape struct {
		Text       *string `json:"text"`
		Transcript *string `json:"transcript"`
	}
	if err := json.Unmarshal(body, &shape); err == nil {
		if shape.Text != nil && *shape.Text != "" {
			return strings.ToValidUTF8(*shape.Text, "\uFFFD")
		}
		if shape.Transcript != nil && *shape.Transcript != "" {
			return strings.ToValidUTF8(*shape.Transcript, "\uFFFD")
		}
	}
	return strings.ToValidUTF8(string(body), "\uFFFD")
}
