package summary

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	systemInstruction = "You are an assistant that extracts a concise 2-3 line summary and 3 action items from meeting transcript."
	maxTokens         = 200
	temperature       = 0.2
)

type OpenAISummarizer struct {
	client *openai.Client
	model  string
}

func NewOpenAISummarizer(apiKey, model, baseURL string, httpClient *http.Client) *OpenAISummarizer {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAISummarizer{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenAISummarizer) Summarize(ctx context.Context, transcript string) (Summary, error) {
	raw, err := c.GetCompletion(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
		{Role: openai.ChatMessageRoleUser, Content: transcript},
	})
	if err != nil {
		return Summary{}, err
	}
	return ParseSummary(raw), nil
}

func (c *OpenAISummarizer) GetCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", analyzeOpenAIError(err), err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// диагностика ошибок GPT
func analyzeOpenAIError(err error) string {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "status code: 401"):
		return "invalid OpenAI API key"
	case strings.Contains(msg, "status code: 404"):
		return "model not found"
	case strings.Contains(msg, "status code: 429"):
		return "OpenAI rate limit exceeded"
	case strings.Contains(msg, "status code: 400") && strings.Contains(msg, "model"):
		return "invalid model"
	case strings.Contains(msg, "status code: 400"):
		return "bad request to OpenAI"
	case strings.Contains(msg, "status code: 5"):
		return "OpenAI internal error"
	}
	return "openai request failed"
}
