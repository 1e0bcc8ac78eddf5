package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient is the client for OpenAI chat models. It exists so the
// service can run against OpenAI when no Gemini key is available; both
// providers sit behind the same TextGenerator contract.
type OpenAIClient struct {
	client  *openai.Client
	modelID string
}

var _ TextGenerator = (*OpenAIClient)(nil)

func NewOpenAIClient(apiKey, modelID string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("openai API key cannot be empty")
	}
	return &OpenAIClient{client: openai.NewClient(apiKey), modelID: modelID}, nil
}

// GenerateText performs a standard, blocking request to the OpenAI API.
// TopK has no OpenAI equivalent and is ignored.
func (c *OpenAIClient) GenerateText(ctx context.Context, prompt string, cfg Config) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.modelID,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
		MaxTokens:   int(cfg.MaxOutputTokens),
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no content returned from OpenAI")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("empty response from OpenAI")
	}
	return text, nil
}
