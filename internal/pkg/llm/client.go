// Package llm generates answers through Groq's OpenAI-compatible chat
// completion endpoint, so the stock go-openai client works against it with a
// base URL override.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	groqBaseURL  = "https://api.groq.com/openai/v1"
	defaultModel = "llama3-8b-8192"
	systemPrompt = "You are a helpful assistant."
)

type Client struct {
	api   *openai.Client
	model string
}

func NewClient(apiKey string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: defaultModel,
	}
}

// Generate answers the question using the retrieved chunks as context.
// A non-2xx completion status comes back as an inline "Error: ..." answer
// string rather than an error — callers surface it to the user verbatim.
func (c *Client) Generate(ctx context.Context, question string, contextChunks []string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: question + " Context: " + strings.Join(contextChunks, " ")},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return fmt.Sprintf("Error: %d %s", apiErr.HTTPStatusCode, apiErr.Message), nil
		}
		return "", fmt.Errorf("groq completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("groq completion: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
