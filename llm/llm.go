package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/sashabaranov/go-openai"
)

const coordinatorSystemPrompt = "You are an emergency response coordinator AI that turns citizen help requests into actionable dispatch tasks. Respond only with valid JSON."

// openaiClient is a singleton OpenAI client instance.
var (
	openaiClient *openai.Client
	clientOnce   sync.Once
)

// Client wraps the OpenAI chat completion API behind the single
// prompt-in/text-out operation the workflow needs. No retries; a failed
// call is the caller's signal to fall back.
type Client struct {
	api *openai.Client
}

// NewClient initializes a Client backed by a singleton OpenAI client.
// The key check happens before the sync.Once so a failed first call does
// not poison later ones.
func NewClient() (*Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	clientOnce.Do(func() {
		openaiClient = openai.NewClient(apiKey)
	})
	return &Client{api: openaiClient}, nil
}

// Complete sends the prompt and returns the model's raw text response.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: coordinatorSystemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   300,
			N:           1,
			Temperature: 0.3, // Lower temperature for more consistent role assignment
		},
	)

	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
