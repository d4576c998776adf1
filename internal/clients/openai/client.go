// Package openai wraps the OpenAI chat completion API for the chat
// playground.
package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	openaiOption "github.com/openai/openai-go/option"

	"voice-server/internal/observability"
)

// Message is one chat turn sent to the model.
type Message struct {
	Role    string
	Content string
}

// Completion is the model's reply with its token usage.
type Completion struct {
	Content     string
	TotalTokens int
}

// Client calls the OpenAI chat completion endpoint.
type Client struct {
	client openai.Client
	logger *observability.Logger
}

// New creates a Client with the given API key.
func New(apiKey string, logger *observability.Logger) Client {
	return Client{
		client: openai.NewClient(openaiOption.WithAPIKey(apiKey)),
		logger: logger,
	}
}

// Complete sends the conversation to the model and returns its reply.
// The system prompt, when set, is prepended to the history.
func (c Client) Complete(ctx context.Context, model, systemPrompt string, messages []Message, temperature float64, maxTokens int) (Completion, error) {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(model),
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(int64(maxTokens)),
	}

	history := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)+1)
	if systemPrompt != "" {
		history = append(history, openai.SystemMessage(systemPrompt))
	}
	for _, m := range messages {
		if m.Role == "assistant" {
			history = append(history, openai.AssistantMessage(m.Content))
			continue
		}
		history = append(history, openai.UserMessage(m.Content))
	}
	params.Messages = history

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		c.logger.Error(ctx, "chat completion request failed", err)
		return Completion{}, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return Completion{}, errors.New("chat completion returned no choices")
	}

	return Completion{
		Content:     completion.Choices[0].Message.Content,
		TotalTokens: int(completion.Usage.TotalTokens),
	}, nil
}
