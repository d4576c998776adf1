// Package processor implements the text chat playground: it runs agent
// conversations through the LLM and keeps a durable per-chat log with
// accumulated usage.
package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	openaiClient "voice-server/internal/clients/openai"
	"voice-server/internal/observability"
	"voice-server/internal/store"
)

var (
	// ErrChatLogNotFound indicates no chat logs match the query.
	ErrChatLogNotFound = errors.New("chat log not found")
	// ErrCompletionFailed indicates the LLM call failed.
	ErrCompletionFailed = errors.New("chat completion failed")
)

const (
	chatModel       = "gpt-4o-mini"
	chatTemperature = 0.3
	chatMaxTokens   = 1000
	costPerToken    = 0.00002
)

//go:generate mockgen -source=processor.go -destination=mocks_test.go -package=processor

// ChatStore persists chat logs.
type ChatStore interface {
	CreateChatLog(ctx context.Context, params store.CreateChatLogParams) (store.ChatLog, error)
	GetChatLog(ctx context.Context, chatID uuid.UUID) (store.ChatLog, error)
	AppendChatMessages(ctx context.Context, chatID uuid.UUID, messages store.ChatMessages, result string, tokens int, cost float64) (store.ChatLog, error)
	ListChatLogs(ctx context.Context, userID, agentID string) ([]store.ChatLog, error)
}

// AgentStore resolves the agent configuration driving the chat.
type AgentStore interface {
	GetAgent(ctx context.Context, agentID uuid.UUID) (store.Agent, error)
}

// Completer runs one chat completion.
type Completer interface {
	Complete(ctx context.Context, model, systemPrompt string, messages []openaiClient.Message, temperature float64, maxTokens int) (openaiClient.Completion, error)
}

// ChatProcessor owns chat turns and chat log queries.
type ChatProcessor struct {
	store     ChatStore
	agents    AgentStore
	completer Completer
	logger    *observability.Logger
}

// NewChatProcessor creates a ChatProcessor.
func NewChatProcessor(chatStore ChatStore, agents AgentStore, completer Completer, logger *observability.Logger) ChatProcessor {
	return ChatProcessor{
		store:     chatStore,
		agents:    agents,
		completer: completer,
		logger:    logger,
	}
}

// ChatParams is one user turn. A nil ChatID starts a new conversation.
type ChatParams struct {
	UserID  string
	AgentID uuid.UUID
	ChatID  *uuid.UUID
	Message string
}

// ChatResult is the assistant's reply with the conversation's
// accumulated usage.
type ChatResult struct {
	ChatID      uuid.UUID `json:"chat_id"`
	Reply       string    `json:"reply"`
	TotalTokens int       `json:"total_tokens"`
	CostLLM     float64   `json:"cost_llm"`
}

// Chat runs one turn: it loads the agent and any prior history, calls
// the model, and durably appends both the user turn and the reply.
func (p ChatProcessor) Chat(ctx context.Context, params ChatParams) (ChatResult, error) {
	agent, err := p.agents.GetAgent(ctx, params.AgentID)
	if err != nil {
		return ChatResult{}, err
	}

	var history store.ChatMessages
	if params.ChatID != nil {
		log, err := p.store.GetChatLog(ctx, *params.ChatID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ChatResult{}, ErrChatLogNotFound
			}
			return ChatResult{}, err
		}
		history = log.ChatData
	}

	turn := store.ChatMessage{Role: "user", Content: params.Message}
	messages := make([]openaiClient.Message, 0, len(history)+1)
	for _, m := range history {
		messages = append(messages, openaiClient.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, openaiClient.Message{Role: turn.Role, Content: turn.Content})

	completion, err := p.completer.Complete(ctx, chatModel, agent.SystemPrompt, messages, chatTemperature, chatMaxTokens)
	if err != nil {
		p.logger.Error(ctx, "chat completion failed", err)
		return ChatResult{}, fmt.Errorf("%w: %v", ErrCompletionFailed, err)
	}

	reply := store.ChatMessage{Role: "assistant", Content: completion.Content}
	cost := float64(completion.TotalTokens) * costPerToken

	var log store.ChatLog
	if params.ChatID != nil {
		log, err = p.store.AppendChatMessages(ctx, *params.ChatID, store.ChatMessages{turn, reply}, completion.Content, completion.TotalTokens, cost)
	} else {
		agentName := agent.AgentName
		log, err = p.store.CreateChatLog(ctx, store.CreateChatLogParams{
			UserID:      params.UserID,
			AgentID:     params.AgentID.String(),
			AgentName:   &agentName,
			ChatData:    store.ChatMessages{turn, reply},
			Result:      completion.Content,
			TotalTokens: completion.TotalTokens,
			CostLLM:     cost,
		})
	}
	if err != nil {
		return ChatResult{}, err
	}

	return ChatResult{
		ChatID:      log.ChatID,
		Reply:       completion.Content,
		TotalTokens: log.TotalTokens,
		CostLLM:     log.CostLLM,
	}, nil
}

// GetChatLog fetches one conversation.
func (p ChatProcessor) GetChatLog(ctx context.Context, chatID uuid.UUID) (store.ChatLog, error) {
	log, err := p.store.GetChatLog(ctx, chatID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ChatLog{}, ErrChatLogNotFound
		}
		return store.ChatLog{}, err
	}
	return log, nil
}

// ListChatLogs returns the user's conversations, optionally filtered
// to one agent. An empty result is a not-found condition.
func (p ChatProcessor) ListChatLogs(ctx context.Context, userID, agentID string) ([]store.ChatLog, error) {
	logs, err := p.store.ListChatLogs(ctx, userID, agentID)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, ErrChatLogNotFound
	}
	return logs, nil
}
