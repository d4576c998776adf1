package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateCallLogParams is the ingestion payload for one finished call.
type CreateCallLogParams struct {
	UserID               string
	AgentID              *string
	AgentName            *string
	AgentPhoneNumber     *string
	CalledNumber         *string
	CallDirection        string
	CallType             string
	StartTime            time.Time
	EndTime              time.Time
	Duration             float64
	TotalTokensLLM       int
	TotalTokensSTT       int
	TotalTokensTTS       int
	CostLLM              float64
	CostSTT              float64
	CostTTS              float64
	PlatformCost         float64
	TotalCost            float64
	ConversationAnalysis *string
}

// CallLogFilter narrows call log listings. Zero values mean no filter.
type CallLogFilter struct {
	AgentID       string
	CallDirection string
	CallType      string
	From          *time.Time
	To            *time.Time
}

// CallStats aggregates call volume, duration and cost over a window.
type CallStats struct {
	TotalCalls    int     `db:"total_calls" json:"total_calls"`
	TotalDuration float64 `db:"total_duration" json:"total_duration"`
	TotalCost     float64 `db:"total_cost" json:"total_cost"`
}

const callLogColumns = `call_log_id, user_id, agent_id, agent_name, agent_phone_number, called_number, call_direction, call_type, start_time, end_time, duration, total_tokens_llm, total_tokens_stt, total_tokens_tts, cost_llm, cost_stt, cost_tts, platform_cost, total_cost, conversation_analysis`

const sqlCreateCallLog = `
INSERT INTO call_logs (call_log_id, user_id, agent_id, agent_name, agent_phone_number, called_number, call_direction, call_type, start_time, end_time, duration, total_tokens_llm, total_tokens_stt, total_tokens_tts, cost_llm, cost_stt, cost_tts, platform_cost, total_cost, conversation_analysis)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
RETURNING ` + callLogColumns

// CreateCallLog records one finished call with its usage breakdown
func (s *Store) CreateCallLog(ctx context.Context, params CreateCallLogParams) (CallLog, error) {
	var log CallLog
	err := s.db.GetContext(ctx, &log, sqlCreateCallLog,
		uuid.New(),
		params.UserID,
		params.AgentID,
		params.AgentName,
		params.AgentPhoneNumber,
		params.CalledNumber,
		params.CallDirection,
		params.CallType,
		params.StartTime,
		params.EndTime,
		params.Duration,
		params.TotalTokensLLM,
		params.TotalTokensSTT,
		params.TotalTokensTTS,
		params.CostLLM,
		params.CostSTT,
		params.CostTTS,
		params.PlatformCost,
		params.TotalCost,
		params.ConversationAnalysis)
	if err != nil {
		s.logger.Error(ctx, "failed to create call log", err)
		return CallLog{}, fmt.Errorf("failed to create call log: %w", err)
	}
	return log, nil
}

const sqlListCallLogs = `
SELECT ` + callLogColumns + `
FROM call_logs
WHERE user_id = $1
  AND ($2 = '' OR agent_id = $2)
  AND ($3 = '' OR call_direction = $3)
  AND ($4 = '' OR call_type = $4)
  AND ($5::timestamptz IS NULL OR start_time >= $5)
  AND ($6::timestamptz IS NULL OR start_time <= $6)
ORDER BY start_time DESC
`

// ListCallLogs returns the user's call logs, newest first, applying
// any non-zero filter fields.
func (s *Store) ListCallLogs(ctx context.Context, userID string, filter CallLogFilter) ([]CallLog, error) {
	logs := []CallLog{}
	err := s.db.SelectContext(ctx, &logs, sqlListCallLogs,
		userID,
		filter.AgentID,
		filter.CallDirection,
		filter.CallType,
		filter.From,
		filter.To)
	if err != nil {
		s.logger.Error(ctx, "failed to list call logs", err)
		return nil, fmt.Errorf("failed to list call logs: %w", err)
	}
	return logs, nil
}

const sqlGetCallStats = `
SELECT COUNT(*) AS total_calls,
       COALESCE(SUM(duration), 0) AS total_duration,
       COALESCE(SUM(total_cost), 0) AS total_cost
FROM call_logs
WHERE user_id = $1
  AND ($2::timestamptz IS NULL OR start_time >= $2)
  AND ($3::timestamptz IS NULL OR start_time < $3)
`

// GetCallStats aggregates the user's calls in [from, to). Nil bounds
// leave that side of the window open.
func (s *Store) GetCallStats(ctx context.Context, userID string, from, to *time.Time) (CallStats, error) {
	var stats CallStats
	err := s.db.GetContext(ctx, &stats, sqlGetCallStats, userID, from, to)
	if err != nil {
		s.logger.Error(ctx, "failed to aggregate call stats", err)
		return CallStats{}, fmt.Errorf("failed to aggregate call stats: %w", err)
	}
	return stats, nil
}

// AgentCallStats aggregates one agent's call volume and duration.
type AgentCallStats struct {
	AgentName     string  `db:"agent_name" json:"agent_name"`
	TotalCalls    int     `db:"total_calls" json:"total_calls"`
	TotalDuration float64 `db:"total_duration" json:"total_duration"`
}

// ProviderCosts splits spend across the pipeline stages.
type ProviderCosts struct {
	CostLLM      float64 `db:"cost_llm" json:"cost_llm"`
	CostSTT      float64 `db:"cost_stt" json:"cost_stt"`
	CostTTS      float64 `db:"cost_tts" json:"cost_tts"`
	PlatformCost float64 `db:"platform_cost" json:"platform_cost"`
}

// CallTypeCount is the number of calls of one call_type.
type CallTypeCount struct {
	CallType   string `db:"call_type" json:"call_type"`
	TotalCalls int    `db:"total_calls" json:"total_calls"`
}

const sqlListAgentCallStats = `
SELECT COALESCE(agent_name, 'unknown') AS agent_name,
       COUNT(*) AS total_calls,
       COALESCE(SUM(duration), 0) AS total_duration
FROM call_logs
WHERE user_id = $1
  AND ($2::timestamptz IS NULL OR start_time >= $2)
  AND ($3::timestamptz IS NULL OR start_time < $3)
GROUP BY COALESCE(agent_name, 'unknown')
ORDER BY total_calls DESC
`

// ListAgentCallStats aggregates the user's calls per agent in [from, to).
func (s *Store) ListAgentCallStats(ctx context.Context, userID string, from, to *time.Time) ([]AgentCallStats, error) {
	stats := []AgentCallStats{}
	err := s.db.SelectContext(ctx, &stats, sqlListAgentCallStats, userID, from, to)
	if err != nil {
		s.logger.Error(ctx, "failed to aggregate per-agent call stats", err)
		return nil, fmt.Errorf("failed to aggregate per-agent call stats: %w", err)
	}
	return stats, nil
}

const sqlGetProviderCosts = `
SELECT COALESCE(SUM(cost_llm), 0) AS cost_llm,
       COALESCE(SUM(cost_stt), 0) AS cost_stt,
       COALESCE(SUM(cost_tts), 0) AS cost_tts,
       COALESCE(SUM(platform_cost), 0) AS platform_cost
FROM call_logs
WHERE user_id = $1
  AND ($2::timestamptz IS NULL OR start_time >= $2)
  AND ($3::timestamptz IS NULL OR start_time < $3)
`

// GetProviderCosts sums the user's spend per pipeline stage in [from, to).
func (s *Store) GetProviderCosts(ctx context.Context, userID string, from, to *time.Time) (ProviderCosts, error) {
	var costs ProviderCosts
	err := s.db.GetContext(ctx, &costs, sqlGetProviderCosts, userID, from, to)
	if err != nil {
		s.logger.Error(ctx, "failed to aggregate provider costs", err)
		return ProviderCosts{}, fmt.Errorf("failed to aggregate provider costs: %w", err)
	}
	return costs, nil
}

const sqlListCallTypeCounts = `
SELECT call_type, COUNT(*) AS total_calls
FROM call_logs
WHERE user_id = $1
  AND ($2::timestamptz IS NULL OR start_time >= $2)
  AND ($3::timestamptz IS NULL OR start_time < $3)
GROUP BY call_type
ORDER BY total_calls DESC
`

// ListCallTypeCounts breaks the user's calls down by call_type in [from, to).
func (s *Store) ListCallTypeCounts(ctx context.Context, userID string, from, to *time.Time) ([]CallTypeCount, error) {
	counts := []CallTypeCount{}
	err := s.db.SelectContext(ctx, &counts, sqlListCallTypeCounts, userID, from, to)
	if err != nil {
		s.logger.Error(ctx, "failed to aggregate call type counts", err)
		return nil, fmt.Errorf("failed to aggregate call type counts: %w", err)
	}
	return counts, nil
}

// CreateChatLogParams starts a chat log with its opening messages.
type CreateChatLogParams struct {
	UserID      string
	AgentID     string
	AgentName   *string
	ChatData    ChatMessages
	Result      string
	TotalTokens int
	CostLLM     float64
}

const chatLogColumns = `chat_id, user_id, agent_id, agent_name, chat_data, result, total_tokens, cost_llm, created_at, updated_at`

const sqlCreateChatLog = `
INSERT INTO chat_logs (chat_id, user_id, agent_id, agent_name, chat_data, result, total_tokens, cost_llm)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + chatLogColumns

// CreateChatLog starts a new chat conversation record
func (s *Store) CreateChatLog(ctx context.Context, params CreateChatLogParams) (ChatLog, error) {
	var log ChatLog
	err := s.db.GetContext(ctx, &log, sqlCreateChatLog,
		uuid.New(),
		params.UserID,
		params.AgentID,
		params.AgentName,
		params.ChatData,
		params.Result,
		params.TotalTokens,
		params.CostLLM)
	if err != nil {
		s.logger.Error(ctx, "failed to create chat log", err)
		return ChatLog{}, fmt.Errorf("failed to create chat log: %w", err)
	}
	return log, nil
}

const sqlGetChatLog = `
SELECT ` + chatLogColumns + ` FROM chat_logs WHERE chat_id = $1
`

// GetChatLog fetches a chat log by id
func (s *Store) GetChatLog(ctx context.Context, chatID uuid.UUID) (ChatLog, error) {
	var log ChatLog
	err := s.db.GetContext(ctx, &log, sqlGetChatLog, chatID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ChatLog{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get chat log", err)
		return ChatLog{}, fmt.Errorf("failed to get chat log: %w", err)
	}
	return log, nil
}

const sqlAppendChatMessages = `
UPDATE chat_logs
SET chat_data = chat_data || $2::jsonb,
    result = $3,
    total_tokens = total_tokens + $4,
    cost_llm = cost_llm + $5,
    updated_at = now()
WHERE chat_id = $1
RETURNING ` + chatLogColumns

// AppendChatMessages appends conversation turns to an existing chat
// log and accumulates its token and cost counters.
func (s *Store) AppendChatMessages(ctx context.Context, chatID uuid.UUID, messages ChatMessages, result string, tokens int, cost float64) (ChatLog, error) {
	var log ChatLog
	err := s.db.GetContext(ctx, &log, sqlAppendChatMessages, chatID, messages, result, tokens, cost)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ChatLog{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to append chat messages", err)
		return ChatLog{}, fmt.Errorf("failed to append chat messages: %w", err)
	}
	return log, nil
}

const sqlListChatLogs = `
SELECT ` + chatLogColumns + `
FROM chat_logs
WHERE user_id = $1
  AND ($2 = '' OR agent_id = $2)
ORDER BY updated_at DESC
`

// ListChatLogs returns the user's chat logs, most recently active
// first, optionally filtered to one agent.
func (s *Store) ListChatLogs(ctx context.Context, userID, agentID string) ([]ChatLog, error) {
	logs := []ChatLog{}
	err := s.db.SelectContext(ctx, &logs, sqlListChatLogs, userID, agentID)
	if err != nil {
		s.logger.Error(ctx, "failed to list chat logs", err)
		return nil, fmt.Errorf("failed to list chat logs: %w", err)
	}
	return logs, nil
}
