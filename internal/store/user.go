package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlCreateUser = `
INSERT INTO users (id, email)
VALUES ($1, $2)
RETURNING id, email, created_at, updated_at
`

// CreateUser inserts a new user keyed by email
func (s *Store) CreateUser(ctx context.Context, email string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlCreateUser, uuid.New(), email)
	if err != nil {
		s.logger.Error(ctx, "failed to create user", err)
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

const sqlGetUserByEmail = `
SELECT id, email, created_at, updated_at FROM users WHERE email = $1
`

// GetUserByEmail fetches a user by email
func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user", err)
		return User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

const sqlListUsers = `
SELECT id, email, created_at, updated_at FROM users ORDER BY created_at
`

// ListUsers returns all registered users
func (s *Store) ListUsers(ctx context.Context) ([]User, error) {
	users := []User{}
	err := s.db.SelectContext(ctx, &users, sqlListUsers)
	if err != nil {
		s.logger.Error(ctx, "failed to list users", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

const sqlUpdateUserEmail = `
UPDATE users
SET email = $2, updated_at = now()
WHERE id = $1
RETURNING id, email, created_at, updated_at
`

// UpdateUserEmail changes a user's email
func (s *Store) UpdateUserEmail(ctx context.Context, userID uuid.UUID, email string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlUpdateUserEmail, userID, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update user", err)
		return User{}, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

const sqlDeleteUser = `
DELETE FROM users WHERE id = $1
`

// DeleteUser removes a user; agents cascade at the schema level.
func (s *Store) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, sqlDeleteUser, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete user", err)
		return fmt.Errorf("failed to delete user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateAgentParams holds the full agent configuration at insert time.
type CreateAgentParams struct {
	UserID                  uuid.UUID
	AgentName               string
	PhoneNumber             string
	LLMProvider             string
	LLMModel                string
	STTProvider             string
	STTModel                string
	TTSProvider             string
	Voice                   string
	Language                string
	Temperature             float64
	MaxTokens               int
	FirstMessage            string
	SystemPrompt            string
	RAGEnabled              bool
	AgentType               string
	BackgroundNoise         *string
	TTSSpeed                float64
	InterruptSpeechDuration float64
}

// UpdateAgentParams holds optional agent fields; nil means keep current.
type UpdateAgentParams struct {
	AgentName               *string
	PhoneNumber             *string
	LLMProvider             *string
	LLMModel                *string
	STTProvider             *string
	STTModel                *string
	TTSProvider             *string
	Voice                   *string
	Language                *string
	Temperature             *float64
	MaxTokens               *int
	FirstMessage            *string
	SystemPrompt            *string
	RAGEnabled              *bool
	AgentType               *string
	BackgroundNoise         *string
	TTSSpeed                *float64
	InterruptSpeechDuration *float64
}

const agentColumns = `id, user_id, agent_name, phone_number, llm_provider, llm_model, stt_provider, stt_model, tts_provider, voice, language, temperature, max_tokens, first_message, system_prompt, rag_enabled, agent_type, background_noise, tts_speed, interrupt_speech_duration, created_at, updated_at`

const sqlCreateAgent = `
INSERT INTO agents (id, user_id, agent_name, phone_number, llm_provider, llm_model, stt_provider, stt_model, tts_provider, voice, language, temperature, max_tokens, first_message, system_prompt, rag_enabled, agent_type, background_noise, tts_speed, interrupt_speech_duration)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
RETURNING ` + agentColumns

// CreateAgent inserts an agent configuration for a user
func (s *Store) CreateAgent(ctx context.Context, params CreateAgentParams) (Agent, error) {
	var agent Agent
	err := s.db.GetContext(ctx, &agent, sqlCreateAgent,
		uuid.New(),
		params.UserID,
		params.AgentName,
		params.PhoneNumber,
		params.LLMProvider,
		params.LLMModel,
		params.STTProvider,
		params.STTModel,
		params.TTSProvider,
		params.Voice,
		params.Language,
		params.Temperature,
		params.MaxTokens,
		params.FirstMessage,
		params.SystemPrompt,
		params.RAGEnabled,
		params.AgentType,
		params.BackgroundNoise,
		params.TTSSpeed,
		params.InterruptSpeechDuration)
	if err != nil {
		s.logger.Error(ctx, "failed to create agent", err)
		return Agent{}, fmt.Errorf("failed to create agent: %w", err)
	}
	return agent, nil
}

const sqlGetAgent = `
SELECT ` + agentColumns + ` FROM agents WHERE id = $1
`

// GetAgent fetches an agent by id
func (s *Store) GetAgent(ctx context.Context, agentID uuid.UUID) (Agent, error) {
	var agent Agent
	err := s.db.GetContext(ctx, &agent, sqlGetAgent, agentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Agent{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get agent", err)
		return Agent{}, fmt.Errorf("failed to get agent: %w", err)
	}
	return agent, nil
}

const sqlListAgentsByUser = `
SELECT ` + agentColumns + ` FROM agents WHERE user_id = $1 ORDER BY created_at
`

// ListAgentsByUser returns all agents owned by the user
func (s *Store) ListAgentsByUser(ctx context.Context, userID uuid.UUID) ([]Agent, error) {
	agents := []Agent{}
	err := s.db.SelectContext(ctx, &agents, sqlListAgentsByUser, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to list agents", err)
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agents, nil
}

const sqlGetAgentByName = `
SELECT ` + agentColumns + ` FROM agents WHERE user_id = $1 AND agent_name = $2
`

// GetAgentByName fetches a user's agent by its display name
func (s *Store) GetAgentByName(ctx context.Context, userID uuid.UUID, agentName string) (Agent, error) {
	var agent Agent
	err := s.db.GetContext(ctx, &agent, sqlGetAgentByName, userID, agentName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Agent{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get agent by name", err)
		return Agent{}, fmt.Errorf("failed to get agent by name: %w", err)
	}
	return agent, nil
}

const sqlUpdateAgent = `
UPDATE agents
SET agent_name = COALESCE($2, agent_name),
    phone_number = COALESCE($3, phone_number),
    llm_provider = COALESCE($4, llm_provider),
    llm_model = COALESCE($5, llm_model),
    stt_provider = COALESCE($6, stt_provider),
    stt_model = COALESCE($7, stt_model),
    tts_provider = COALESCE($8, tts_provider),
    voice = COALESCE($9, voice),
    language = COALESCE($10, language),
    temperature = COALESCE($11, temperature),
    max_tokens = COALESCE($12, max_tokens),
    first_message = COALESCE($13, first_message),
    system_prompt = COALESCE($14, system_prompt),
    rag_enabled = COALESCE($15, rag_enabled),
    agent_type = COALESCE($16, agent_type),
    background_noise = COALESCE($17, background_noise),
    tts_speed = COALESCE($18, tts_speed),
    interrupt_speech_duration = COALESCE($19, interrupt_speech_duration),
    updated_at = now()
WHERE id = $1
RETURNING ` + agentColumns

// UpdateAgent applies the non-nil fields of params to the agent
func (s *Store) UpdateAgent(ctx context.Context, agentID uuid.UUID, params UpdateAgentParams) (Agent, error) {
	var agent Agent
	err := s.db.GetContext(ctx, &agent, sqlUpdateAgent,
		agentID,
		params.AgentName,
		params.PhoneNumber,
		params.LLMProvider,
		params.LLMModel,
		params.STTProvider,
		params.STTModel,
		params.TTSProvider,
		params.Voice,
		params.Language,
		params.Temperature,
		params.MaxTokens,
		params.FirstMessage,
		params.SystemPrompt,
		params.RAGEnabled,
		params.AgentType,
		params.BackgroundNoise,
		params.TTSSpeed,
		params.InterruptSpeechDuration)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Agent{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update agent", err)
		return Agent{}, fmt.Errorf("failed to update agent: %w", err)
	}
	return agent, nil
}

const sqlDeleteAgent = `
DELETE FROM agents WHERE id = $1
`

// DeleteAgent removes an agent by id
func (s *Store) DeleteAgent(ctx context.Context, agentID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, sqlDeleteAgent, agentID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete agent", err)
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
