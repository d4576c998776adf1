// Package processor manages users and their configured assistants.
package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"voice-server/internal/observability"
	"voice-server/internal/phone"
	"voice-server/internal/store"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrAgentNotFound      = errors.New("agent not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Defaults applied to a new user's first agent and to sparse create
// requests.
const (
	defaultAgentName    = "Ava"
	defaultLLMProvider  = "openai"
	defaultLLMModel     = "gpt-4o-mini"
	defaultSTTProvider  = "deepgram"
	defaultSTTModel     = "nova-2"
	defaultTTSProvider  = "openai"
	defaultVoice        = "nova"
	defaultLanguage     = "en"
	defaultTemperature  = 0.7
	defaultMaxTokens    = 250
	defaultFirstMessage = "Hello! How can I help you today?"
	defaultSystemPrompt = "You are a friendly and professional voice assistant. Keep your answers short, natural and conversational."
	defaultAgentType    = "inbound"
	defaultTTSSpeed     = 1.0
	defaultInterrupt    = 0.5
)

//go:generate mockgen -source=processor.go -destination=mocks_test.go -package=processor

// Store is the persistence surface for users and agents.
type Store interface {
	CreateUser(ctx context.Context, email string) (store.User, error)
	GetUserByEmail(ctx context.Context, email string) (store.User, error)
	ListUsers(ctx context.Context) ([]store.User, error)
	UpdateUserEmail(ctx context.Context, userID uuid.UUID, email string) (store.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	CreateAgent(ctx context.Context, params store.CreateAgentParams) (store.Agent, error)
	GetAgent(ctx context.Context, agentID uuid.UUID) (store.Agent, error)
	GetAgentByName(ctx context.Context, userID uuid.UUID, agentName string) (store.Agent, error)
	ListAgentsByUser(ctx context.Context, userID uuid.UUID) ([]store.Agent, error)
	UpdateAgent(ctx context.Context, agentID uuid.UUID, params store.UpdateAgentParams) (store.Agent, error)
	DeleteAgent(ctx context.Context, agentID uuid.UUID) error
}

// AgentsProcessor owns user registration and agent CRUD.
type AgentsProcessor struct {
	store  Store
	logger *observability.Logger
}

// NewAgentsProcessor creates an AgentsProcessor.
func NewAgentsProcessor(agentStore Store, logger *observability.Logger) AgentsProcessor {
	return AgentsProcessor{
		store:  agentStore,
		logger: logger,
	}
}

// RegisterUser creates a user and their default assistant.
func (p AgentsProcessor) RegisterUser(ctx context.Context, email string) (store.User, store.Agent, error) {
	if _, err := p.store.GetUserByEmail(ctx, email); err == nil {
		return store.User{}, store.Agent{}, ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return store.User{}, store.Agent{}, err
	}

	user, err := p.store.CreateUser(ctx, email)
	if err != nil {
		return store.User{}, store.Agent{}, fmt.Errorf("failed to register user: %w", err)
	}

	agent, err := p.store.CreateAgent(ctx, defaultAgentParams(user.ID))
	if err != nil {
		return store.User{}, store.Agent{}, fmt.Errorf("failed to create default agent: %w", err)
	}

	p.logger.Info(ctx, fmt.Sprintf("registered user %s with default agent %s", user.ID, agent.ID))
	return user, agent, nil
}

func defaultAgentParams(userID uuid.UUID) store.CreateAgentParams {
	return store.CreateAgentParams{
		UserID:                  userID,
		AgentName:               defaultAgentName,
		LLMProvider:             defaultLLMProvider,
		LLMModel:                defaultLLMModel,
		STTProvider:             defaultSTTProvider,
		STTModel:                defaultSTTModel,
		TTSProvider:             defaultTTSProvider,
		Voice:                   defaultVoice,
		Language:                defaultLanguage,
		Temperature:             defaultTemperature,
		MaxTokens:               defaultMaxTokens,
		FirstMessage:            defaultFirstMessage,
		SystemPrompt:            defaultSystemPrompt,
		AgentType:               defaultAgentType,
		TTSSpeed:                defaultTTSSpeed,
		InterruptSpeechDuration: defaultInterrupt,
	}
}

// GetUser fetches a user by email.
func (p AgentsProcessor) GetUser(ctx context.Context, email string) (store.User, error) {
	user, err := p.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, ErrUserNotFound
		}
		return store.User{}, err
	}
	return user, nil
}

// ListUsers returns every registered user.
func (p AgentsProcessor) ListUsers(ctx context.Context) ([]store.User, error) {
	return p.store.ListUsers(ctx)
}

// UpdateUser changes a user's email after checking it is free.
func (p AgentsProcessor) UpdateUser(ctx context.Context, userID uuid.UUID, email string) (store.User, error) {
	if existing, err := p.store.GetUserByEmail(ctx, email); err == nil {
		if existing.ID != userID {
			return store.User{}, ErrEmailAlreadyExists
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return store.User{}, err
	}

	user, err := p.store.UpdateUserEmail(ctx, userID, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, ErrUserNotFound
		}
		return store.User{}, err
	}
	return user, nil
}

// DeleteUser removes a user and, through the schema cascade, their
// agents.
func (p AgentsProcessor) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	err := p.store.DeleteUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// CreateAgentParams carries an agent create request. Nil fields take
// the platform defaults.
type CreateAgentParams struct {
	Email                   string
	AgentName               string
	PhoneNumber             string
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

// CreateAgent adds an agent to the user, filling unset fields with
// defaults.
func (p AgentsProcessor) CreateAgent(ctx context.Context, params CreateAgentParams) (store.Agent, error) {
	user, err := p.GetUser(ctx, params.Email)
	if err != nil {
		return store.Agent{}, err
	}

	createParams := defaultAgentParams(user.ID)
	createParams.AgentName = params.AgentName
	createParams.PhoneNumber = phone.Normalize(params.PhoneNumber)
	createParams.BackgroundNoise = params.BackgroundNoise
	applyString(&createParams.LLMProvider, params.LLMProvider)
	applyString(&createParams.LLMModel, params.LLMModel)
	applyString(&createParams.STTProvider, params.STTProvider)
	applyString(&createParams.STTModel, params.STTModel)
	applyString(&createParams.TTSProvider, params.TTSProvider)
	applyString(&createParams.Voice, params.Voice)
	applyString(&createParams.Language, params.Language)
	applyString(&createParams.FirstMessage, params.FirstMessage)
	applyString(&createParams.SystemPrompt, params.SystemPrompt)
	applyString(&createParams.AgentType, params.AgentType)
	if params.Temperature != nil {
		createParams.Temperature = *params.Temperature
	}
	if params.MaxTokens != nil {
		createParams.MaxTokens = *params.MaxTokens
	}
	if params.RAGEnabled != nil {
		createParams.RAGEnabled = *params.RAGEnabled
	}
	if params.TTSSpeed != nil {
		createParams.TTSSpeed = *params.TTSSpeed
	}
	if params.InterruptSpeechDuration != nil {
		createParams.InterruptSpeechDuration = *params.InterruptSpeechDuration
	}

	agent, err := p.store.CreateAgent(ctx, createParams)
	if err != nil {
		return store.Agent{}, fmt.Errorf("failed to create agent: %w", err)
	}
	return agent, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// ListAgents returns all agents owned by the email.
func (p AgentsProcessor) ListAgents(ctx context.Context, email string) ([]store.Agent, error) {
	user, err := p.GetUser(ctx, email)
	if err != nil {
		return nil, err
	}
	return p.store.ListAgentsByUser(ctx, user.ID)
}

// GetAgent fetches one agent by id.
func (p AgentsProcessor) GetAgent(ctx context.Context, agentID uuid.UUID) (store.Agent, error) {
	agent, err := p.store.GetAgent(ctx, agentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Agent{}, ErrAgentNotFound
		}
		return store.Agent{}, err
	}
	return agent, nil
}

// GetAgentByName fetches a user's agent by display name.
func (p AgentsProcessor) GetAgentByName(ctx context.Context, email, agentName string) (store.Agent, error) {
	user, err := p.GetUser(ctx, email)
	if err != nil {
		return store.Agent{}, err
	}
	agent, err := p.store.GetAgentByName(ctx, user.ID, agentName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Agent{}, ErrAgentNotFound
		}
		return store.Agent{}, err
	}
	return agent, nil
}

// UpdateAgent applies the non-nil fields to the agent.
func (p AgentsProcessor) UpdateAgent(ctx context.Context, agentID uuid.UUID, params store.UpdateAgentParams) (store.Agent, error) {
	if params.PhoneNumber != nil {
		normalized := phone.Normalize(*params.PhoneNumber)
		params.PhoneNumber = &normalized
	}
	agent, err := p.store.UpdateAgent(ctx, agentID, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Agent{}, ErrAgentNotFound
		}
		return store.Agent{}, err
	}
	return agent, nil
}

// DeleteAgent removes an agent.
func (p AgentsProcessor) DeleteAgent(ctx context.Context, agentID uuid.UUID) error {
	err := p.store.DeleteAgent(ctx, agentID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrAgentNotFound
	}
	return err
}
