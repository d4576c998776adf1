package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voice-server/internal/agents/processor"
	"voice-server/internal/apierrors"
	"voice-server/internal/observability"
	"voice-server/internal/store"
)

type Handler struct {
	processor processor.AgentsProcessor
	logger    *observability.Logger
}

func New(processor processor.AgentsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// RegisterUserRequest represents the HTTP request for creating a user
type RegisterUserRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CreateAgentRequest represents the HTTP request for creating an agent
type CreateAgentRequest struct {
	Email                   string   `json:"email" binding:"required,email"`
	AgentName               string   `json:"agent_name" binding:"required,min=1,max=255"`
	PhoneNumber             string   `json:"phone_number,omitempty"`
	LLMProvider             *string  `json:"llm_provider,omitempty"`
	LLMModel                *string  `json:"llm_model,omitempty"`
	STTProvider             *string  `json:"stt_provider,omitempty"`
	STTModel                *string  `json:"stt_model,omitempty"`
	TTSProvider             *string  `json:"tts_provider,omitempty"`
	Voice                   *string  `json:"voice,omitempty"`
	Language                *string  `json:"language,omitempty"`
	Temperature             *float64 `json:"temperature,omitempty" binding:"omitempty,gte=0,lte=2"`
	MaxTokens               *int     `json:"max_tokens,omitempty" binding:"omitempty,gte=1"`
	FirstMessage            *string  `json:"first_message,omitempty"`
	SystemPrompt            *string  `json:"system_prompt,omitempty"`
	RAGEnabled              *bool    `json:"rag_enabled,omitempty"`
	AgentType               *string  `json:"agent_type,omitempty" binding:"omitempty,oneof=inbound outbound"`
	BackgroundNoise         *string  `json:"background_noise,omitempty"`
	TTSSpeed                *float64 `json:"tts_speed,omitempty" binding:"omitempty,gte=0.25,lte=4"`
	InterruptSpeechDuration *float64 `json:"interrupt_speech_duration,omitempty" binding:"omitempty,gte=0"`
}

// UpdateAgentRequest represents the HTTP request for updating an agent
type UpdateAgentRequest struct {
	AgentName               *string  `json:"agent_name,omitempty" binding:"omitempty,min=1,max=255"`
	PhoneNumber             *string  `json:"phone_number,omitempty"`
	LLMProvider             *string  `json:"llm_provider,omitempty"`
	LLMModel                *string  `json:"llm_model,omitempty"`
	STTProvider             *string  `json:"stt_provider,omitempty"`
	STTModel                *string  `json:"stt_model,omitempty"`
	TTSProvider             *string  `json:"tts_provider,omitempty"`
	Voice                   *string  `json:"voice,omitempty"`
	Language                *string  `json:"language,omitempty"`
	Temperature             *float64 `json:"temperature,omitempty" binding:"omitempty,gte=0,lte=2"`
	MaxTokens               *int     `json:"max_tokens,omitempty" binding:"omitempty,gte=1"`
	FirstMessage            *string  `json:"first_message,omitempty"`
	SystemPrompt            *string  `json:"system_prompt,omitempty"`
	RAGEnabled              *bool    `json:"rag_enabled,omitempty"`
	AgentType               *string  `json:"agent_type,omitempty" binding:"omitempty,oneof=inbound outbound"`
	BackgroundNoise         *string  `json:"background_noise,omitempty"`
	TTSSpeed                *float64 `json:"tts_speed,omitempty" binding:"omitempty,gte=0.25,lte=4"`
	InterruptSpeechDuration *float64 `json:"interrupt_speech_duration,omitempty" binding:"omitempty,gte=0"`
}

func (h Handler) getAgentID(c *gin.Context) (uuid.UUID, bool) {
	agentID, err := uuid.Parse(c.Param("agent_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid agent ID"))
		return uuid.Nil, false
	}
	return agentID, true
}

// HandleRegisterUser creates a user with their default assistant
func (h Handler) HandleRegisterUser(c *gin.Context) {
	ctx := c.Request.Context()

	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	user, agent, err := h.processor.RegisterUser(ctx, req.Email)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  user,
		"agent": agent,
	})
}

// HandleGetUser fetches a user by email
func (h Handler) HandleGetUser(c *gin.Context) {
	ctx := c.Request.Context()

	email := c.Query("email")
	if email == "" {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "email query parameter is required"))
		return
	}

	user, err := h.processor.GetUser(ctx, email)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// HandleListUsers lists all registered users
func (h Handler) HandleListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.processor.ListUsers(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// UpdateUserRequest changes a user's email.
type UpdateUserRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// HandleUpdateUser changes a user's email
func (h Handler) HandleUpdateUser(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid user ID"))
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	user, err := h.processor.UpdateUser(ctx, userID, req.Email)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// HandleDeleteUser removes a user and their agents
func (h Handler) HandleDeleteUser(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid user ID"))
		return
	}

	if err := h.processor.DeleteUser(ctx, userID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

// HandleCreateAgent adds a configured agent to the user
func (h Handler) HandleCreateAgent(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	agent, err := h.processor.CreateAgent(ctx, processor.CreateAgentParams{
		Email:                   req.Email,
		AgentName:               req.AgentName,
		PhoneNumber:             req.PhoneNumber,
		LLMProvider:             req.LLMProvider,
		LLMModel:                req.LLMModel,
		STTProvider:             req.STTProvider,
		STTModel:                req.STTModel,
		TTSProvider:             req.TTSProvider,
		Voice:                   req.Voice,
		Language:                req.Language,
		Temperature:             req.Temperature,
		MaxTokens:               req.MaxTokens,
		FirstMessage:            req.FirstMessage,
		SystemPrompt:            req.SystemPrompt,
		RAGEnabled:              req.RAGEnabled,
		AgentType:               req.AgentType,
		BackgroundNoise:         req.BackgroundNoise,
		TTSSpeed:                req.TTSSpeed,
		InterruptSpeechDuration: req.InterruptSpeechDuration,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, agent)
}

// HandleListAgents lists the user's agents
func (h Handler) HandleListAgents(c *gin.Context) {
	ctx := c.Request.Context()

	email := c.Query("email")
	if email == "" {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "email query parameter is required"))
		return
	}

	agents, err := h.processor.ListAgents(ctx, email)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"agents": agents})
}

// HandleGetAgent fetches one agent
func (h Handler) HandleGetAgent(c *gin.Context) {
	ctx := c.Request.Context()

	agentID, ok := h.getAgentID(c)
	if !ok {
		return
	}

	agent, err := h.processor.GetAgent(ctx, agentID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, agent)
}

// HandleUpdateAgent applies a partial update to the agent config
func (h Handler) HandleUpdateAgent(c *gin.Context) {
	ctx := c.Request.Context()

	agentID, ok := h.getAgentID(c)
	if !ok {
		return
	}

	var req UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	agent, err := h.processor.UpdateAgent(ctx, agentID, store.UpdateAgentParams{
		AgentName:               req.AgentName,
		PhoneNumber:             req.PhoneNumber,
		LLMProvider:             req.LLMProvider,
		LLMModel:                req.LLMModel,
		STTProvider:             req.STTProvider,
		STTModel:                req.STTModel,
		TTSProvider:             req.TTSProvider,
		Voice:                   req.Voice,
		Language:                req.Language,
		Temperature:             req.Temperature,
		MaxTokens:               req.MaxTokens,
		FirstMessage:            req.FirstMessage,
		SystemPrompt:            req.SystemPrompt,
		RAGEnabled:              req.RAGEnabled,
		AgentType:               req.AgentType,
		BackgroundNoise:         req.BackgroundNoise,
		TTSSpeed:                req.TTSSpeed,
		InterruptSpeechDuration: req.InterruptSpeechDuration,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, agent)
}

// HandleDeleteAgent removes an agent
func (h Handler) HandleDeleteAgent(c *gin.Context) {
	ctx := c.Request.Context()

	agentID, ok := h.getAgentID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteAgent(ctx, agentID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "agent deleted"})
}
