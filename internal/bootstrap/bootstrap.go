package bootstrap

import (
	"context"
	"fmt"

	"voice-server/internal/config"
	"voice-server/internal/observability"
	"voice-server/internal/provisioning"
	"voice-server/internal/store"

	agentsHandler "voice-server/internal/agents/handler"
	agentsProcessor "voice-server/internal/agents/processor"
	analyticsHandler "voice-server/internal/analytics/handler"
	analyticsProcessor "voice-server/internal/analytics/processor"
	campaignsHandler "voice-server/internal/campaigns/handler"
	campaignsProcessor "voice-server/internal/campaigns/processor"
	chatHandler "voice-server/internal/chat/handler"
	chatProcessor "voice-server/internal/chat/processor"
	openaiClient "voice-server/internal/clients/openai"
	knowledgeHandler "voice-server/internal/knowledge/handler"
	knowledgeProcessor "voice-server/internal/knowledge/processor"
	sipHandler "voice-server/internal/sip/handler"
	sipProcessor "voice-server/internal/sip/processor"
	tokensHandler "voice-server/internal/tokens/handler"
	tokensProcessor "voice-server/internal/tokens/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AgentsHandler    agentsHandler.Handler
	CampaignsHandler campaignsHandler.Handler
	SIPHandler       sipHandler.Handler
	ChatHandler      chatHandler.Handler
	KnowledgeHandler knowledgeHandler.Handler
	AnalyticsHandler analyticsHandler.Handler
	TokensHandler    tokensHandler.Handler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize clients
	provisioningClient := provisioning.New(cfg.Provisioning.Binary, cfg.Provisioning.Timeout, logger)
	completionClient := openaiClient.New(cfg.Services.OpenAIAPIKey, logger)

	// Initialize agents processor and handler
	agentsProc := agentsProcessor.NewAgentsProcessor(&deps.Store, logger)
	deps.AgentsHandler = agentsHandler.New(agentsProc, logger)

	// Initialize SIP processor and handler
	sipProc := sipProcessor.NewSIPProcessor(&deps.Store, provisioningClient, logger)
	deps.SIPHandler = sipHandler.New(sipProc, logger)

	// Initialize campaign processor and handler
	campaignsProc := campaignsProcessor.NewCampaignProcessor(
		&deps.Store,
		&deps.Store,
		provisioningClient,
		cfg.Dispatcher.MaxConcurrentCalls,
		logger,
	)
	deps.CampaignsHandler = campaignsHandler.New(campaignsProc, logger)

	// Initialize chat processor and handler
	chatProc := chatProcessor.NewChatProcessor(&deps.Store, &deps.Store, completionClient, logger)
	deps.ChatHandler = chatHandler.New(chatProc, logger)

	// Initialize knowledge processor and handler
	knowledgeProc := knowledgeProcessor.NewKnowledgeProcessor(&deps.Store, &deps.Store, completionClient, logger)
	deps.KnowledgeHandler = knowledgeHandler.New(knowledgeProc, logger)

	// Initialize analytics processor and handler
	analyticsProc := analyticsProcessor.NewAnalyticsProcessor(&deps.Store, logger)
	deps.AnalyticsHandler = analyticsHandler.New(analyticsProc, logger)

	// Initialize room token processor and handler
	tokensProc := tokensProcessor.NewTokenProcessor(
		cfg.LiveKit.APIKey,
		cfg.LiveKit.APISecret,
		cfg.LiveKit.TokenTTL,
		logger,
	)
	deps.TokensHandler = tokensHandler.New(tokensProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	d.Store.Close()
}
