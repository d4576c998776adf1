package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	agentsHandler "voice-server/internal/agents/handler"
	analyticsHandler "voice-server/internal/analytics/handler"
	campaignsHandler "voice-server/internal/campaigns/handler"
	chatHandler "voice-server/internal/chat/handler"
	knowledgeHandler "voice-server/internal/knowledge/handler"
	sipHandler "voice-server/internal/sip/handler"
	tokensHandler "voice-server/internal/tokens/handler"
)

type API struct {
	router           *gin.RouterGroup
	agentsHandler    agentsHandler.Handler
	campaignsHandler campaignsHandler.Handler
	sipHandler       sipHandler.Handler
	chatHandler      chatHandler.Handler
	knowledgeHandler knowledgeHandler.Handler
	analyticsHandler analyticsHandler.Handler
	tokensHandler    tokensHandler.Handler
}

func New(
	router *gin.RouterGroup,
	agentsHandler agentsHandler.Handler,
	campaignsHandler campaignsHandler.Handler,
	sipHandler sipHandler.Handler,
	chatHandler chatHandler.Handler,
	knowledgeHandler knowledgeHandler.Handler,
	analyticsHandler analyticsHandler.Handler,
	tokensHandler tokensHandler.Handler,
) API {
	return API{
		router:           router,
		agentsHandler:    agentsHandler,
		campaignsHandler: campaignsHandler,
		sipHandler:       sipHandler,
		chatHandler:      chatHandler,
		knowledgeHandler: knowledgeHandler,
		analyticsHandler: analyticsHandler,
		tokensHandler:    tokensHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		userGroup := apiGroup.Group("/users")
		userGroup.POST("", a.agentsHandler.HandleRegisterUser)
		userGroup.GET("", a.agentsHandler.HandleGetUser)
		userGroup.GET("/all", a.agentsHandler.HandleListUsers)
		userGroup.PATCH("/:user_id", a.agentsHandler.HandleUpdateUser)
		userGroup.DELETE("/:user_id", a.agentsHandler.HandleDeleteUser)

		agentGroup := apiGroup.Group("/agents")
		agentGroup.POST("", a.agentsHandler.HandleCreateAgent)
		agentGroup.GET("", a.agentsHandler.HandleListAgents)
		agentGroup.GET("/:agent_id", a.agentsHandler.HandleGetAgent)
		agentGroup.PATCH("/:agent_id", a.agentsHandler.HandleUpdateAgent)
		agentGroup.DELETE("/:agent_id", a.agentsHandler.HandleDeleteAgent)
		agentGroup.POST("/:agent_id/files", a.knowledgeHandler.HandleUploadFiles)
		agentGroup.GET("/:agent_id/files", a.knowledgeHandler.HandleListFiles)
		agentGroup.DELETE("/:agent_id/files", a.knowledgeHandler.HandleDeleteFile)
		agentGroup.GET("/:agent_id/knowledge-base", a.knowledgeHandler.HandleGetKnowledgeBase)
		agentGroup.GET("/:agent_id/retrieve", a.knowledgeHandler.HandleRetrieve)

		campaignGroup := apiGroup.Group("/campaigns")
		campaignGroup.POST("", a.campaignsHandler.HandleCreateCampaign)
		campaignGroup.GET("", a.campaignsHandler.HandleListCampaigns)
		campaignGroup.GET("/:campaign_id", a.campaignsHandler.HandleGetCampaign)
		campaignGroup.PATCH("/:campaign_id", a.campaignsHandler.HandleUpdateCampaign)
		campaignGroup.DELETE("/:campaign_id", a.campaignsHandler.HandleDeleteCampaign)
		campaignGroup.POST("/:campaign_id/numbers", a.campaignsHandler.HandleAddNumbers)
		campaignGroup.POST("/:campaign_id/numbers/import", a.campaignsHandler.HandleImportNumbers)
		campaignGroup.DELETE("/:campaign_id/numbers", a.campaignsHandler.HandleDeleteNumber)
		campaignGroup.PATCH("/:campaign_id/numbers", a.campaignsHandler.HandleUpdateNumber)
		campaignGroup.POST("/:campaign_id/start", a.campaignsHandler.HandleStartCampaign)
		campaignGroup.GET("/:campaign_id/call-status", a.campaignsHandler.HandleGetCallStatus)
		campaignGroup.GET("/:campaign_id/status", a.campaignsHandler.HandleGetStatus)

		sipGroup := apiGroup.Group("/sip")
		sipGroup.POST("/configure", a.sipHandler.HandleConfigure)
		sipGroup.GET("/numbers", a.sipHandler.HandleListNumbers)
		sipGroup.POST("/map-agent", a.sipHandler.HandleMapAgent)
		sipGroup.PATCH("/numbers", a.sipHandler.HandleUpdate)
		sipGroup.DELETE("/numbers", a.sipHandler.HandleDelete)
		sipGroup.POST("/test-call", a.sipHandler.HandleTestCall)

		chatGroup := apiGroup.Group("/chat")
		chatGroup.POST("", a.chatHandler.HandleChat)
		chatGroup.GET("/logs", a.chatHandler.HandleListChatLogs)
		chatGroup.GET("/logs/:chat_id", a.chatHandler.HandleGetChatLog)

		analyticsGroup := apiGroup.Group("/analytics")
		analyticsGroup.POST("/call-logs", a.analyticsHandler.HandleRecordCall)
		analyticsGroup.GET("/call-logs", a.analyticsHandler.HandleListCallLogs)
		analyticsGroup.GET("/dashboard", a.analyticsHandler.HandleGetDashboard)

		apiGroup.GET("/generate-token", a.tokensHandler.HandleGenerateToken)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
