package api

import (
	"log"
	"net/http"
	"time"

	"github.com/Depado/ginprom"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	analyticsUsecasePkg "linkreach-backend/internal/analytics/usecase"
	authUsecasePkg "linkreach-backend/internal/auth/usecase"
	automationUsecasePkg "linkreach-backend/internal/automation/usecase"
	campaignUsecasePkg "linkreach-backend/internal/campaign/usecase"
	messageUsecasePkg "linkreach-backend/internal/message/usecase"
	prospectUsecasePkg "linkreach-backend/internal/prospect/usecase"
	"linkreach-backend/pkg/ai"
	"linkreach-backend/pkg/config"
	"linkreach-backend/pkg/sse"
)

type Handler struct {
	authUsecase       authUsecasePkg.AuthUsecase
	campaignUsecase   campaignUsecasePkg.CampaignUsecase
	prospectUsecase   prospectUsecasePkg.ProspectUsecase
	messageUsecase    messageUsecasePkg.MessageUsecase
	automationUsecase automationUsecasePkg.AutomationUsecase
	analyticsUsecase  analyticsUsecasePkg.AnalyticsUsecase
	sseManager        *sse.Manager
	config            *config.Config
	aiSettingsHandler *AISettingsHandler
}

func NewHandler(authUc authUsecasePkg.AuthUsecase, campaignUc campaignUsecasePkg.CampaignUsecase, prospectUc prospectUsecasePkg.ProspectUsecase, messageUc messageUsecasePkg.MessageUsecase, automationUc automationUsecasePkg.AutomationUsecase, analyticsUc analyticsUsecasePkg.AnalyticsUsecase, sseManager *sse.Manager, cfg *config.Config) *Handler {
	// Runtime config backs the admin AI settings API.
	InitRuntimeConfig(cfg.OllamaBaseURL, cfg.OllamaModel)

	aiService, err := ai.NewDraftService(ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
	})
	if err != nil {
		log.Printf("Warning: failed to initialize AI service: %v", err)
	} else {
		log.Printf("AI service initialized with provider: %s", cfg.AIProvider)
		messageUc.SetDraftService(aiService)
	}

	return &Handler{
		authUsecase:       authUc,
		campaignUsecase:   campaignUc,
		prospectUsecase:   prospectUc,
		messageUsecase:    messageUc,
		automationUsecase: automationUc,
		analyticsUsecase:  analyticsUc,
		sseManager:        sseManager,
		config:            cfg,
		aiSettingsHandler: NewAISettingsHandler(messageUc, ai.ProviderType(cfg.AIProvider)),
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     h.config.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With", "Origin", "Accept", "Cache-Control"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	p := ginprom.New(
		ginprom.Engine(r),
		ginprom.Subsystem("gin"),
		ginprom.Path("/metrics"),
		ginprom.Ignore("/docs/*any"),
	)
	r.Use(p.Instrument())

	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	SetupRoutes(r, h)

	return r.Run(addr)
}
