package main

import (
	"context"
	"log"
	"strings"

	api "linkreach-backend/cmd/api"
	analyticsUsecase "linkreach-backend/internal/analytics/usecase"
	authdomain "linkreach-backend/internal/auth/domain"
	authRepo "linkreach-backend/internal/auth/repository"
	authUsecase "linkreach-backend/internal/auth/usecase"
	automationdomain "linkreach-backend/internal/automation/domain"
	automationRepo "linkreach-backend/internal/automation/repository"
	automationUsecase "linkreach-backend/internal/automation/usecase"
	campaigndomain "linkreach-backend/internal/campaign/domain"
	campaignRepo "linkreach-backend/internal/campaign/repository"
	campaignUsecase "linkreach-backend/internal/campaign/usecase"
	messagedomain "linkreach-backend/internal/message/domain"
	messageRepo "linkreach-backend/internal/message/repository"
	messageUsecase "linkreach-backend/internal/message/usecase"
	"linkreach-backend/internal/notification"
	prospectdomain "linkreach-backend/internal/prospect/domain"
	prospectRepo "linkreach-backend/internal/prospect/repository"
	prospectUsecase "linkreach-backend/internal/prospect/usecase"
	"linkreach-backend/pkg/config"
	"linkreach-backend/pkg/database"
	"linkreach-backend/pkg/fcm"
	"linkreach-backend/pkg/mailer"
	"linkreach-backend/pkg/sse"
)

// @title LinkReach API
// @version 1.0
// @description Multi-tenant LinkedIn and email outreach backend.
// @BasePath /api
func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&authdomain.FCMToken{},
		&campaigndomain.Campaign{},
		&prospectdomain.Prospect{},
		&messagedomain.Message{},
		&automationdomain.Settings{},
		&automationdomain.LinkedInAccount{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	fcmTokenRepo := authRepo.NewFCMTokenRepository(db)
	campaignRepository := campaignRepo.NewCampaignRepository(db)
	prospectRepository := prospectRepo.NewProspectRepository(db)
	messageRepository := messageRepo.NewMessageRepository(db)
	settingsRepository := automationRepo.NewSettingsRepository(db)
	accountRepository := automationRepo.NewAccountRepository(db)

	// Initialize SSE Manager
	sseManager := sse.NewManager()
	go sseManager.Run()

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(userRepo, fcmTokenRepo, cfg)
	campaignUc := campaignUsecase.NewCampaignUsecase(campaignRepository)
	prospectUc := prospectUsecase.NewProspectUsecase(prospectRepository, campaignRepository)
	messageUc := messageUsecase.NewMessageUsecase(messageRepository, prospectRepository, campaignRepository, mailer.NewMockTransport())
	automationUc := automationUsecase.NewAutomationUsecase(settingsRepository, accountRepository)
	analyticsUc := analyticsUsecase.NewAnalyticsUsecase(campaignRepository, prospectRepository, messageRepository, userRepo)

	// Event bridge (Pub/Sub). Only starts when a project is configured.
	if cfg.GoogleProjectID != "" {
		// Accept a full resource name and keep the short topic name
		topicName := cfg.AutomationTopic
		if parts := strings.Split(topicName, "/"); len(parts) > 1 {
			topicName = parts[len(parts)-1]
		}
		if topicName == "" {
			topicName = "automation-events"
		}

		// FCM is optional; the bridge works without push notifications
		var fcmClient *fcm.Client
		if cfg.FirebaseCredentials != "" {
			fcmClient, err = fcm.NewClient(cfg.FirebaseCredentials)
			if err != nil {
				log.Printf("[WARN] failed to initialize FCM client (push disabled): %v", err)
			}
		}

		notifService, err := notification.NewService(cfg.GoogleProjectID, topicName, sseManager, fcmTokenRepo, fcmClient, prospectUc, messageUc, automationUc, cfg.GoogleCredentials)
		if err != nil {
			log.Printf("[ERROR] failed to initialize event bridge: %v", err)
		} else {
			go notifService.Start(context.Background())
		}
	} else {
		log.Printf("[WARN] GoogleProjectID not configured, event bridge disabled")
	}

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, campaignUc, prospectUc, messageUc, automationUc, analyticsUc, sseManager, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
