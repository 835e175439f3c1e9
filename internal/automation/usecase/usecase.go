package usecase

import (
	"linkreach-backend/internal/automation/domain"
	"linkreach-backend/internal/automation/dto"
)

// AutomationUsecase answers whether each automation type is within its daily
// quota and manages the tenant's automation configuration.
type AutomationUsecase interface {
	Status(userID string) (*dto.StatusResponse, error)
	GetSettings(userID string) (*domain.Settings, error)
	UpdateSettings(userID string, req *dto.UpdateSettingsRequest) (*domain.Settings, error)

	// RecordAction is called by the event bridge when the automation backend
	// reports a performed action. The matching usage counter is incremented
	// after the lazy day-boundary reset has been applied.
	RecordAction(userID string, t domain.AutomationType) error
}
