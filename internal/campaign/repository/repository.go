package repository

import "linkreach-backend/internal/campaign/domain"

// CampaignRepository persists campaigns. Every lookup is scoped by the owning
// tenant's id; a campaign id belonging to another tenant behaves as absent.
type CampaignRepository interface {
	Create(campaign *domain.Campaign) error
	FindByID(userID, id string) (*domain.Campaign, error)
	FindByUserID(userID string) ([]*domain.Campaign, error)
	Update(campaign *domain.Campaign) error
	Delete(userID, id string) error

	// FindAll spans every tenant; admin analytics only.
	FindAll() ([]*domain.Campaign, error)
}
