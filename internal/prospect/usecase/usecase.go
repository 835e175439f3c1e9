package usecase

import (
	"linkreach-backend/internal/prospect/domain"
	"linkreach-backend/internal/prospect/repository"
)

type CreateProspectRequest struct {
	CampaignID  string `json:"campaign_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Headline    string `json:"headline"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	LinkedInURL string `json:"linkedin_url"`
	Email       string `json:"email"`
}

type UpdateProspectRequest struct {
	Name             *string `json:"name"`
	Headline         *string `json:"headline"`
	Company          *string `json:"company"`
	Location         *string `json:"location"`
	LinkedInURL      *string `json:"linkedin_url"`
	Email            *string `json:"email"`
	AutomationPaused *bool   `json:"automationPaused"`
}

type BulkCreateRequest struct {
	CampaignID string                  `json:"campaign_id" binding:"required"`
	Prospects  []CreateProspectRequest `json:"prospects" binding:"required,min=1"`
}

type ProspectUsecase interface {
	Create(userID string, req *CreateProspectRequest) (*domain.Prospect, error)
	BulkCreate(userID string, req *BulkCreateRequest) ([]*domain.Prospect, error)
	GetByID(userID, id string) (*domain.Prospect, error)
	List(userID string, filter repository.ListFilter) ([]*domain.Prospect, error)
	Update(userID, id string, req *UpdateProspectRequest) (*domain.Prospect, error)
	UpdateStatus(userID, id string, status domain.Status) (*domain.Prospect, error)
	Delete(userID, id string) error
	Search(userID, query string) ([]*domain.Prospect, error)
}
