package usecase

import "linkreach-backend/internal/campaign/domain"

type CreateCampaignRequest struct {
	Name               string `json:"name" binding:"required"`
	Description        string `json:"description"`
	SearchTitle        string `json:"searchTitle"`
	SearchCompany      string `json:"searchCompany"`
	SearchLocation     string `json:"searchLocation"`
	SearchKeywords     string `json:"searchKeywords"`
	ConnectionTemplate string `json:"connectionTemplate"`
	FollowUpTemplate   string `json:"followUpTemplate"`
}

type UpdateCampaignRequest struct {
	Name               *string `json:"name"`
	Description        *string `json:"description"`
	Status             *string `json:"status"`
	SearchTitle        *string `json:"searchTitle"`
	SearchCompany      *string `json:"searchCompany"`
	SearchLocation     *string `json:"searchLocation"`
	SearchKeywords     *string `json:"searchKeywords"`
	ConnectionTemplate *string `json:"connectionTemplate"`
	FollowUpTemplate   *string `json:"followUpTemplate"`
}

type CampaignUsecase interface {
	Create(userID string, req *CreateCampaignRequest) (*domain.Campaign, error)
	GetByID(userID, id string) (*domain.Campaign, error)
	List(userID string) ([]*domain.Campaign, error)
	Update(userID, id string, req *UpdateCampaignRequest) (*domain.Campaign, error)
	Delete(userID, id string) error
}
