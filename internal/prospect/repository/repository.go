package repository

import "linkreach-backend/internal/prospect/domain"

// ListFilter narrows tenant-scoped prospect listings.
type ListFilter struct {
	CampaignID string
	Status     domain.Status
}

// ProspectRepository persists prospects. All lookups are tenant-scoped.
type ProspectRepository interface {
	Create(prospect *domain.Prospect) error
	CreateBatch(prospects []*domain.Prospect) error
	FindByID(userID, id string) (*domain.Prospect, error)
	FindByUserID(userID string, filter ListFilter) ([]*domain.Prospect, error)
	Update(prospect *domain.Prospect) error
	Delete(userID, id string) error
	CountAll() (int64, error)
}
