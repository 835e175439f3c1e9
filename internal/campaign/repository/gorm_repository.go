package repository

import (
	"errors"
	"time"

	"linkreach-backend/internal/campaign/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type campaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &campaignRepository{db: db}
}

func (r *campaignRepository) Create(campaign *domain.Campaign) error {
	if campaign.ID == "" {
		campaign.ID = uuid.New().String()
	}
	if campaign.Status == "" {
		campaign.Status = domain.StatusDraft
	}
	campaign.CreatedAt = time.Now()
	campaign.UpdatedAt = time.Now()
	return r.db.Create(campaign).Error
}

func (r *campaignRepository) FindByID(userID, id string) (*domain.Campaign, error) {
	var campaign domain.Campaign
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&campaign).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *campaignRepository) FindByUserID(userID string) ([]*domain.Campaign, error) {
	var campaigns []*domain.Campaign
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&campaigns).Error
	return campaigns, err
}

func (r *campaignRepository) Update(campaign *domain.Campaign) error {
	campaign.UpdatedAt = time.Now()
	return r.db.Save(campaign).Error
}

func (r *campaignRepository) Delete(userID, id string) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Campaign{}).Error
}

func (r *campaignRepository) FindAll() ([]*domain.Campaign, error) {
	var campaigns []*domain.Campaign
	err := r.db.Find(&campaigns).Error
	return campaigns, err
}
