package repository

import (
	"errors"
	"time"

	"linkreach-backend/internal/prospect/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type prospectRepository struct {
	db *gorm.DB
}

func NewProspectRepository(db *gorm.DB) ProspectRepository {
	return &prospectRepository{db: db}
}

func (r *prospectRepository) Create(prospect *domain.Prospect) error {
	prepare(prospect)
	return r.db.Create(prospect).Error
}

func (r *prospectRepository) CreateBatch(prospects []*domain.Prospect) error {
	if len(prospects) == 0 {
		return nil
	}
	for _, p := range prospects {
		prepare(p)
	}
	return r.db.Create(&prospects).Error
}

func prepare(p *domain.Prospect) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = domain.StatusNew
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
}

func (r *prospectRepository) FindByID(userID, id string) (*domain.Prospect, error) {
	var prospect domain.Prospect
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&prospect).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prospect, nil
}

func (r *prospectRepository) FindByUserID(userID string, filter ListFilter) ([]*domain.Prospect, error) {
	query := r.db.Where("user_id = ?", userID)
	if filter.CampaignID != "" {
		query = query.Where("campaign_id = ?", filter.CampaignID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var prospects []*domain.Prospect
	err := query.Order("created_at DESC").Find(&prospects).Error
	return prospects, err
}

func (r *prospectRepository) Update(prospect *domain.Prospect) error {
	prospect.UpdatedAt = time.Now()
	return r.db.Save(prospect).Error
}

func (r *prospectRepository) Delete(userID, id string) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Prospect{}).Error
}

func (r *prospectRepository) CountAll() (int64, error) {
	var total int64
	err := r.db.Model(&domain.Prospect{}).Count(&total).Error
	return total, err
}
