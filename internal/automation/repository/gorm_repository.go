package repository

import (
	"errors"
	"time"

	"linkreach-backend/internal/automation/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) FindByUserID(userID string) (*domain.Settings, error) {
	var settings domain.Settings
	err := r.db.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Create(settings *domain.Settings) error {
	settings.CreatedAt = time.Now()
	settings.UpdatedAt = time.Now()
	return r.db.Create(settings).Error
}

// Replace writes the new configuration over the tenant's existing row in one
// transaction, keeping the original row id and creation time.
func (r *settingsRepository) Replace(settings *domain.Settings) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var current domain.Settings
		err := tx.Where("user_id = ?", settings.UserID).First(&current).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				settings.CreatedAt = time.Now()
				settings.UpdatedAt = time.Now()
				return tx.Create(settings).Error
			}
			return err
		}
		settings.ID = current.ID
		settings.CreatedAt = current.CreatedAt
		settings.UpdatedAt = time.Now()
		return tx.Save(settings).Error
	})
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) FirstByUserID(userID string) (*domain.LinkedInAccount, error) {
	var account domain.LinkedInAccount
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) Create(account *domain.LinkedInAccount) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	account.CreatedAt = time.Now()
	account.UpdatedAt = time.Now()
	return r.db.Create(account).Error
}

func (r *accountRepository) Update(account *domain.LinkedInAccount) error {
	account.UpdatedAt = time.Now()
	return r.db.Save(account).Error
}
