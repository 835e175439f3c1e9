package repository

import "linkreach-backend/internal/automation/domain"

// SettingsRepository stores one automation configuration per tenant.
// Replace swaps the whole row so configuration changes are all-or-nothing.
type SettingsRepository interface {
	FindByUserID(userID string) (*domain.Settings, error)
	Create(settings *domain.Settings) error
	Replace(settings *domain.Settings) error
}

// AccountRepository stores LinkedIn account quota state.
type AccountRepository interface {
	FirstByUserID(userID string) (*domain.LinkedInAccount, error)
	Create(account *domain.LinkedInAccount) error
	Update(account *domain.LinkedInAccount) error
}
