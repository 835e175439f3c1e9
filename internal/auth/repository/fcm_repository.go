package repository

import (
	"time"

	authdomain "linkreach-backend/internal/auth/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type fcmTokenRepository struct {
	db *gorm.DB
}

func NewFCMTokenRepository(db *gorm.DB) FCMTokenRepository {
	return &fcmTokenRepository{db: db}
}

func (r *fcmTokenRepository) Register(token *authdomain.FCMToken) error {
	token.CreatedAt = time.Now()
	// Re-registering the same device token moves it to the current user.
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "platform", "created_at"}),
	}).Create(token).Error
}

func (r *fcmTokenRepository) Unregister(userID, token string) error {
	return r.db.Where("user_id = ? AND token = ?", userID, token).Delete(&authdomain.FCMToken{}).Error
}

func (r *fcmTokenRepository) FindByUserID(userID string) ([]*authdomain.FCMToken, error) {
	var tokens []*authdomain.FCMToken
	err := r.db.Where("user_id = ?", userID).Find(&tokens).Error
	return tokens, err
}

func (r *fcmTokenRepository) DeleteTokens(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	return r.db.Where("token IN ?", tokens).Delete(&authdomain.FCMToken{}).Error
}
