package repository

import (
	"errors"
	"time"

	"linkreach-backend/internal/message/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *domain.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.Status == "" {
		message.Status = domain.StatusDraft
	}
	message.CreatedAt = time.Now()
	message.UpdatedAt = time.Now()
	return r.db.Create(message).Error
}

func (r *messageRepository) FindByID(userID, id string) (*domain.Message, error) {
	var message domain.Message
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) FindByConversation(userID, conversationID string) ([]*domain.Message, error) {
	var messages []*domain.Message
	err := r.db.Where("user_id = ? AND conversation_id = ?", userID, conversationID).
		Order("created_at ASC").Find(&messages).Error
	return messages, err
}

func (r *messageRepository) FindByProspect(userID, prospectID string) ([]*domain.Message, error) {
	var messages []*domain.Message
	err := r.db.Where("user_id = ? AND prospect_id = ?", userID, prospectID).
		Order("created_at ASC").Find(&messages).Error
	return messages, err
}

func (r *messageRepository) FindByUserID(userID string) ([]*domain.Message, error) {
	var messages []*domain.Message
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (r *messageRepository) Update(message *domain.Message) error {
	message.UpdatedAt = time.Now()
	return r.db.Save(message).Error
}

func (r *messageRepository) CountAll() (int64, error) {
	var total int64
	err := r.db.Model(&domain.Message{}).Count(&total).Error
	return total, err
}
