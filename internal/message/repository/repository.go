package repository

import "linkreach-backend/internal/message/domain"

// MessageRepository persists messages. All lookups are tenant-scoped.
type MessageRepository interface {
	Create(message *domain.Message) error
	FindByID(userID, id string) (*domain.Message, error)
	FindByConversation(userID, conversationID string) ([]*domain.Message, error)
	FindByProspect(userID, prospectID string) ([]*domain.Message, error)
	FindByUserID(userID string) ([]*domain.Message, error)
	Update(message *domain.Message) error
	CountAll() (int64, error)
}
