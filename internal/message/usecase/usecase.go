package usecase

import (
	"linkreach-backend/internal/message/domain"
	"linkreach-backend/pkg/ai"
)

type SendMessageRequest struct {
	ProspectID string `json:"prospect_id" binding:"required"`
	Platform   string `json:"platform" binding:"required,oneof=linkedin email"`
	Subject    string `json:"subject"`
	Body       string `json:"body" binding:"required"`
}

type DraftRequest struct {
	ProspectID string `json:"prospect_id" binding:"required"`
	Kind       string `json:"kind" binding:"required,oneof=connection welcome followup"`
	Tone       string `json:"tone"`
}

type MessageUsecase interface {
	// SetDraftService wires the AI provider after construction.
	SetDraftService(svc ai.DraftService)

	Send(userID string, req *SendMessageRequest) (*domain.Message, error)
	ListByConversation(userID, conversationID string) ([]*domain.Message, error)
	ListByProspect(userID, prospectID string) ([]*domain.Message, error)
	Conversations(userID string) ([]*domain.Conversation, error)
	MarkRead(userID, id string) (*domain.Message, error)
	GenerateDraft(userID string, req *DraftRequest) (string, error)

	// ReceiveExternal stores an inbound message reported by the automation
	// backend or the email bridge. Used by the event consumer, not exposed
	// over HTTP.
	ReceiveExternal(userID, prospectID string, platform domain.Platform, body string) (*domain.Message, error)

	// ConfirmSent moves a delegated LinkedIn message from "sending" to
	// "sent" once the automation backend reports delivery. Also event-only.
	ConfirmSent(userID, id string) (*domain.Message, error)
}
