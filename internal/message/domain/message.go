package domain

import (
	"fmt"
	"time"
)

type Type string

const (
	TypeSent     Type = "sent"
	TypeReceived Type = "received"
)

type Platform string

const (
	PlatformLinkedIn Platform = "linkedin"
	PlatformEmail    Platform = "email"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSending   Status = "sending"
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusRead      Status = "read"
	StatusReplied   Status = "replied"
	StatusFailed    Status = "failed"
)

// Message is one direction of a conversation between a tenant and a
// prospect. read_at is only ever set on received messages, and only when the
// caller explicitly marks them read.
type Message struct {
	ID             string `json:"id" gorm:"primaryKey"`
	UserID         string `json:"user_id" gorm:"index;not null"`
	ProspectID     string `json:"prospect_id" gorm:"index;not null"`
	ConversationID string `json:"conversation_id" gorm:"index;not null"`

	Type     Type     `json:"type" gorm:"not null"`
	Platform Platform `json:"platform" gorm:"not null"`
	Status   Status   `json:"status" gorm:"default:draft"`

	Subject string `json:"subject,omitempty"`
	Body    string `json:"body" gorm:"not null"`

	SentAt *time.Time `json:"sent_at,omitempty"`
	ReadAt *time.Time `json:"read_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ConversationID derives the stable conversation key for a tenant/prospect
// pair. Email threads carry a prefix so the two channels never collide.
func ConversationID(userID, prospectID string, platform Platform) string {
	if platform == PlatformEmail {
		return fmt.Sprintf("email_%s_%s", userID, prospectID)
	}
	return fmt.Sprintf("%s_%s", userID, prospectID)
}

// Conversation is a listing row: the latest message of one thread plus
// unread bookkeeping.
type Conversation struct {
	ConversationID string   `json:"conversation_id"`
	ProspectID     string   `json:"prospect_id"`
	Platform       Platform `json:"platform"`
	LastMessage    *Message `json:"last_message"`
	UnreadCount    int      `json:"unread_count"`
}
