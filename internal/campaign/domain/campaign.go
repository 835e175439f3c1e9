package domain

import (
	"math"
	"time"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// Statistics is the aggregate block kept on each campaign row. The rates are
// rounded integer percentages and stay 0 when the denominator is 0.
type Statistics struct {
	ConnectionsSent     int        `json:"connectionsSent"`
	ConnectionsAccepted int        `json:"connectionsAccepted"`
	MessagesSent        int        `json:"messagesSent"`
	MessagesReplied     int        `json:"messagesReplied"`
	AcceptanceRate      int        `json:"acceptanceRate"`
	ResponseRate        int        `json:"responseRate"`
	LastActivity        *time.Time `json:"lastActivity,omitempty"`
}

// Recalculate refreshes the derived rates from the raw counters.
func (s *Statistics) Recalculate() {
	s.AcceptanceRate = Rate(s.ConnectionsAccepted, s.ConnectionsSent)
	s.ResponseRate = Rate(s.MessagesReplied, s.MessagesSent)
}

// Touch records activity time alongside a counter change.
func (s *Statistics) Touch(at time.Time) {
	s.LastActivity = &at
}

// Rate is round(part/total*100), 0 when total is 0.
func Rate(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// Campaign is a named outreach effort owned by exactly one tenant.
type Campaign struct {
	ID          string `json:"id" gorm:"primaryKey"`
	UserID      string `json:"user_id" gorm:"index;not null"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description,omitempty"`
	Status      Status `json:"status" gorm:"default:draft"`

	SearchTitle    string `json:"searchTitle,omitempty"`
	SearchCompany  string `json:"searchCompany,omitempty"`
	SearchLocation string `json:"searchLocation,omitempty"`
	SearchKeywords string `json:"searchKeywords,omitempty"`

	ConnectionTemplate string `json:"connectionTemplate,omitempty"`
	FollowUpTemplate   string `json:"followUpTemplate,omitempty"`

	Statistics Statistics `json:"statistics" gorm:"embedded;embeddedPrefix:stat_"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
