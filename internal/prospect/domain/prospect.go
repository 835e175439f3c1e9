package domain

import "time"

type Status string

const (
	StatusNew              Status = "new"
	StatusConnectionSent   Status = "connection_sent"
	StatusConnected        Status = "connected"
	StatusMessageSent      Status = "message_sent"
	StatusMessageReplied   Status = "message_replied"
	StatusConnectionFailed Status = "connection_failed"
	StatusArchived         Status = "archived"
	StatusPaused           Status = "paused"
)

// lifecycleRank orders the forward-only outreach lifecycle. Terminal and
// hold states are not ranked; they are reachable from anywhere.
var lifecycleRank = map[Status]int{
	StatusNew:            0,
	StatusConnectionSent: 1,
	StatusConnected:      2,
	StatusMessageSent:    3,
	StatusMessageReplied: 4,
}

func ValidStatus(s Status) bool {
	if _, ok := lifecycleRank[s]; ok {
		return true
	}
	switch s {
	case StatusConnectionFailed, StatusArchived, StatusPaused:
		return true
	}
	return false
}

// CanTransition reports whether a prospect may move from one status to
// another. The lifecycle only advances; archived and paused are reachable
// from any state, and connection_failed only from connection_sent.
func CanTransition(from, to Status) bool {
	if to == StatusArchived || to == StatusPaused {
		return true
	}
	if to == StatusConnectionFailed {
		return from == StatusConnectionSent
	}
	fromRank, fromOK := lifecycleRank[from]
	toRank, toOK := lifecycleRank[to]
	if !fromOK || !toOK {
		return false
	}
	return toRank > fromRank
}

// Automation is the per-prospect automation bookkeeping kept beside the
// lifecycle status.
type Automation struct {
	ConnectionRequestSent bool       `json:"connectionRequestSent"`
	ConnectionRequestDate *time.Time `json:"connectionRequestDate,omitempty"`
	FollowUpsSent         int        `json:"followUpsSent"`
	NextScheduledAction   string     `json:"nextScheduledAction,omitempty"`
	NextScheduledDate     *time.Time `json:"nextScheduledDate,omitempty"`
	AutomationPaused      bool       `json:"automationPaused"`
}

// Prospect is a targeted contact within a campaign, owned by one tenant.
type Prospect struct {
	ID         string `json:"id" gorm:"primaryKey"`
	UserID     string `json:"user_id" gorm:"index;not null"`
	CampaignID string `json:"campaign_id" gorm:"index;not null"`

	Name        string `json:"name" gorm:"not null"`
	Headline    string `json:"headline,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
	Email       string `json:"email,omitempty"`

	Status     Status     `json:"status" gorm:"default:new"`
	Automation Automation `json:"automation" gorm:"embedded;embeddedPrefix:automation_"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Accepted reports whether the prospect's lifecycle implies an accepted
// connection request.
func (p *Prospect) Accepted() bool {
	switch p.Status {
	case StatusConnected, StatusMessageSent, StatusMessageReplied:
		return true
	}
	return false
}
