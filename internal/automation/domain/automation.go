package domain

import "time"

// AutomationType is one of the automated outreach actions a tenant can enable.
type AutomationType string

const (
	TypeConnectionRequests AutomationType = "connectionRequests"
	TypeWelcomeMessages    AutomationType = "welcomeMessages"
	TypeFollowUpMessages   AutomationType = "followUpMessages"
	TypeProfileViews       AutomationType = "profileViews"
)

// AllTypes is the fixed order the status endpoint reports types in.
var AllTypes = []AutomationType{
	TypeConnectionRequests,
	TypeWelcomeMessages,
	TypeFollowUpMessages,
	TypeProfileViews,
}

// Settings is a tenant's automation configuration. It is treated as an
// immutable value: updates replace the whole row rather than patching fields,
// so readers never observe a half-applied configuration.
type Settings struct {
	ID     uint   `json:"-" gorm:"primaryKey"`
	UserID string `json:"user_id" gorm:"uniqueIndex;not null"`

	Enabled            bool `json:"enabled"`
	ConnectionRequests bool `json:"connectionRequests"`
	WelcomeMessages    bool `json:"welcomeMessages"`
	FollowUpMessages   bool `json:"followUpMessages"`
	ProfileViews       bool `json:"profileViews"`
	EmailSending       bool `json:"emailSending"`

	WorkingHoursStart int    `json:"workingHoursStart"`
	WorkingHoursEnd   int    `json:"workingHoursEnd"`
	WorkingDays       string `json:"workingDays"` // csv of weekday numbers, "1,2,3,4,5"
	Timezone          string `json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TypeEnabled reports the per-type flag; the global Enabled flag is checked
// separately by the status computation.
func (s *Settings) TypeEnabled(t AutomationType) bool {
	switch t {
	case TypeConnectionRequests:
		return s.ConnectionRequests
	case TypeWelcomeMessages:
		return s.WelcomeMessages
	case TypeFollowUpMessages:
		return s.FollowUpMessages
	case TypeProfileViews:
		return s.ProfileViews
	}
	return false
}

// DefaultSettings is the configuration a tenant starts with.
func DefaultSettings(userID string) *Settings {
	return &Settings{
		UserID:             userID,
		Enabled:            false,
		ConnectionRequests: true,
		WelcomeMessages:    true,
		FollowUpMessages:   true,
		ProfileViews:       false,
		EmailSending:       false,
		WorkingHoursStart:  9,
		WorkingHoursEnd:    18,
		WorkingDays:        "1,2,3,4,5",
		Timezone:           "UTC",
	}
}

// Counters holds the per-day action counters shared by limits and usage.
type Counters struct {
	Connections  int `json:"connections"`
	Messages     int `json:"messages"`
	ProfileViews int `json:"profileViews"`
}

// Counter returns the counter an automation type draws from.
// Both message automation types share the messages counter.
func (c Counters) Counter(t AutomationType) int {
	switch t {
	case TypeConnectionRequests:
		return c.Connections
	case TypeWelcomeMessages, TypeFollowUpMessages:
		return c.Messages
	case TypeProfileViews:
		return c.ProfileViews
	}
	return 0
}

// LinkedInAccount carries the per-account daily quota state. The first
// account of a tenant is the one automation runs against.
type LinkedInAccount struct {
	ID         string `json:"id" gorm:"primaryKey"`
	UserID     string `json:"user_id" gorm:"index;not null"`
	ProfileURL string `json:"profile_url"`

	DailyLimits Counters `json:"dailyLimits" gorm:"embedded;embeddedPrefix:limit_"`
	DailyUsage  Counters `json:"dailyUsage" gorm:"embedded;embeddedPrefix:usage_"`

	LastReset time.Time `json:"lastReset"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AdvanceToDay zeroes the usage counters when lastReset falls on a different
// UTC calendar day than day. Returns true if a reset happened. Calling it a
// second time within the same day is a no-op, which is what makes the lazy
// read-triggered reset idempotent in result.
func (a *LinkedInAccount) AdvanceToDay(day time.Time) bool {
	if sameUTCDay(a.LastReset, day) {
		return false
	}
	a.DailyUsage = Counters{}
	a.LastReset = day
	return true
}

// Record bumps the usage counter for one performed action. Counters never go
// below zero because they only ever increment between resets.
func (a *LinkedInAccount) Record(t AutomationType) {
	switch t {
	case TypeConnectionRequests:
		a.DailyUsage.Connections++
	case TypeWelcomeMessages, TypeFollowUpMessages:
		a.DailyUsage.Messages++
	case TypeProfileViews:
		a.DailyUsage.ProfileViews++
	}
}

// DefaultAccount is the quota state a tenant starts with.
func DefaultAccount(userID string, now time.Time) *LinkedInAccount {
	return &LinkedInAccount{
		UserID: userID,
		DailyLimits: Counters{
			Connections:  50,
			Messages:     100,
			ProfileViews: 150,
		},
		LastReset: now,
	}
}

func sameUTCDay(a, b time.Time) bool {
	au, bu := a.UTC(), b.UTC()
	return au.Year() == bu.Year() && au.YearDay() == bu.YearDay()
}
