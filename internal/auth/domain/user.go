package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type Subscription string

const (
	SubscriptionFree Subscription = "free"
	SubscriptionPro  Subscription = "pro"
	SubscriptionTeam Subscription = "team"
)

// User is a tenant. Every domain row in the system is scoped by User.ID.
type User struct {
	ID           string       `json:"id" gorm:"primaryKey"`
	Email        string       `json:"email" gorm:"uniqueIndex;not null"`
	Password     string       `json:"-"` // Never return password in JSON
	Name         string       `json:"name"`
	AvatarURL    string       `json:"avatar_url,omitempty"`
	Provider     string       `json:"provider"` // "email" or "google"
	Role         Role         `json:"role" gorm:"default:user"`
	Subscription Subscription `json:"subscription" gorm:"default:free"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type RefreshToken struct {
	Token     string    `json:"token" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index"`
	ExpiresAt time.Time `json:"expires_at"`
}

// FCMToken is a registered push-notification device token.
type FCMToken struct {
	Token     string    `json:"token" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Platform  string    `json:"platform"`
	CreatedAt time.Time `json:"created_at"`
}
