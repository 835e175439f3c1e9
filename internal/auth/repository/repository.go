package repository

import authdomain "linkreach-backend/internal/auth/domain"

// UserRepository persists users and refresh tokens. Lookups return (nil, nil)
// when no row matches; errors are infrastructure failures only.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	Update(user *authdomain.User) error
	CountUsers() (int64, error)

	SaveRefreshToken(token *authdomain.RefreshToken) error
	FindRefreshToken(token string) (*authdomain.RefreshToken, error)
	DeleteRefreshToken(token string) error
}

type FCMTokenRepository interface {
	Register(token *authdomain.FCMToken) error
	Unregister(userID, token string) error
	FindByUserID(userID string) ([]*authdomain.FCMToken, error)
	DeleteTokens(tokens []string) error
}
