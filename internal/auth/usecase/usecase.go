package usecase

import (
	authdomain "linkreach-backend/internal/auth/domain"
	authdto "linkreach-backend/internal/auth/dto"
)

type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	GoogleSignIn(idToken string) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error
	ValidateToken(token string) (*authdomain.User, error)

	RegisterFCMToken(userID, token, platform string) error
	UnregisterFCMToken(userID, token string) error
}
