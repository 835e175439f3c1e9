package usecase

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authdomain "linkreach-backend/internal/auth/domain"
	authdto "linkreach-backend/internal/auth/dto"
	"linkreach-backend/internal/auth/repository"
	"linkreach-backend/pkg/config"
)

func newTestUsecase(t *testing.T) (AuthUsecase, repository.UserRepository) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "auth_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &authdomain.FCMToken{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
	userRepo := repository.NewUserRepository(db)
	return NewAuthUsecase(userRepo, repository.NewFCMTokenRepository(db), cfg), userRepo
}

func TestRegisterAndLogin(t *testing.T) {
	uc, userRepo := newTestUsecase(t)

	tokens, err := uc.Register(&authdto.RegisterRequest{Email: "jane@example.com", Password: "hunter22", Name: "Jane"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", tokens)
	}

	// Passwords are never stored in the clear.
	stored, err := userRepo.FindByEmail("jane@example.com")
	if err != nil || stored == nil {
		t.Fatalf("load user: %v", err)
	}
	if stored.Password == "hunter22" {
		t.Fatalf("password stored in plaintext")
	}

	if _, err := uc.Register(&authdto.RegisterRequest{Email: "jane@example.com", Password: "other", Name: "Jane"}); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	if _, err := uc.Login(&authdto.LoginRequest{Email: "jane@example.com", Password: "hunter22"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := uc.Login(&authdto.LoginRequest{Email: "jane@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := uc.Login(&authdto.LoginRequest{Email: "nobody@example.com", Password: "x"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestValidateToken(t *testing.T) {
	uc, _ := newTestUsecase(t)

	tokens, err := uc.Register(&authdto.RegisterRequest{Email: "jane@example.com", Password: "hunter22", Name: "Jane"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := uc.ValidateToken(tokens.AccessToken)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if user.Email != "jane@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := uc.ValidateToken(tokens.AccessToken + "x"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
	if _, err := uc.ValidateToken("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}

func TestRefreshTokenRotationAndLogout(t *testing.T) {
	uc, _ := newTestUsecase(t)

	tokens, err := uc.Register(&authdto.RegisterRequest{Email: "jane@example.com", Password: "hunter22", Name: "Jane"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	refreshed, err := uc.RefreshToken(tokens.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Fatalf("expected new access token")
	}

	// Logging out invalidates the stored refresh token.
	if err := uc.Logout(refreshed.RefreshToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := uc.RefreshToken(refreshed.RefreshToken); err == nil {
		t.Fatalf("expected refresh to fail after logout")
	}

	// A token signed with another secret is rejected outright.
	if _, err := uc.RefreshToken("bogus"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokensAreUniqueWithinOneSecond(t *testing.T) {
	uc, _ := newTestUsecase(t)

	tokens, err := uc.Register(&authdto.RegisterRequest{Email: "jane@example.com", Password: "hunter22", Name: "Jane"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// JWT timestamps have one-second resolution, so back-to-back logins and
	// refreshes land on identical claims unless each token carries a jti.
	// The refresh token is the primary key, so a duplicate would fail to save.
	seen := map[string]bool{tokens.RefreshToken: true}
	current := tokens.RefreshToken
	for i := 0; i < 3; i++ {
		refreshed, err := uc.RefreshToken(current)
		if err != nil {
			t.Fatalf("refresh %d: %v", i, err)
		}
		if seen[refreshed.RefreshToken] {
			t.Fatalf("refresh %d reissued an already-seen token", i)
		}
		seen[refreshed.RefreshToken] = true
		current = refreshed.RefreshToken
	}

	first, err := uc.Login(&authdto.LoginRequest{Email: "jane@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, err := uc.Login(&authdto.LoginRequest{Email: "jane@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if first.RefreshToken == second.RefreshToken {
		t.Fatalf("two logins issued the same refresh token")
	}
}
