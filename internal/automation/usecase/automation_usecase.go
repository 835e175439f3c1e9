package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"linkreach-backend/internal/automation/domain"
	"linkreach-backend/internal/automation/dto"
	"linkreach-backend/internal/automation/repository"

	"github.com/go-playground/validator/v10"
)

type automationUsecase struct {
	settingsRepo repository.SettingsRepository
	accountRepo  repository.AccountRepository
	validate     *validator.Validate
	now          func() time.Time
}

func NewAutomationUsecase(settingsRepo repository.SettingsRepository, accountRepo repository.AccountRepository) AutomationUsecase {
	v := validator.New()
	_ = v.RegisterValidation("workingdays", validWorkingDays)
	return &automationUsecase{
		settingsRepo: settingsRepo,
		accountRepo:  accountRepo,
		validate:     v,
		now:          time.Now,
	}
}

// Status applies the lazy once-per-day reset, persists it if it fired, and
// reports each automation type against its quota.
func (u *automationUsecase) Status(userID string) (*dto.StatusResponse, error) {
	settings, err := u.settings(userID)
	if err != nil {
		return nil, err
	}
	account, err := u.account(userID)
	if err != nil {
		return nil, err
	}

	// Reset runs before the counters are read so the response reflects
	// today's (zeroed) usage. Persist first: the reset must survive even if
	// the caller goes away. Two concurrent callers may both reset; both
	// write zeros, so last write wins harmlessly.
	if account.AdvanceToDay(u.now()) {
		if err := u.accountRepo.Update(account); err != nil {
			return nil, err
		}
	}

	resp := &dto.StatusResponse{
		Enabled: settings.Enabled,
		Types:   make(map[string]dto.TypeStatus, len(domain.AllTypes)),
	}
	for _, t := range domain.AllTypes {
		enabled := settings.TypeEnabled(t)
		status := "paused"
		if enabled && settings.Enabled {
			status = "active"
		}
		usage := account.DailyUsage.Counter(t)
		limit := account.DailyLimits.Counter(t)
		resp.Types[string(t)] = dto.TypeStatus{
			Enabled:    enabled,
			Status:     status,
			DailyUsage: usage,
			DailyLimit: limit,
			Percentage: percentage(usage, limit),
		}
	}
	return resp, nil
}

func (u *automationUsecase) GetSettings(userID string) (*domain.Settings, error) {
	return u.settings(userID)
}

// UpdateSettings builds a fresh Settings value from the request and replaces
// the stored row wholesale. Nothing is patched in place.
func (u *automationUsecase) UpdateSettings(userID string, req *dto.UpdateSettingsRequest) (*domain.Settings, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	if req.WorkingHoursEnd <= req.WorkingHoursStart {
		return nil, fmt.Errorf("invalid settings: working hours end must be after start")
	}

	settings := &domain.Settings{
		UserID:             userID,
		Enabled:            req.Enabled,
		ConnectionRequests: req.ConnectionRequests,
		WelcomeMessages:    req.WelcomeMessages,
		FollowUpMessages:   req.FollowUpMessages,
		ProfileViews:       req.ProfileViews,
		EmailSending:       req.EmailSending,
		WorkingHoursStart:  req.WorkingHoursStart,
		WorkingHoursEnd:    req.WorkingHoursEnd,
		WorkingDays:        req.WorkingDays,
		Timezone:           req.Timezone,
	}
	if err := u.settingsRepo.Replace(settings); err != nil {
		return nil, err
	}

	if req.DailyLimits != nil {
		account, err := u.account(userID)
		if err != nil {
			return nil, err
		}
		account.DailyLimits = domain.Counters{
			Connections:  req.DailyLimits.Connections,
			Messages:     req.DailyLimits.Messages,
			ProfileViews: req.DailyLimits.ProfileViews,
		}
		if err := u.accountRepo.Update(account); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

func (u *automationUsecase) RecordAction(userID string, t domain.AutomationType) error {
	account, err := u.account(userID)
	if err != nil {
		return err
	}
	account.AdvanceToDay(u.now())
	account.Record(t)
	return u.accountRepo.Update(account)
}

// settings loads the tenant configuration, creating defaults on first touch.
func (u *automationUsecase) settings(userID string) (*domain.Settings, error) {
	settings, err := u.settingsRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = domain.DefaultSettings(userID)
		if err := u.settingsRepo.Create(settings); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

func (u *automationUsecase) account(userID string) (*domain.LinkedInAccount, error) {
	account, err := u.accountRepo.FirstByUserID(userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		account = domain.DefaultAccount(userID, u.now())
		if err := u.accountRepo.Create(account); err != nil {
			return nil, err
		}
	}
	return account, nil
}

// percentage is the rounded integer share of the quota used. A zero or
// negative limit reports 0 rather than dividing.
func percentage(usage, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Round(float64(usage) / float64(limit) * 100))
}

// validWorkingDays accepts a csv of weekday numbers 0-6, e.g. "1,2,3,4,5".
func validWorkingDays(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		return false
	}
	for _, part := range strings.Split(raw, ",") {
		day, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || day < 0 || day > 6 {
			return false
		}
	}
	return true
}
