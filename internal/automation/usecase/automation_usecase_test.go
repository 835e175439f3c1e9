package usecase

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"linkreach-backend/internal/automation/domain"
	"linkreach-backend/internal/automation/dto"
	"linkreach-backend/internal/automation/repository"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "automation_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Settings{}, &domain.LinkedInAccount{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestUsecase(t *testing.T, db *gorm.DB) *automationUsecase {
	t.Helper()
	uc := NewAutomationUsecase(repository.NewSettingsRepository(db), repository.NewAccountRepository(db))
	return uc.(*automationUsecase)
}

func TestStatusResetsUsageOncePerDay(t *testing.T) {
	db := openTestDB(t)
	uc := newTestUsecase(t, db)

	day1 := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return day1 }

	for i := 0; i < 3; i++ {
		if err := uc.RecordAction("u1", domain.TypeConnectionRequests); err != nil {
			t.Fatalf("record action: %v", err)
		}
	}

	status, err := uc.Status("u1")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if got := status.Types[string(domain.TypeConnectionRequests)].DailyUsage; got != 3 {
		t.Fatalf("expected usage 3 on day1, got %d", got)
	}

	// Later the same day nothing resets.
	uc.now = func() time.Time { return day1.Add(6 * time.Hour) }
	status, err = uc.Status("u1")
	if err != nil {
		t.Fatalf("status same day: %v", err)
	}
	if got := status.Types[string(domain.TypeConnectionRequests)].DailyUsage; got != 3 {
		t.Fatalf("expected usage 3 later same day, got %d", got)
	}

	// Just past midnight UTC the counters zero out.
	day2 := time.Date(2025, 3, 11, 0, 30, 0, 0, time.UTC)
	uc.now = func() time.Time { return day2 }
	status, err = uc.Status("u1")
	if err != nil {
		t.Fatalf("status day2: %v", err)
	}
	if got := status.Types[string(domain.TypeConnectionRequests)].DailyUsage; got != 0 {
		t.Fatalf("expected usage 0 after day boundary, got %d", got)
	}

	// The reset is persisted, and a second call the same day is a no-op.
	account, err := repository.NewAccountRepository(db).FirstByUserID("u1")
	if err != nil || account == nil {
		t.Fatalf("load account: %v", err)
	}
	if !account.LastReset.Equal(day2) {
		t.Fatalf("expected last reset %v, got %v", day2, account.LastReset)
	}
	if _, err := uc.Status("u1"); err != nil {
		t.Fatalf("status repeat: %v", err)
	}
	account, _ = repository.NewAccountRepository(db).FirstByUserID("u1")
	if !account.LastReset.Equal(day2) {
		t.Fatalf("repeat status moved last reset to %v", account.LastReset)
	}
}

func TestStatusPercentages(t *testing.T) {
	db := openTestDB(t)
	uc := newTestUsecase(t, db)

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	if _, err := uc.UpdateSettings("u1", &dto.UpdateSettingsRequest{
		Enabled:            true,
		ConnectionRequests: true,
		ProfileViews:       true,
		WorkingHoursStart:  9,
		WorkingHoursEnd:    18,
		WorkingDays:        "1,2,3,4,5",
		Timezone:           "UTC",
		DailyLimits:        &dto.DailyLimits{Connections: 50, Messages: 100, ProfileViews: 0},
	}); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	for i := 0; i < 13; i++ {
		if err := uc.RecordAction("u1", domain.TypeConnectionRequests); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if err := uc.RecordAction("u1", domain.TypeProfileViews); err != nil {
		t.Fatalf("record profile view: %v", err)
	}

	status, err := uc.Status("u1")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	conn := status.Types[string(domain.TypeConnectionRequests)]
	if conn.DailyUsage != 13 || conn.DailyLimit != 50 || conn.Percentage != 26 {
		t.Fatalf("unexpected connection status: %+v", conn)
	}
	// Zero limit never divides.
	views := status.Types[string(domain.TypeProfileViews)]
	if views.Percentage != 0 {
		t.Fatalf("expected 0%% with zero limit, got %d", views.Percentage)
	}
}

func TestMessageTypesShareOneCounter(t *testing.T) {
	db := openTestDB(t)
	uc := newTestUsecase(t, db)

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	if err := uc.RecordAction("u1", domain.TypeWelcomeMessages); err != nil {
		t.Fatalf("record welcome: %v", err)
	}
	if err := uc.RecordAction("u1", domain.TypeFollowUpMessages); err != nil {
		t.Fatalf("record follow-up: %v", err)
	}

	status, err := uc.Status("u1")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if got := status.Types[string(domain.TypeWelcomeMessages)].DailyUsage; got != 2 {
		t.Fatalf("expected welcome usage 2, got %d", got)
	}
	if got := status.Types[string(domain.TypeFollowUpMessages)].DailyUsage; got != 2 {
		t.Fatalf("expected follow-up usage 2, got %d", got)
	}
}

func TestUpdateSettingsReplacesRow(t *testing.T) {
	db := openTestDB(t)
	uc := newTestUsecase(t, db)

	// First touch creates the defaults.
	initial, err := uc.GetSettings("u1")
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if initial.Enabled {
		t.Fatalf("expected automation disabled by default")
	}

	updated, err := uc.UpdateSettings("u1", &dto.UpdateSettingsRequest{
		Enabled:            true,
		ConnectionRequests: true,
		WorkingHoursStart:  8,
		WorkingHoursEnd:    17,
		WorkingDays:        "1,3,5",
		Timezone:           "Europe/Vilnius",
	})
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}
	// Welcome messages were not set in the request, so the replace turns
	// them off even though the defaults had them on.
	if updated.WelcomeMessages {
		t.Fatalf("expected welcome messages off after replace")
	}

	var count int64
	if err := db.Model(&domain.Settings{}).Count(&count).Error; err != nil {
		t.Fatalf("count settings: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one settings row, got %d", count)
	}

	reloaded, err := uc.GetSettings("u1")
	if err != nil {
		t.Fatalf("reload settings: %v", err)
	}
	if reloaded.ID != initial.ID {
		t.Fatalf("replace changed the row id: %d -> %d", initial.ID, reloaded.ID)
	}
	if !reloaded.Enabled || reloaded.WorkingDays != "1,3,5" || reloaded.Timezone != "Europe/Vilnius" {
		t.Fatalf("unexpected settings after replace: %+v", reloaded)
	}
}

func TestUpdateSettingsRejectsInvalidInput(t *testing.T) {
	db := openTestDB(t)
	uc := newTestUsecase(t, db)

	cases := []struct {
		name string
		req  dto.UpdateSettingsRequest
	}{
		{"working day out of range", dto.UpdateSettingsRequest{WorkingHoursStart: 9, WorkingHoursEnd: 18, WorkingDays: "1,9", Timezone: "UTC"}},
		{"end before start", dto.UpdateSettingsRequest{WorkingHoursStart: 18, WorkingHoursEnd: 9, WorkingDays: "1,2", Timezone: "UTC"}},
		{"bad timezone", dto.UpdateSettingsRequest{WorkingHoursStart: 9, WorkingHoursEnd: 18, WorkingDays: "1,2", Timezone: "Mars/Phobos"}},
		{"empty working days", dto.UpdateSettingsRequest{WorkingHoursStart: 9, WorkingHoursEnd: 18, WorkingDays: "", Timezone: "UTC"}},
	}
	for _, tc := range cases {
		if _, err := uc.UpdateSettings("u1", &tc.req); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}
