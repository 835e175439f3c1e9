package repository

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"linkreach-backend/internal/campaign/domain"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "campaign_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Campaign{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestLookupsAreTenantScoped(t *testing.T) {
	db := openTestDB(t)
	repo := NewCampaignRepository(db)

	mine := &domain.Campaign{UserID: "u1", Name: "Mine"}
	theirs := &domain.Campaign{UserID: "u2", Name: "Theirs"}
	if err := repo.Create(mine); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(theirs); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Another tenant's id behaves exactly like a missing one.
	got, err := repo.FindByID("u1", theirs.ID)
	if err != nil {
		t.Fatalf("find foreign: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for foreign campaign, got %+v", got)
	}

	own, err := repo.FindByID("u1", mine.ID)
	if err != nil || own == nil {
		t.Fatalf("expected own campaign, got %v, %v", own, err)
	}

	list, err := repo.FindByUserID("u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != mine.ID {
		t.Fatalf("expected only own campaigns, got %d", len(list))
	}
}

func TestDeleteIsTenantScoped(t *testing.T) {
	db := openTestDB(t)
	repo := NewCampaignRepository(db)

	c := &domain.Campaign{UserID: "u1", Name: "Keep"}
	if err := repo.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}

	// A foreign tenant deleting by id is a silent no-op.
	if err := repo.Delete("u2", c.ID); err != nil {
		t.Fatalf("foreign delete: %v", err)
	}
	if got, _ := repo.FindByID("u1", c.ID); got == nil {
		t.Fatalf("foreign delete removed the row")
	}

	if err := repo.Delete("u1", c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := repo.FindByID("u1", c.ID); got != nil {
		t.Fatalf("expected campaign gone after delete")
	}
}

func TestCreateFillsDefaults(t *testing.T) {
	db := openTestDB(t)
	repo := NewCampaignRepository(db)

	c := &domain.Campaign{UserID: "u1", Name: "Fresh"}
	if err := repo.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID == "" {
		t.Fatalf("expected generated id")
	}
	if c.Status != domain.StatusDraft {
		t.Fatalf("expected draft status, got %s", c.Status)
	}
}
