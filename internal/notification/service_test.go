package notification

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"cloud.google.com/go/pubsub"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	automationdomain "linkreach-backend/internal/automation/domain"
	automationrepo "linkreach-backend/internal/automation/repository"
	automationusecase "linkreach-backend/internal/automation/usecase"
	campaigndomain "linkreach-backend/internal/campaign/domain"
	campaignrepo "linkreach-backend/internal/campaign/repository"
	messagedomain "linkreach-backend/internal/message/domain"
	messagerepo "linkreach-backend/internal/message/repository"
	messageusecase "linkreach-backend/internal/message/usecase"
	prospectdomain "linkreach-backend/internal/prospect/domain"
	prospectrepo "linkreach-backend/internal/prospect/repository"
	"linkreach-backend/pkg/mailer"
)

func newTestService(t *testing.T) (*Service, messageusecase.MessageUsecase, automationusecase.AutomationUsecase, *prospectdomain.Prospect) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "notification_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&campaigndomain.Campaign{}, &prospectdomain.Prospect{}, &messagedomain.Message{},
		&automationdomain.Settings{}, &automationdomain.LinkedInAccount{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	campaigns := campaignrepo.NewCampaignRepository(db)
	prospects := prospectrepo.NewProspectRepository(db)
	messageUc := messageusecase.NewMessageUsecase(messagerepo.NewMessageRepository(db), prospects, campaigns, mailer.NewMockTransport())
	automationUc := automationusecase.NewAutomationUsecase(automationrepo.NewSettingsRepository(db), automationrepo.NewAccountRepository(db))

	if err := campaigns.Create(&campaigndomain.Campaign{ID: "c1", UserID: "u1", Name: "Q3 outreach", Status: campaigndomain.StatusActive}); err != nil {
		t.Fatalf("create campaign: %v", err)
	}
	prospect := &prospectdomain.Prospect{
		ID: "p1", UserID: "u1", CampaignID: "c1",
		Name: "Jane Doe", Status: prospectdomain.StatusConnected,
	}
	if err := prospects.Create(prospect); err != nil {
		t.Fatalf("create prospect: %v", err)
	}

	svc := &Service{
		messageUsecase:    messageUc,
		automationUsecase: automationUc,
	}
	return svc, messageUc, automationUc, prospect
}

func deliver(t *testing.T, svc *Service, event AutomationEvent) {
	t.Helper()
	raw, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	svc.handleMessage(context.Background(), &pubsub.Message{Data: raw})
}

func TestMessageSentEventConfirmsDeliveryAndCountsUsage(t *testing.T) {
	svc, messageUc, automationUc, prospect := newTestService(t)

	msg, err := messageUc.Send("u1", &messageusecase.SendMessageRequest{
		ProspectID: prospect.ID,
		Platform:   "linkedin",
		Body:       "Hi Jane",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if msg.Status != messagedomain.StatusSending {
		t.Fatalf("expected message pending confirmation, got %s", msg.Status)
	}

	deliver(t, svc, AutomationEvent{
		Event:       EventMessageSent,
		UserID:      "u1",
		ProspectID:  prospect.ID,
		MessageID:   msg.ID,
		MessageType: "welcome",
	})

	stored, err := messageUc.ListByProspect("u1", prospect.ID)
	if err != nil || len(stored) != 1 {
		t.Fatalf("reload messages: %v (%d)", err, len(stored))
	}
	if stored[0].Status != messagedomain.StatusSent || stored[0].SentAt == nil {
		t.Fatalf("expected confirmed message, got %+v", stored[0])
	}

	status, err := automationUc.Status("u1")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if got := status.Types[string(automationdomain.TypeWelcomeMessages)].DailyUsage; got != 1 {
		t.Fatalf("expected one message counted, got %d", got)
	}

	// Follow-ups land on the same shared message counter.
	deliver(t, svc, AutomationEvent{Event: EventMessageSent, UserID: "u1", MessageType: "followUp"})
	status, err = automationUc.Status("u1")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if got := status.Types[string(automationdomain.TypeFollowUpMessages)].DailyUsage; got != 2 {
		t.Fatalf("expected shared counter at 2, got %d", got)
	}
}

func TestTruncateBodyKeepsRuneBoundaries(t *testing.T) {
	short := "hello"
	if got := truncateBody(short, 100); got != short {
		t.Fatalf("short body changed: %q", got)
	}

	long := ""
	for i := 0; i < 150; i++ {
		long += "é"
	}
	got := truncateBody(long, 100)
	if !utf8.ValidString(got) {
		t.Fatalf("truncated body is not valid UTF-8: %q", got)
	}
	if utf8.RuneCountInString(got) != 100 {
		t.Fatalf("expected 100 runes, got %d", utf8.RuneCountInString(got))
	}
}
