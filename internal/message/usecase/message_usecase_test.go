package usecase

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	campaigndomain "linkreach-backend/internal/campaign/domain"
	campaignrepo "linkreach-backend/internal/campaign/repository"
	"linkreach-backend/internal/message/domain"
	"linkreach-backend/internal/message/repository"
	prospectdomain "linkreach-backend/internal/prospect/domain"
	prospectrepo "linkreach-backend/internal/prospect/repository"
	"linkreach-backend/pkg/mailer"
)

type fixture struct {
	uc        *messageUsecase
	transport *mailer.MockTransport
	prospects prospectrepo.ProspectRepository
	campaigns campaignrepo.CampaignRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "message_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&campaigndomain.Campaign{}, &prospectdomain.Prospect{}, &domain.Message{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	transport := mailer.NewMockTransport()
	campaigns := campaignrepo.NewCampaignRepository(db)
	prospects := prospectrepo.NewProspectRepository(db)
	uc := NewMessageUsecase(repository.NewMessageRepository(db), prospects, campaigns, transport)

	return &fixture{
		uc:        uc.(*messageUsecase),
		transport: transport,
		prospects: prospects,
		campaigns: campaigns,
	}
}

func (f *fixture) seed(t *testing.T) (*campaigndomain.Campaign, *prospectdomain.Prospect) {
	t.Helper()
	campaign := &campaigndomain.Campaign{ID: "c1", UserID: "u1", Name: "Q3 outreach", Status: campaigndomain.StatusActive}
	if err := f.campaigns.Create(campaign); err != nil {
		t.Fatalf("create campaign: %v", err)
	}
	prospect := &prospectdomain.Prospect{
		ID: "p1", UserID: "u1", CampaignID: campaign.ID,
		Name: "Jane Doe", Email: "jane@example.com",
		Status: prospectdomain.StatusConnected,
	}
	if err := f.prospects.Create(prospect); err != nil {
		t.Fatalf("create prospect: %v", err)
	}
	return campaign, prospect
}

func TestSendEmailDispatchesAndAdvancesLifecycle(t *testing.T) {
	f := newFixture(t)
	campaign, prospect := f.seed(t)

	msg, err := f.uc.Send("u1", &SendMessageRequest{
		ProspectID: prospect.ID,
		Platform:   "email",
		Subject:    "Hello",
		Body:       "Nice to connect.",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if msg.Status != domain.StatusSent || msg.SentAt == nil {
		t.Fatalf("expected sent status with timestamp, got %+v", msg)
	}
	if msg.ConversationID != "email_u1_p1" {
		t.Fatalf("unexpected conversation id: %s", msg.ConversationID)
	}
	sent := f.transport.Sent()
	if len(sent) != 1 || sent[0].To != "jane@example.com" {
		t.Fatalf("expected one email to the prospect, got %+v", sent)
	}

	// The prospect moved forward and the campaign aggregate was bumped.
	reloaded, err := f.prospects.FindByID("u1", prospect.ID)
	if err != nil || reloaded == nil {
		t.Fatalf("reload prospect: %v", err)
	}
	if reloaded.Status != prospectdomain.StatusMessageSent {
		t.Fatalf("expected prospect in message_sent, got %s", reloaded.Status)
	}
	c, err := f.campaigns.FindByID("u1", campaign.ID)
	if err != nil || c == nil {
		t.Fatalf("reload campaign: %v", err)
	}
	if c.Statistics.MessagesSent != 1 || c.Statistics.LastActivity == nil {
		t.Fatalf("unexpected campaign stats: %+v", c.Statistics)
	}
}

func TestSendLinkedInStaysSendingUntilConfirmed(t *testing.T) {
	f := newFixture(t)
	_, prospect := f.seed(t)

	msg, err := f.uc.Send("u1", &SendMessageRequest{
		ProspectID: prospect.ID,
		Platform:   "linkedin",
		Body:       "Hi Jane",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if msg.Status != domain.StatusSending {
		t.Fatalf("expected linkedin message to stay in sending, got %s", msg.Status)
	}
	if msg.ConversationID != "u1_p1" {
		t.Fatalf("unexpected conversation id: %s", msg.ConversationID)
	}
	if len(f.transport.Sent()) != 0 {
		t.Fatalf("linkedin sends must not go through the email transport")
	}

	// The automation backend reports delivery; the message leaves "sending".
	confirmed, err := f.uc.ConfirmSent("u1", msg.ID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Status != domain.StatusSent || confirmed.SentAt == nil {
		t.Fatalf("expected sent status with timestamp, got %+v", confirmed)
	}

	// Redelivered confirmations keep the original timestamp.
	again, err := f.uc.ConfirmSent("u1", msg.ID)
	if err != nil {
		t.Fatalf("confirm again: %v", err)
	}
	if !again.SentAt.Equal(*confirmed.SentAt) {
		t.Fatalf("repeat confirmation restamped SentAt")
	}

	// Other tenants and non-sending messages are rejected.
	if _, err := f.uc.ConfirmSent("u2", msg.ID); err != ErrMessageNotFound {
		t.Fatalf("expected ErrMessageNotFound for foreign tenant, got %v", err)
	}
	received, err := f.uc.ReceiveExternal("u1", prospect.ID, domain.PlatformLinkedIn, "hi back")
	if err != nil {
		t.Fatalf("receive: %v", err)
	}
	if _, err := f.uc.ConfirmSent("u1", received.ID); err != ErrNotSending {
		t.Fatalf("expected ErrNotSending for received message, got %v", err)
	}
}

func TestSendEmailRequiresAddress(t *testing.T) {
	f := newFixture(t)
	_, prospect := f.seed(t)
	prospect.Email = ""
	if err := f.prospects.Update(prospect); err != nil {
		t.Fatalf("update prospect: %v", err)
	}

	_, err := f.uc.Send("u1", &SendMessageRequest{ProspectID: prospect.ID, Platform: "email", Body: "x"})
	if err != ErrNoProspectEmail {
		t.Fatalf("expected ErrNoProspectEmail, got %v", err)
	}
}

func TestConversationsGroupThreadsWithUnreadCounts(t *testing.T) {
	f := newFixture(t)
	_, prospect := f.seed(t)

	if _, err := f.uc.Send("u1", &SendMessageRequest{ProspectID: prospect.ID, Platform: "linkedin", Body: "Hi"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	received, err := f.uc.ReceiveExternal("u1", prospect.ID, domain.PlatformLinkedIn, "Thanks for reaching out")
	if err != nil {
		t.Fatalf("receive: %v", err)
	}

	conversations, err := f.uc.Conversations("u1")
	if err != nil {
		t.Fatalf("conversations: %v", err)
	}
	if len(conversations) != 1 {
		t.Fatalf("expected one thread, got %d", len(conversations))
	}
	conv := conversations[0]
	if conv.ConversationID != "u1_p1" || conv.UnreadCount != 1 {
		t.Fatalf("unexpected conversation: %+v", conv)
	}
	if conv.LastMessage == nil || conv.LastMessage.ID != received.ID {
		t.Fatalf("expected the inbound reply as last message")
	}

	// Reading the reply clears the unread count and sticks.
	read, err := f.uc.MarkRead("u1", received.ID)
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if read.ReadAt == nil || read.Status != domain.StatusRead {
		t.Fatalf("expected read_at set, got %+v", read)
	}
	firstReadAt := *read.ReadAt

	conversations, _ = f.uc.Conversations("u1")
	if conversations[0].UnreadCount != 0 {
		t.Fatalf("expected no unread after mark read")
	}

	// Marking again keeps the original timestamp.
	again, err := f.uc.MarkRead("u1", received.ID)
	if err != nil {
		t.Fatalf("mark read twice: %v", err)
	}
	if !again.ReadAt.Equal(firstReadAt) {
		t.Fatalf("expected read_at unchanged, got %v then %v", firstReadAt, again.ReadAt)
	}
}

func TestMarkReadRejectsSentMessages(t *testing.T) {
	f := newFixture(t)
	_, prospect := f.seed(t)

	msg, err := f.uc.Send("u1", &SendMessageRequest{ProspectID: prospect.ID, Platform: "linkedin", Body: "Hi"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := f.uc.MarkRead("u1", msg.ID); err != ErrNotReceived {
		t.Fatalf("expected ErrNotReceived, got %v", err)
	}
}

func TestSendUnknownProspect(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	if _, err := f.uc.Send("u1", &SendMessageRequest{ProspectID: "missing", Platform: "email", Body: "x"}); err != ErrProspectNotFound {
		t.Fatalf("expected ErrProspectNotFound, got %v", err)
	}
	// A prospect owned by another tenant is indistinguishable from a
	// missing one.
	if _, err := f.uc.Send("u2", &SendMessageRequest{ProspectID: "p1", Platform: "email", Body: "x"}); err != ErrProspectNotFound {
		t.Fatalf("expected ErrProspectNotFound for foreign tenant, got %v", err)
	}
}

// Guard against the Send/ReceiveExternal pair drifting apart on the
// conversation key derivation.
func TestConversationIDDerivation(t *testing.T) {
	if got := domain.ConversationID("u1", "p1", domain.PlatformLinkedIn); got != "u1_p1" {
		t.Fatalf("unexpected linkedin conversation id: %s", got)
	}
	if got := domain.ConversationID("u1", "p1", domain.PlatformEmail); got != "email_u1_p1" {
		t.Fatalf("unexpected email conversation id: %s", got)
	}
}
