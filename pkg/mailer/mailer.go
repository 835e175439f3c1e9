package mailer

import (
	"context"
	"log"
	"sync"
	"time"
)

// Email is one outbound email handed to the transport.
type Email struct {
	To      string
	Subject string
	Body    string
	SentAt  time.Time
}

// Transport sends outbound email. The real SMTP path lives outside this
// service; the mock below stands in for it and reports instant delivery.
type Transport interface {
	Send(ctx context.Context, email Email) error
}

// MockTransport records every email and "delivers" immediately.
type MockTransport struct {
	mu   sync.Mutex
	sent []Email
}

func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

func (m *MockTransport) Send(_ context.Context, email Email) error {
	email.SentAt = time.Now()
	m.mu.Lock()
	m.sent = append(m.sent, email)
	m.mu.Unlock()
	log.Printf("[Mailer] mock send to %s: %s", email.To, email.Subject)
	return nil
}

// Sent returns a copy of everything the mock has accepted.
func (m *MockTransport) Sent() []Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Email, len(m.sent))
	copy(out, m.sent)
	return out
}
