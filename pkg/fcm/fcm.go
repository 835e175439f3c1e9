package fcm

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Client wraps Firebase Cloud Messaging for outreach push notifications.
type Client struct {
	messagingClient *messaging.Client
}

// NewClient initializes the Firebase app from the credentials file. When the
// file is empty, application default credentials are used.
func NewClient(credentialsFile string) (*Client, error) {
	ctx := context.Background()

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	log.Println("[FCM] client initialized")
	return &Client{messagingClient: messagingClient}, nil
}

// Notification is one push payload. Data carries the outreach context the
// frontend needs to route the click (prospect id, campaign id, event type).
type Notification struct {
	Title       string
	Body        string
	Data        map[string]string
	ClickAction string
}

// SendToDevice delivers a notification to one device token.
func (c *Client) SendToDevice(ctx context.Context, token string, n Notification) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: n.Data,
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Title: n.Title,
				Body:  n.Body,
				Icon:  "/icon-192.svg",
			},
		},
	}

	response, err := c.messagingClient.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}

	log.Printf("[FCM] message sent: %s", response)
	return nil
}

// SendToDevices fans one notification out to every token and returns the
// tokens that failed so the caller can prune them.
func (c *Client) SendToDevices(ctx context.Context, tokens []string, n Notification) ([]string, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: n.Data,
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Title: n.Title,
				Body:  n.Body,
				Icon:  "/icon-192.svg",
			},
		},
	}

	response, err := c.messagingClient.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to send FCM multicast message: %w", err)
	}

	log.Printf("[FCM] multicast sent: %d success, %d failures", response.SuccessCount, response.FailureCount)

	var failed []string
	for i, resp := range response.Responses {
		if !resp.Success {
			failed = append(failed, tokens[i])
		}
	}
	return failed, nil
}
