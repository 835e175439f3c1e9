package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"

	authrepo "linkreach-backend/internal/auth/repository"
	automationdomain "linkreach-backend/internal/automation/domain"
	automationusecase "linkreach-backend/internal/automation/usecase"
	messagedomain "linkreach-backend/internal/message/domain"
	messageusecase "linkreach-backend/internal/message/usecase"
	prospectdomain "linkreach-backend/internal/prospect/domain"
	prospectusecase "linkreach-backend/internal/prospect/usecase"
	"linkreach-backend/pkg/fcm"
	"linkreach-backend/pkg/sse"
)

// AutomationEvent is what the LinkedIn automation backend publishes for each
// action it performs or observes.
type AutomationEvent struct {
	Event        string `json:"event"`
	UserID       string `json:"user_id"`
	ProspectID   string `json:"prospect_id,omitempty"`
	ProspectName string `json:"prospect_name,omitempty"`
	MessageID    string `json:"message_id,omitempty"`
	MessageType  string `json:"message_type,omitempty"` // "welcome" or "followUp"
	Body         string `json:"body,omitempty"`
}

const (
	EventConnectionRequestSent = "connection_request_sent"
	EventConnectionAccepted    = "connection_accepted"
	EventMessageSent           = "message_sent"
	EventMessageReceived       = "message_received"
	EventProfileViewed         = "profile_viewed"
)

// Service consumes automation events from Pub/Sub and applies them: prospect
// lifecycle moves, usage counters, stored inbound messages, and SSE/FCM
// notifications to the owning user.
type Service struct {
	pubsubClient      *pubsub.Client
	sseManager        *sse.Manager
	fcmRepo           authrepo.FCMTokenRepository
	fcmClient         *fcm.Client
	prospectUsecase   prospectusecase.ProspectUsecase
	messageUsecase    messageusecase.MessageUsecase
	automationUsecase automationusecase.AutomationUsecase
	topicName         string
	subName           string
}

func NewService(projectID, topicName string, sseManager *sse.Manager, fcmRepo authrepo.FCMTokenRepository, fcmClient *fcm.Client, prospectUc prospectusecase.ProspectUsecase, messageUc messageusecase.MessageUsecase, automationUc automationusecase.AutomationUsecase, credentialsFile string) (*Service, error) {
	ctx := context.Background()

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %v", err)
	}

	return &Service{
		pubsubClient:      client,
		sseManager:        sseManager,
		fcmRepo:           fcmRepo,
		fcmClient:         fcmClient,
		prospectUsecase:   prospectUc,
		messageUsecase:    messageUc,
		automationUsecase: automationUc,
		topicName:         topicName,
		subName:           topicName + "-sub", // Convention: topic-sub
	}, nil
}

func (s *Service) Start(ctx context.Context) {
	log.Printf("[PubSub] starting event bridge, topic: %s, subscription: %s", s.topicName, s.subName)

	sub := s.pubsubClient.Subscription(s.subName)
	exists, err := sub.Exists(ctx)
	if err != nil {
		log.Printf("[PubSub] error checking subscription: %v", err)
		return
	}

	if !exists {
		topic := s.pubsubClient.Topic(s.topicName)
		topicExists, err := topic.Exists(ctx)
		if err != nil {
			log.Printf("[PubSub] error checking topic: %v", err)
			return
		}
		if !topicExists {
			log.Printf("[PubSub] topic %s does not exist, cannot create subscription", s.topicName)
			return
		}

		sub, err = s.pubsubClient.CreateSubscription(ctx, s.subName, pubsub.SubscriptionConfig{
			Topic:       topic,
			AckDeadline: 10 * time.Second,
		})
		if err != nil {
			log.Printf("[PubSub] failed to create subscription: %v", err)
			return
		}
		log.Printf("[PubSub] created subscription: %s", s.subName)
	}

	log.Printf("[PubSub] listening on subscription: %s", s.subName)
	err = sub.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		s.handleMessage(ctx, msg)
		msg.Ack()
	})
	if err != nil {
		log.Printf("[PubSub] receive stopped: %v", err)
	}
}

func (s *Service) handleMessage(ctx context.Context, msg *pubsub.Message) {
	var event AutomationEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		log.Printf("[PubSub] failed to unmarshal event: %v", err)
		return
	}
	if event.UserID == "" {
		log.Printf("[PubSub] dropping %s event without user_id", event.Event)
		return
	}

	log.Printf("[PubSub] %s event for user %s (prospect %s)", event.Event, event.UserID, event.ProspectID)

	switch event.Event {
	case EventConnectionRequestSent:
		s.handleConnectionRequestSent(event)
	case EventConnectionAccepted:
		s.handleConnectionAccepted(ctx, event)
	case EventMessageSent:
		s.handleMessageSent(event)
	case EventMessageReceived:
		s.handleMessageReceived(ctx, event)
	case EventProfileViewed:
		s.recordUsage(event.UserID, automationdomain.TypeProfileViews)
	default:
		log.Printf("[PubSub] ignoring unknown event type: %s", event.Event)
	}
}

func (s *Service) handleConnectionRequestSent(event AutomationEvent) {
	if event.ProspectID != "" {
		if _, err := s.prospectUsecase.UpdateStatus(event.UserID, event.ProspectID, prospectdomain.StatusConnectionSent); err != nil {
			log.Printf("[PubSub] failed to move prospect %s to connection_sent: %v", event.ProspectID, err)
		}
	}
	s.recordUsage(event.UserID, automationdomain.TypeConnectionRequests)
}

// handleMessageSent confirms a delegated LinkedIn send: the stored message
// leaves "sending" and the daily message counter is bumped.
func (s *Service) handleMessageSent(event AutomationEvent) {
	if event.MessageID != "" {
		if _, err := s.messageUsecase.ConfirmSent(event.UserID, event.MessageID); err != nil {
			log.Printf("[PubSub] failed to confirm message %s as sent: %v", event.MessageID, err)
		}
	}
	s.recordUsage(event.UserID, messageAutomationType(event.MessageType))
}

func messageAutomationType(messageType string) automationdomain.AutomationType {
	if messageType == "followUp" {
		return automationdomain.TypeFollowUpMessages
	}
	return automationdomain.TypeWelcomeMessages
}

func (s *Service) handleConnectionAccepted(ctx context.Context, event AutomationEvent) {
	if event.ProspectID != "" {
		if _, err := s.prospectUsecase.UpdateStatus(event.UserID, event.ProspectID, prospectdomain.StatusConnected); err != nil {
			log.Printf("[PubSub] failed to move prospect %s to connected: %v", event.ProspectID, err)
		}
	}

	s.sseManager.SendToUser(event.UserID, "connection_accepted", map[string]interface{}{
		"prospectId":   event.ProspectID,
		"prospectName": event.ProspectName,
		"timestamp":    time.Now(),
	})

	name := event.ProspectName
	if name == "" {
		name = "A prospect"
	}
	s.push(ctx, event, fcm.Notification{
		Title: "Connection accepted",
		Body:  fmt.Sprintf("%s accepted your connection request", name),
		Data: map[string]string{
			"type":         EventConnectionAccepted,
			"prospectId":   event.ProspectID,
			"click_action": s.prospectClickAction(event.ProspectID),
		},
	})
}

func (s *Service) handleMessageReceived(ctx context.Context, event AutomationEvent) {
	if event.ProspectID == "" {
		log.Printf("[PubSub] message_received event without prospect_id, dropping")
		return
	}

	stored, err := s.messageUsecase.ReceiveExternal(event.UserID, event.ProspectID, messagedomain.PlatformLinkedIn, event.Body)
	if err != nil {
		log.Printf("[PubSub] failed to store inbound message for prospect %s: %v", event.ProspectID, err)
		return
	}

	if _, err := s.prospectUsecase.UpdateStatus(event.UserID, event.ProspectID, prospectdomain.StatusMessageReplied); err != nil {
		log.Printf("[PubSub] failed to move prospect %s to message_replied: %v", event.ProspectID, err)
	}

	s.sseManager.SendToUser(event.UserID, "message_received", map[string]interface{}{
		"prospectId":     event.ProspectID,
		"prospectName":   event.ProspectName,
		"messageId":      stored.ID,
		"conversationId": stored.ConversationID,
		"timestamp":      time.Now(),
	})

	name := event.ProspectName
	if name == "" {
		name = "A prospect"
	}
	body := truncateBody(event.Body, 100)
	s.push(ctx, event, fcm.Notification{
		Title: fmt.Sprintf("Reply from %s", name),
		Body:  body,
		Data: map[string]string{
			"type":           EventMessageReceived,
			"prospectId":     event.ProspectID,
			"conversationId": stored.ConversationID,
			"click_action":   "/messages/" + stored.ConversationID,
		},
	})
}

// truncateBody caps the push notification preview. It cuts on a rune
// boundary so a multi-byte character at the limit cannot leave invalid
// UTF-8 in the payload.
func truncateBody(body string, max int) string {
	runes := []rune(body)
	if len(runes) <= max {
		return body
	}
	return string(runes[:max-3]) + "..."
}

func (s *Service) recordUsage(userID string, t automationdomain.AutomationType) {
	if err := s.automationUsecase.RecordAction(userID, t); err != nil {
		log.Printf("[PubSub] failed to record %s usage for user %s: %v", t, userID, err)
	}
}

// push fans the notification out to the user's registered devices and prunes
// tokens FCM rejects.
func (s *Service) push(ctx context.Context, event AutomationEvent, n fcm.Notification) {
	if s.fcmClient == nil || s.fcmRepo == nil {
		return
	}

	go func() {
		tokens, err := s.fcmRepo.FindByUserID(event.UserID)
		if err != nil {
			log.Printf("[FCM] error loading tokens for user %s: %v", event.UserID, err)
			return
		}
		if len(tokens) == 0 {
			return
		}

		tokenStrings := make([]string, 0, len(tokens))
		for _, t := range tokens {
			tokenStrings = append(tokenStrings, t.Token)
		}

		failed, err := s.fcmClient.SendToDevices(context.Background(), tokenStrings, n)
		if err != nil {
			log.Printf("[FCM] error sending notifications: %v", err)
			return
		}
		if len(failed) > 0 {
			log.Printf("[FCM] pruning %d dead tokens for user %s", len(failed), event.UserID)
			if err := s.fcmRepo.DeleteTokens(failed); err != nil {
				log.Printf("[FCM] failed to prune tokens: %v", err)
			}
		}
	}()
}

func (s *Service) prospectClickAction(prospectID string) string {
	if prospectID == "" {
		return "/prospects"
	}
	return "/prospects/" + prospectID
}
