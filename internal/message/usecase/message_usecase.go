package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	campaignrepo "linkreach-backend/internal/campaign/repository"
	"linkreach-backend/internal/message/domain"
	"linkreach-backend/internal/message/repository"
	prospectdomain "linkreach-backend/internal/prospect/domain"
	prospectrepo "linkreach-backend/internal/prospect/repository"
	"linkreach-backend/pkg/ai"
	"linkreach-backend/pkg/mailer"
)

var (
	ErrMessageNotFound   = errors.New("message not found")
	ErrProspectNotFound  = errors.New("prospect not found")
	ErrNotSending        = errors.New("only sending messages can be confirmed")
	ErrNotReceived       = errors.New("only received messages can be marked read")
	ErrDraftsUnavailable = errors.New("draft generation is not available")
	ErrNoProspectEmail   = errors.New("prospect has no email address")
)

type messageUsecase struct {
	messageRepo  repository.MessageRepository
	prospectRepo prospectrepo.ProspectRepository
	campaignRepo campaignrepo.CampaignRepository
	transport    mailer.Transport
	draftService ai.DraftService
	now          func() time.Time
}

func NewMessageUsecase(messageRepo repository.MessageRepository, prospectRepo prospectrepo.ProspectRepository, campaignRepo campaignrepo.CampaignRepository, transport mailer.Transport) MessageUsecase {
	return &messageUsecase{
		messageRepo:  messageRepo,
		prospectRepo: prospectRepo,
		campaignRepo: campaignRepo,
		transport:    transport,
		now:          time.Now,
	}
}

// SetDraftService wires the AI provider after construction.
func (u *messageUsecase) SetDraftService(svc ai.DraftService) {
	u.draftService = svc
}

// Send stores and dispatches an outbound message. Email goes through the
// transport and is marked sent immediately; LinkedIn messages stay in
// "sending" until the automation backend confirms them via event.
func (u *messageUsecase) Send(userID string, req *SendMessageRequest) (*domain.Message, error) {
	prospect, err := u.prospectRepo.FindByID(userID, req.ProspectID)
	if err != nil {
		return nil, err
	}
	if prospect == nil {
		return nil, ErrProspectNotFound
	}

	platform := domain.Platform(req.Platform)
	message := &domain.Message{
		UserID:         userID,
		ProspectID:     prospect.ID,
		ConversationID: domain.ConversationID(userID, prospect.ID, platform),
		Type:           domain.TypeSent,
		Platform:       platform,
		Status:         domain.StatusSending,
		Subject:        req.Subject,
		Body:           req.Body,
	}

	if platform == domain.PlatformEmail {
		if prospect.Email == "" {
			return nil, ErrNoProspectEmail
		}
		if err := u.transport.Send(context.Background(), mailer.Email{
			To:      prospect.Email,
			Subject: req.Subject,
			Body:    req.Body,
		}); err != nil {
			message.Status = domain.StatusFailed
			_ = u.messageRepo.Create(message)
			return nil, err
		}
		now := u.now()
		message.Status = domain.StatusSent
		message.SentAt = &now
	}

	if err := u.messageRepo.Create(message); err != nil {
		return nil, err
	}

	u.afterSend(userID, prospect)
	return message, nil
}

// afterSend advances the prospect lifecycle and bumps the campaign aggregate.
// These are separate writes with no transaction around them.
func (u *messageUsecase) afterSend(userID string, prospect *prospectdomain.Prospect) {
	now := u.now()

	if prospectdomain.CanTransition(prospect.Status, prospectdomain.StatusMessageSent) {
		prospect.Status = prospectdomain.StatusMessageSent
		if err := u.prospectRepo.Update(prospect); err != nil {
			log.Printf("[Message] prospect %s status not updated: %v", prospect.ID, err)
		}
	}

	campaign, err := u.campaignRepo.FindByID(userID, prospect.CampaignID)
	if err != nil || campaign == nil {
		log.Printf("[Message] campaign %s stats not updated: %v", prospect.CampaignID, err)
		return
	}
	campaign.Statistics.MessagesSent++
	campaign.Statistics.Recalculate()
	campaign.Statistics.Touch(now)
	if err := u.campaignRepo.Update(campaign); err != nil {
		log.Printf("[Message] campaign %s stats not updated: %v", prospect.CampaignID, err)
	}
}

// ConfirmSent stamps a LinkedIn message as sent once the automation backend
// reports it. Re-delivered confirmations are no-ops.
func (u *messageUsecase) ConfirmSent(userID, id string) (*domain.Message, error) {
	message, err := u.messageRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, ErrMessageNotFound
	}
	if message.Status == domain.StatusSent {
		return message, nil
	}
	if message.Status != domain.StatusSending {
		return nil, ErrNotSending
	}

	now := u.now()
	message.Status = domain.StatusSent
	message.SentAt = &now
	if err := u.messageRepo.Update(message); err != nil {
		return nil, err
	}
	return message, nil
}

func (u *messageUsecase) ListByConversation(userID, conversationID string) ([]*domain.Message, error) {
	return u.messageRepo.FindByConversation(userID, conversationID)
}

func (u *messageUsecase) ListByProspect(userID, prospectID string) ([]*domain.Message, error) {
	prospect, err := u.prospectRepo.FindByID(userID, prospectID)
	if err != nil {
		return nil, err
	}
	if prospect == nil {
		return nil, ErrProspectNotFound
	}
	return u.messageRepo.FindByProspect(userID, prospectID)
}

// Conversations groups the tenant's messages into threads, newest activity
// first, with unread counts over received messages.
func (u *messageUsecase) Conversations(userID string) ([]*domain.Conversation, error) {
	messages, err := u.messageRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	byThread := make(map[string]*domain.Conversation)
	for _, m := range messages {
		conv, ok := byThread[m.ConversationID]
		if !ok {
			conv = &domain.Conversation{
				ConversationID: m.ConversationID,
				ProspectID:     m.ProspectID,
				Platform:       m.Platform,
			}
			byThread[m.ConversationID] = conv
		}
		// FindByUserID returns newest first, so the first message seen per
		// thread is the latest one.
		if conv.LastMessage == nil {
			conv.LastMessage = m
		}
		if m.Type == domain.TypeReceived && m.ReadAt == nil {
			conv.UnreadCount++
		}
	}

	conversations := make([]*domain.Conversation, 0, len(byThread))
	for _, conv := range byThread {
		conversations = append(conversations, conv)
	}
	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].LastMessage.CreatedAt.After(conversations[j].LastMessage.CreatedAt)
	})
	return conversations, nil
}

// MarkRead sets read_at on a received message. Sent messages are rejected.
func (u *messageUsecase) MarkRead(userID, id string) (*domain.Message, error) {
	message, err := u.messageRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, ErrMessageNotFound
	}
	if message.Type != domain.TypeReceived {
		return nil, ErrNotReceived
	}

	if message.ReadAt == nil {
		now := u.now()
		message.ReadAt = &now
		message.Status = domain.StatusRead
		if err := u.messageRepo.Update(message); err != nil {
			return nil, err
		}
	}
	return message, nil
}

func (u *messageUsecase) GenerateDraft(userID string, req *DraftRequest) (string, error) {
	if u.draftService == nil {
		return "", ErrDraftsUnavailable
	}

	prospect, err := u.prospectRepo.FindByID(userID, req.ProspectID)
	if err != nil {
		return "", err
	}
	if prospect == nil {
		return "", ErrProspectNotFound
	}

	campaignName := ""
	if campaign, err := u.campaignRepo.FindByID(userID, prospect.CampaignID); err == nil && campaign != nil {
		campaignName = campaign.Name
	}

	return u.draftService.GenerateDraft(context.Background(), ai.DraftRequest{
		Kind:         ai.DraftKind(req.Kind),
		ProspectName: prospect.Name,
		Company:      prospect.Company,
		Headline:     prospect.Headline,
		CampaignName: campaignName,
		Tone:         req.Tone,
	})
}

func (u *messageUsecase) ReceiveExternal(userID, prospectID string, platform domain.Platform, body string) (*domain.Message, error) {
	prospect, err := u.prospectRepo.FindByID(userID, prospectID)
	if err != nil {
		return nil, err
	}
	if prospect == nil {
		return nil, ErrProspectNotFound
	}

	message := &domain.Message{
		UserID:         userID,
		ProspectID:     prospectID,
		ConversationID: domain.ConversationID(userID, prospectID, platform),
		Type:           domain.TypeReceived,
		Platform:       platform,
		Status:         domain.StatusDelivered,
		Body:           body,
	}
	if err := u.messageRepo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}
