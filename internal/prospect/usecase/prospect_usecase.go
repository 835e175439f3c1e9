package usecase

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	campaignrepo "linkreach-backend/internal/campaign/repository"
	"linkreach-backend/internal/prospect/domain"
	"linkreach-backend/internal/prospect/repository"
	"linkreach-backend/pkg/fuzzy"
)

var (
	ErrProspectNotFound  = errors.New("prospect not found")
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type prospectUsecase struct {
	prospectRepo repository.ProspectRepository
	campaignRepo campaignrepo.CampaignRepository
	now          func() time.Time
}

func NewProspectUsecase(prospectRepo repository.ProspectRepository, campaignRepo campaignrepo.CampaignRepository) ProspectUsecase {
	return &prospectUsecase{
		prospectRepo: prospectRepo,
		campaignRepo: campaignRepo,
		now:          time.Now,
	}
}

func (u *prospectUsecase) Create(userID string, req *CreateProspectRequest) (*domain.Prospect, error) {
	campaign, err := u.campaignRepo.FindByID(userID, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	prospect := &domain.Prospect{
		UserID:      userID,
		CampaignID:  req.CampaignID,
		Name:        req.Name,
		Headline:    req.Headline,
		Company:     req.Company,
		Location:    req.Location,
		LinkedInURL: req.LinkedInURL,
		Email:       req.Email,
		Status:      domain.StatusNew,
	}
	if err := u.prospectRepo.Create(prospect); err != nil {
		return nil, err
	}
	return prospect, nil
}

// BulkCreate imports search results into a campaign in one batch.
func (u *prospectUsecase) BulkCreate(userID string, req *BulkCreateRequest) ([]*domain.Prospect, error) {
	campaign, err := u.campaignRepo.FindByID(userID, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	prospects := make([]*domain.Prospect, 0, len(req.Prospects))
	for _, item := range req.Prospects {
		if item.Name == "" {
			return nil, fmt.Errorf("invalid prospect: name is required")
		}
		prospects = append(prospects, &domain.Prospect{
			UserID:      userID,
			CampaignID:  req.CampaignID,
			Name:        item.Name,
			Headline:    item.Headline,
			Company:     item.Company,
			Location:    item.Location,
			LinkedInURL: item.LinkedInURL,
			Email:       item.Email,
			Status:      domain.StatusNew,
		})
	}
	if err := u.prospectRepo.CreateBatch(prospects); err != nil {
		return nil, err
	}
	return prospects, nil
}

func (u *prospectUsecase) GetByID(userID, id string) (*domain.Prospect, error) {
	prospect, err := u.prospectRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if prospect == nil {
		return nil, ErrProspectNotFound
	}
	return prospect, nil
}

func (u *prospectUsecase) List(userID string, filter repository.ListFilter) ([]*domain.Prospect, error) {
	return u.prospectRepo.FindByUserID(userID, filter)
}

func (u *prospectUsecase) Update(userID, id string, req *UpdateProspectRequest) (*domain.Prospect, error) {
	prospect, err := u.prospectRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if prospect == nil {
		return nil, ErrProspectNotFound
	}

	if req.Name != nil {
		prospect.Name = *req.Name
	}
	if req.Headline != nil {
		prospect.Headline = *req.Headline
	}
	if req.Company != nil {
		prospect.Company = *req.Company
	}
	if req.Location != nil {
		prospect.Location = *req.Location
	}
	if req.LinkedInURL != nil {
		prospect.LinkedInURL = *req.LinkedInURL
	}
	if req.Email != nil {
		prospect.Email = *req.Email
	}
	if req.AutomationPaused != nil {
		prospect.Automation.AutomationPaused = *req.AutomationPaused
	}

	if err := u.prospectRepo.Update(prospect); err != nil {
		return nil, err
	}
	return prospect, nil
}

// UpdateStatus advances the outreach lifecycle. The prospect update and the
// campaign statistics update are two separate writes; a failure between them
// can leave the aggregate stale until the next recount.
func (u *prospectUsecase) UpdateStatus(userID, id string, status domain.Status) (*domain.Prospect, error) {
	if !domain.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}

	prospect, err := u.prospectRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if prospect == nil {
		return nil, ErrProspectNotFound
	}
	if !domain.CanTransition(prospect.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, prospect.Status, status)
	}

	now := u.now()
	prospect.Status = status
	if status == domain.StatusConnectionSent && !prospect.Automation.ConnectionRequestSent {
		prospect.Automation.ConnectionRequestSent = true
		prospect.Automation.ConnectionRequestDate = &now
	}
	if err := u.prospectRepo.Update(prospect); err != nil {
		return nil, err
	}

	u.applyToCampaignStats(userID, prospect.CampaignID, status, now)
	return prospect, nil
}

func (u *prospectUsecase) applyToCampaignStats(userID, campaignID string, status domain.Status, now time.Time) {
	campaign, err := u.campaignRepo.FindByID(userID, campaignID)
	if err != nil || campaign == nil {
		log.Printf("[Prospect] campaign %s stats not updated: %v", campaignID, err)
		return
	}

	switch status {
	case domain.StatusConnectionSent:
		campaign.Statistics.ConnectionsSent++
	case domain.StatusConnected:
		campaign.Statistics.ConnectionsAccepted++
	case domain.StatusMessageReplied:
		campaign.Statistics.MessagesReplied++
	default:
		return
	}
	campaign.Statistics.Recalculate()
	campaign.Statistics.Touch(now)

	if err := u.campaignRepo.Update(campaign); err != nil {
		log.Printf("[Prospect] campaign %s stats not updated: %v", campaignID, err)
	}
}

func (u *prospectUsecase) Delete(userID, id string) error {
	prospect, err := u.prospectRepo.FindByID(userID, id)
	if err != nil {
		return err
	}
	if prospect == nil {
		return ErrProspectNotFound
	}
	return u.prospectRepo.Delete(userID, id)
}

// Search runs a fuzzy match over the tenant's prospects, best matches first.
func (u *prospectUsecase) Search(userID, query string) ([]*domain.Prospect, error) {
	prospects, err := u.prospectRepo.FindByUserID(userID, repository.ListFilter{})
	if err != nil {
		return nil, err
	}

	type scored struct {
		prospect *domain.Prospect
		score    float64
	}
	var matches []scored
	for _, p := range prospects {
		score := fuzzy.RelevanceScore(query, p.Name, p.Company, p.Headline)
		if score > 0 {
			matches = append(matches, scored{prospect: p, score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	results := make([]*domain.Prospect, 0, len(matches))
	for _, m := range matches {
		results = append(results, m.prospect)
	}
	return results, nil
}
