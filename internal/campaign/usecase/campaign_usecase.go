package usecase

import (
	"errors"
	"fmt"

	"linkreach-backend/internal/campaign/domain"
	"linkreach-backend/internal/campaign/repository"
)

var ErrCampaignNotFound = errors.New("campaign not found")

type campaignUsecase struct {
	campaignRepo repository.CampaignRepository
}

func NewCampaignUsecase(campaignRepo repository.CampaignRepository) CampaignUsecase {
	return &campaignUsecase{campaignRepo: campaignRepo}
}

func (u *campaignUsecase) Create(userID string, req *CreateCampaignRequest) (*domain.Campaign, error) {
	campaign := &domain.Campaign{
		UserID:             userID,
		Name:               req.Name,
		Description:        req.Description,
		Status:             domain.StatusDraft,
		SearchTitle:        req.SearchTitle,
		SearchCompany:      req.SearchCompany,
		SearchLocation:     req.SearchLocation,
		SearchKeywords:     req.SearchKeywords,
		ConnectionTemplate: req.ConnectionTemplate,
		FollowUpTemplate:   req.FollowUpTemplate,
	}
	if err := u.campaignRepo.Create(campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (u *campaignUsecase) GetByID(userID, id string) (*domain.Campaign, error) {
	campaign, err := u.campaignRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	return campaign, nil
}

func (u *campaignUsecase) List(userID string) ([]*domain.Campaign, error) {
	return u.campaignRepo.FindByUserID(userID)
}

func (u *campaignUsecase) Update(userID, id string, req *UpdateCampaignRequest) (*domain.Campaign, error) {
	campaign, err := u.campaignRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	if req.Name != nil {
		campaign.Name = *req.Name
	}
	if req.Description != nil {
		campaign.Description = *req.Description
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		if !domain.ValidStatus(status) {
			return nil, fmt.Errorf("invalid status: %s", *req.Status)
		}
		campaign.Status = status
	}
	if req.SearchTitle != nil {
		campaign.SearchTitle = *req.SearchTitle
	}
	if req.SearchCompany != nil {
		campaign.SearchCompany = *req.SearchCompany
	}
	if req.SearchLocation != nil {
		campaign.SearchLocation = *req.SearchLocation
	}
	if req.SearchKeywords != nil {
		campaign.SearchKeywords = *req.SearchKeywords
	}
	if req.ConnectionTemplate != nil {
		campaign.ConnectionTemplate = *req.ConnectionTemplate
	}
	if req.FollowUpTemplate != nil {
		campaign.FollowUpTemplate = *req.FollowUpTemplate
	}

	if err := u.campaignRepo.Update(campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (u *campaignUsecase) Delete(userID, id string) error {
	campaign, err := u.campaignRepo.FindByID(userID, id)
	if err != nil {
		return err
	}
	if campaign == nil {
		return ErrCampaignNotFound
	}
	return u.campaignRepo.Delete(userID, id)
}
