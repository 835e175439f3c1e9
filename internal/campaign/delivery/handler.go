package delivery

import (
	"errors"
	"net/http"
	"strings"

	"linkreach-backend/internal/campaign/usecase"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	campaignUsecase usecase.CampaignUsecase
}

func NewCampaignHandler(campaignUsecase usecase.CampaignUsecase) *CampaignHandler {
	return &CampaignHandler{campaignUsecase: campaignUsecase}
}

// List returns the caller's campaigns.
// GET /api/campaigns
func (h *CampaignHandler) List(c *gin.Context) {
	userID := c.GetString("userID")

	campaigns, err := h.campaignUsecase.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "campaigns": campaigns, "total": len(campaigns)})
}

// Create starts a new campaign in draft status.
// POST /api/campaigns
func (h *CampaignHandler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	campaign, err := h.campaignUsecase.Create(userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "campaign": campaign})
}

// GetByID returns one campaign. Other tenants' ids answer 404.
// GET /api/campaigns/:id
func (h *CampaignHandler) GetByID(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	campaign, err := h.campaignUsecase.GetByID(userID, id)
	if err != nil {
		if errors.Is(err, usecase.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "campaign not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "campaign": campaign})
}

// Update modifies campaign fields and status.
// PUT /api/campaigns/:id
func (h *CampaignHandler) Update(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	var req usecase.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	campaign, err := h.campaignUsecase.Update(userID, id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "campaign not found"})
			return
		}
		if strings.HasPrefix(err.Error(), "invalid status") {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "campaign": campaign})
}

// Delete removes a campaign.
// DELETE /api/campaigns/:id
func (h *CampaignHandler) Delete(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	if err := h.campaignUsecase.Delete(userID, id); err != nil {
		if errors.Is(err, usecase.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "campaign not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "campaign deleted"})
}
