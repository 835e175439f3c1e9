package delivery

import (
	"errors"
	"net/http"

	"linkreach-backend/internal/prospect/domain"
	"linkreach-backend/internal/prospect/repository"
	"linkreach-backend/internal/prospect/usecase"

	"github.com/gin-gonic/gin"
)

type ProspectHandler struct {
	prospectUsecase usecase.ProspectUsecase
}

func NewProspectHandler(prospectUsecase usecase.ProspectUsecase) *ProspectHandler {
	return &ProspectHandler{prospectUsecase: prospectUsecase}
}

// List returns the caller's prospects, optionally filtered.
// GET /api/prospects?campaign_id=...&status=...
func (h *ProspectHandler) List(c *gin.Context) {
	userID := c.GetString("userID")

	filter := repository.ListFilter{
		CampaignID: c.Query("campaign_id"),
		Status:     domain.Status(c.Query("status")),
	}
	if filter.Status != "" && !domain.ValidStatus(filter.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid status filter"})
		return
	}

	prospects, err := h.prospectUsecase.List(userID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "prospects": prospects, "total": len(prospects)})
}

// Create adds a prospect to a campaign.
// POST /api/prospects
func (h *ProspectHandler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.CreateProspectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	prospect, err := h.prospectUsecase.Create(userID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "campaign not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "prospect": prospect})
}

// BulkCreate imports a batch of prospects into a campaign.
// POST /api/prospects/bulk
func (h *ProspectHandler) BulkCreate(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.BulkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	prospects, err := h.prospectUsecase.BulkCreate(userID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "campaign not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "prospects": prospects, "imported": len(prospects)})
}

// GetByID returns one prospect. Other tenants' ids answer 404.
// GET /api/prospects/:id
func (h *ProspectHandler) GetByID(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	prospect, err := h.prospectUsecase.GetByID(userID, id)
	if err != nil {
		if errors.Is(err, usecase.ErrProspectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "prospect not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "prospect": prospect})
}

// Update modifies prospect fields.
// PUT /api/prospects/:id
func (h *ProspectHandler) Update(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	var req usecase.UpdateProspectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	prospect, err := h.prospectUsecase.Update(userID, id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrProspectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "prospect not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "prospect": prospect})
}

// UpdateStatus advances the outreach lifecycle.
// PATCH /api/prospects/:id/status
func (h *ProspectHandler) UpdateStatus(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	prospect, err := h.prospectUsecase.UpdateStatus(userID, id, domain.Status(req.Status))
	if err != nil {
		if errors.Is(err, usecase.ErrProspectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "prospect not found"})
			return
		}
		if errors.Is(err, usecase.ErrInvalidTransition) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "prospect": prospect})
}

// Delete removes a prospect.
// DELETE /api/prospects/:id
func (h *ProspectHandler) Delete(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	if err := h.prospectUsecase.Delete(userID, id); err != nil {
		if errors.Is(err, usecase.ErrProspectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "prospect not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "prospect deleted"})
}

// Search fuzzy-matches prospects by name, company and headline.
// GET /api/prospects/search?q=...
func (h *ProspectHandler) Search(c *gin.Context) {
	userID := c.GetString("userID")

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "query parameter q is required"})
		return
	}

	prospects, err := h.prospectUsecase.Search(userID, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "prospects": prospects, "total": len(prospects)})
}
