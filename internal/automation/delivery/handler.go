package delivery

import (
	"net/http"
	"strings"

	"linkreach-backend/internal/automation/dto"
	"linkreach-backend/internal/automation/usecase"

	"github.com/gin-gonic/gin"
)

type AutomationHandler struct {
	automationUsecase usecase.AutomationUsecase
}

func NewAutomationHandler(automationUsecase usecase.AutomationUsecase) *AutomationHandler {
	return &AutomationHandler{automationUsecase: automationUsecase}
}

// Status reports each automation type against its daily quota.
// GET /api/automation/status
func (h *AutomationHandler) Status(c *gin.Context) {
	userID := c.GetString("userID")

	status, err := h.automationUsecase.Status(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "automation": status})
}

// GetSettings returns the tenant's automation configuration.
// GET /api/automation/settings
func (h *AutomationHandler) GetSettings(c *gin.Context) {
	userID := c.GetString("userID")

	settings, err := h.automationUsecase.GetSettings(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
}

// UpdateSettings replaces the tenant's automation configuration.
// PUT /api/automation/settings
func (h *AutomationHandler) UpdateSettings(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	settings, err := h.automationUsecase.UpdateSettings(userID, &req)
	if err != nil {
		if strings.HasPrefix(err.Error(), "invalid settings") {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
}
