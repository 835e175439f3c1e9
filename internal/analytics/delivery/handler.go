package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"linkreach-backend/internal/analytics/usecase"
)

type AnalyticsHandler struct {
	analyticsUsecase usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(analyticsUsecase usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUsecase: analyticsUsecase}
}

// dateRange reads ?dateRange and clamps it to the supported windows.
// Anything unrecognized falls back to 30 days.
func dateRange(c *gin.Context) int {
	switch n, _ := strconv.Atoi(c.DefaultQuery("dateRange", "30")); n {
	case 7, 30, 90:
		return n
	default:
		return 30
	}
}

func (h *AnalyticsHandler) Summary(c *gin.Context) {
	userID := c.MustGet("userID").(string)

	summary, err := h.analyticsUsecase.Summary(userID, dateRange(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "summary": summary})
}

func (h *AnalyticsHandler) Trends(c *gin.Context) {
	userID := c.MustGet("userID").(string)

	trendType := usecase.TrendType(c.DefaultQuery("type", string(usecase.TrendConnections)))
	if !usecase.ValidTrendType(trendType) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid trend type"})
		return
	}

	trends, err := h.analyticsUsecase.Trends(userID, dateRange(c), trendType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to build trends"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "trends": trends})
}

func (h *AnalyticsHandler) Campaigns(c *gin.Context) {
	userID := c.MustGet("userID").(string)

	analytics, err := h.analyticsUsecase.Campaigns(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to build campaign analytics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "analytics": analytics})
}

// Platform is the admin-only cross-tenant rollup. The router guards it with
// the admin middleware.
func (h *AnalyticsHandler) Platform(c *gin.Context) {
	analytics, err := h.analyticsUsecase.Platform(dateRange(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to build platform analytics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "analytics": analytics})
}
