package usecase

import "linkreach-backend/internal/analytics/dto"

// TrendType selects which record timestamp the trend endpoint buckets.
type TrendType string

const (
	TrendConnections TrendType = "connections"
	TrendMessages    TrendType = "messages"
	TrendResponses   TrendType = "responses"
	TrendProspects   TrendType = "prospects"
)

func ValidTrendType(t TrendType) bool {
	switch t {
	case TrendConnections, TrendMessages, TrendResponses, TrendProspects:
		return true
	}
	return false
}

// AnalyticsUsecase derives time-bucketed counts and summary ratios from the
// tenant's raw rows. Fetches are full scans filtered in memory; a failed
// fetch aborts the whole aggregation.
type AnalyticsUsecase interface {
	Summary(userID string, windowDays int) (*dto.Summary, error)
	Trends(userID string, windowDays int, trendType TrendType) (*dto.Trends, error)
	Campaigns(userID string) (*dto.CampaignAnalytics, error)
	Platform(windowDays int) (*dto.PlatformAnalytics, error)
}
