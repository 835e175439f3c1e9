package dto

import "time"

// Performance is the summary's outreach block. Rates are rounded integer
// percentages, 0 when the denominator is 0.
type Performance struct {
	ConnectionsSent     int `json:"connectionsSent"`
	ConnectionsAccepted int `json:"connectionsAccepted"`
	ConnectionRate      int `json:"connectionRate"`
	MessagesSent        int `json:"messagesSent"`
	MessagesReplied     int `json:"messagesReplied"`
	ResponseRate        int `json:"responseRate"`
}

type CampaignTotals struct {
	Total                 int `json:"total"`
	Active                int `json:"active"`
	AverageAcceptanceRate int `json:"averageAcceptanceRate"`
}

type ProspectTotals struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Connected int `json:"connected"`
	Replied   int `json:"replied"`
}

type Summary struct {
	DateRange   int            `json:"dateRange"`
	Performance Performance    `json:"performance"`
	Campaigns   CampaignTotals `json:"campaigns"`
	Prospects   ProspectTotals `json:"prospects"`
}

// TrendPoint is one calendar-day bucket.
type TrendPoint struct {
	Date  string `json:"date"`  // "2006-01-02"
	Value int    `json:"value"`
	Label string `json:"label"` // "Jan 2"
}

type Trends struct {
	Type      string       `json:"type"`
	DateRange int          `json:"dateRange"`
	Data      []TrendPoint `json:"data"`
}

// CampaignPerformance is one row of the campaign analytics table.
type CampaignPerformance struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Status              string     `json:"status"`
	Prospects           int        `json:"prospects"`
	ConnectionsSent     int        `json:"connectionsSent"`
	ConnectionsAccepted int        `json:"connectionsAccepted"`
	AcceptanceRate      int        `json:"acceptanceRate"`
	MessagesSent        int        `json:"messagesSent"`
	MessagesReplied     int        `json:"messagesReplied"`
	ResponseRate        int        `json:"responseRate"`
	LastActivity        *time.Time `json:"lastActivity,omitempty"`
}

type CampaignAnalytics struct {
	Campaigns          []CampaignPerformance `json:"campaigns"`
	StatusDistribution map[string]int        `json:"statusDistribution"`
}

// PlatformAnalytics is the admin rollup across all tenants.
type PlatformAnalytics struct {
	DateRange        int            `json:"dateRange"`
	TotalUsers       int64          `json:"totalUsers"`
	TotalCampaigns   int64          `json:"totalCampaigns"`
	ActiveCampaigns  int64          `json:"activeCampaigns"`
	CampaignStatuses map[string]int `json:"campaignStatuses"`
	TotalProspects   int64          `json:"totalProspects"`
	TotalMessages    int64          `json:"totalMessages"`
	UserTrend        []TrendPoint   `json:"userTrend"`
	MessageTrend     []TrendPoint   `json:"messageTrend"`
}
