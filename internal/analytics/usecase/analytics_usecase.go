package usecase

import (
	"math"
	"sort"
	"time"

	"linkreach-backend/internal/analytics/dto"
	authrepo "linkreach-backend/internal/auth/repository"
	campaigndomain "linkreach-backend/internal/campaign/domain"
	campaignrepo "linkreach-backend/internal/campaign/repository"
	messagedomain "linkreach-backend/internal/message/domain"
	messagerepo "linkreach-backend/internal/message/repository"
	prospectdomain "linkreach-backend/internal/prospect/domain"
	prospectrepo "linkreach-backend/internal/prospect/repository"
)

type analyticsUsecase struct {
	campaignRepo campaignrepo.CampaignRepository
	prospectRepo prospectrepo.ProspectRepository
	messageRepo  messagerepo.MessageRepository
	userRepo     authrepo.UserRepository
	now          func() time.Time
}

func NewAnalyticsUsecase(campaignRepo campaignrepo.CampaignRepository, prospectRepo prospectrepo.ProspectRepository, messageRepo messagerepo.MessageRepository, userRepo authrepo.UserRepository) AnalyticsUsecase {
	return &analyticsUsecase{
		campaignRepo: campaignRepo,
		prospectRepo: prospectRepo,
		messageRepo:  messageRepo,
		userRepo:     userRepo,
		now:          time.Now,
	}
}

func (u *analyticsUsecase) Summary(userID string, windowDays int) (*dto.Summary, error) {
	windowStart := u.windowStart(windowDays)

	campaigns, err := u.campaignRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	prospects, err := u.prospectRepo.FindByUserID(userID, prospectrepo.ListFilter{})
	if err != nil {
		return nil, err
	}
	messages, err := u.messageRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	summary := &dto.Summary{DateRange: windowDays}

	for _, p := range prospects {
		summary.Prospects.Total++
		switch p.Status {
		case prospectdomain.StatusNew:
			summary.Prospects.New++
		case prospectdomain.StatusConnected:
			summary.Prospects.Connected++
		case prospectdomain.StatusMessageReplied:
			summary.Prospects.Replied++
		}

		// A prospect only counts toward connectionsSent once a connection
		// request date is stamped; being in the window is judged by that
		// date, not by the row's creation time.
		if d := p.Automation.ConnectionRequestDate; d != nil && !d.Before(windowStart) {
			summary.Performance.ConnectionsSent++
			if p.Accepted() {
				summary.Performance.ConnectionsAccepted++
			}
		}
	}

	for _, m := range messages {
		if m.CreatedAt.Before(windowStart) {
			continue
		}
		switch m.Type {
		case messagedomain.TypeSent:
			if m.Status != messagedomain.StatusDraft && m.Status != messagedomain.StatusFailed {
				summary.Performance.MessagesSent++
			}
		case messagedomain.TypeReceived:
			summary.Performance.MessagesReplied++
		}
	}

	summary.Performance.ConnectionRate = campaigndomain.Rate(summary.Performance.ConnectionsAccepted, summary.Performance.ConnectionsSent)
	summary.Performance.ResponseRate = campaigndomain.Rate(summary.Performance.MessagesReplied, summary.Performance.MessagesSent)

	var rateSum int
	for _, c := range campaigns {
		summary.Campaigns.Total++
		if c.Status == campaigndomain.StatusActive {
			summary.Campaigns.Active++
		}
		rateSum += c.Statistics.AcceptanceRate
	}
	if len(campaigns) > 0 {
		summary.Campaigns.AverageAcceptanceRate = int(math.Round(float64(rateSum) / float64(len(campaigns))))
	}

	return summary, nil
}

// Trends produces one bucket per UTC calendar day from windowStart through
// today, both inclusive, in ascending order.
func (u *analyticsUsecase) Trends(userID string, windowDays int, trendType TrendType) (*dto.Trends, error) {
	timestamps, err := u.trendTimestamps(userID, trendType)
	if err != nil {
		return nil, err
	}

	today := startOfUTCDay(u.now())
	windowStart := today.AddDate(0, 0, -windowDays)

	var data []dto.TrendPoint
	for day := windowStart; !day.After(today); day = day.AddDate(0, 0, 1) {
		value := 0
		for _, ts := range timestamps {
			if sameUTCDay(ts, day) {
				value++
			}
		}
		data = append(data, dto.TrendPoint{
			Date:  day.Format("2006-01-02"),
			Value: value,
			Label: day.Format("Jan 2"),
		})
	}

	return &dto.Trends{
		Type:      string(trendType),
		DateRange: windowDays,
		Data:      data,
	}, nil
}

// trendTimestamps collects the relevant timestamp of every record the trend
// type counts.
func (u *analyticsUsecase) trendTimestamps(userID string, trendType TrendType) ([]time.Time, error) {
	var timestamps []time.Time

	switch trendType {
	case TrendConnections:
		prospects, err := u.prospectRepo.FindByUserID(userID, prospectrepo.ListFilter{})
		if err != nil {
			return nil, err
		}
		for _, p := range prospects {
			if p.Automation.ConnectionRequestDate != nil {
				timestamps = append(timestamps, *p.Automation.ConnectionRequestDate)
			}
		}
	case TrendProspects:
		prospects, err := u.prospectRepo.FindByUserID(userID, prospectrepo.ListFilter{})
		if err != nil {
			return nil, err
		}
		for _, p := range prospects {
			timestamps = append(timestamps, p.CreatedAt)
		}
	case TrendMessages, TrendResponses:
		messages, err := u.messageRepo.FindByUserID(userID)
		if err != nil {
			return nil, err
		}
		want := messagedomain.TypeSent
		if trendType == TrendResponses {
			want = messagedomain.TypeReceived
		}
		for _, m := range messages {
			if m.Type == want {
				timestamps = append(timestamps, m.CreatedAt)
			}
		}
	}

	return timestamps, nil
}

// Campaigns builds the performance table, most recently active first, plus
// the status distribution.
func (u *analyticsUsecase) Campaigns(userID string) (*dto.CampaignAnalytics, error) {
	campaigns, err := u.campaignRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	prospects, err := u.prospectRepo.FindByUserID(userID, prospectrepo.ListFilter{})
	if err != nil {
		return nil, err
	}

	prospectCount := make(map[string]int)
	for _, p := range prospects {
		prospectCount[p.CampaignID]++
	}

	result := &dto.CampaignAnalytics{
		StatusDistribution: make(map[string]int),
	}
	for _, c := range campaigns {
		result.StatusDistribution[string(c.Status)]++
		result.Campaigns = append(result.Campaigns, dto.CampaignPerformance{
			ID:                  c.ID,
			Name:                c.Name,
			Status:              string(c.Status),
			Prospects:           prospectCount[c.ID],
			ConnectionsSent:     c.Statistics.ConnectionsSent,
			ConnectionsAccepted: c.Statistics.ConnectionsAccepted,
			AcceptanceRate:      c.Statistics.AcceptanceRate,
			MessagesSent:        c.Statistics.MessagesSent,
			MessagesReplied:     c.Statistics.MessagesReplied,
			ResponseRate:        c.Statistics.ResponseRate,
			LastActivity:        c.Statistics.LastActivity,
		})
	}

	// Stable sort keeps the fetch order for campaigns that tie.
	sort.SliceStable(result.Campaigns, func(i, j int) bool {
		a, b := result.Campaigns[i].LastActivity, result.Campaigns[j].LastActivity
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})

	return result, nil
}

// Platform is the admin rollup. The trend series are synthetic, as in the
// original dashboard; only the totals are live counts.
func (u *analyticsUsecase) Platform(windowDays int) (*dto.PlatformAnalytics, error) {
	users, err := u.userRepo.CountUsers()
	if err != nil {
		return nil, err
	}
	campaigns, err := u.campaignRepo.FindAll()
	if err != nil {
		return nil, err
	}
	active := 0
	statuses := make(map[string]int)
	for _, campaign := range campaigns {
		statuses[string(campaign.Status)]++
		if campaign.Status == campaigndomain.StatusActive {
			active++
		}
	}
	prospects, err := u.prospectRepo.CountAll()
	if err != nil {
		return nil, err
	}
	messages, err := u.messageRepo.CountAll()
	if err != nil {
		return nil, err
	}

	return &dto.PlatformAnalytics{
		DateRange:        windowDays,
		TotalUsers:       users,
		TotalCampaigns:   int64(len(campaigns)),
		ActiveCampaigns:  int64(active),
		CampaignStatuses: statuses,
		TotalProspects:   prospects,
		TotalMessages:    messages,
		UserTrend:        u.mockTrend(windowDays, int(users)),
		MessageTrend:     u.mockTrend(windowDays, int(messages)),
	}, nil
}

// mockTrend fabricates a plausible ascending series ending near the current
// total, mirroring the placeholder data the admin dashboard ships with.
func (u *analyticsUsecase) mockTrend(windowDays, total int) []dto.TrendPoint {
	today := startOfUTCDay(u.now())
	windowStart := today.AddDate(0, 0, -windowDays)

	buckets := windowDays + 1
	var data []dto.TrendPoint
	i := 0
	for day := windowStart; !day.After(today); day = day.AddDate(0, 0, 1) {
		value := total * (i + 1) / buckets
		data = append(data, dto.TrendPoint{
			Date:  day.Format("2006-01-02"),
			Value: value,
			Label: day.Format("Jan 2"),
		})
		i++
	}
	return data
}

func (u *analyticsUsecase) windowStart(windowDays int) time.Time {
	return startOfUTCDay(u.now()).AddDate(0, 0, -windowDays)
}

func startOfUTCDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameUTCDay(a, b time.Time) bool {
	au, bu := a.UTC(), b.UTC()
	return au.Year() == bu.Year() && au.YearDay() == bu.YearDay()
}
