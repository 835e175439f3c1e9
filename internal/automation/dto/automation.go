package dto

// TypeStatus is the per-automation-type block of the status endpoint.
type TypeStatus struct {
	Enabled    bool   `json:"enabled"`
	Status     string `json:"status"` // "active" or "paused"
	DailyUsage int    `json:"dailyUsage"`
	DailyLimit int    `json:"dailyLimit"`
	Percentage int    `json:"percentage"`
}

type StatusResponse struct {
	Enabled bool                  `json:"enabled"`
	Types   map[string]TypeStatus `json:"types"`
}

// UpdateSettingsRequest replaces the tenant's automation configuration
// wholesale. Missing booleans default to false, which matches the
// replace-not-patch contract.
type UpdateSettingsRequest struct {
	Enabled            bool `json:"enabled"`
	ConnectionRequests bool `json:"connectionRequests"`
	WelcomeMessages    bool `json:"welcomeMessages"`
	FollowUpMessages   bool `json:"followUpMessages"`
	ProfileViews       bool `json:"profileViews"`
	EmailSending       bool `json:"emailSending"`

	WorkingHoursStart int    `json:"workingHoursStart" validate:"min=0,max=23"`
	WorkingHoursEnd   int    `json:"workingHoursEnd" validate:"min=0,max=24"`
	WorkingDays       string `json:"workingDays" validate:"workingdays"`
	Timezone          string `json:"timezone" validate:"timezone"`

	DailyLimits *DailyLimits `json:"dailyLimits"`
}

type DailyLimits struct {
	Connections  int `json:"connections" validate:"min=0"`
	Messages     int `json:"messages" validate:"min=0"`
	ProfileViews int `json:"profileViews" validate:"min=0"`
}
