package ai

import "context"

// DraftKind selects the template the provider is prompted to write.
type DraftKind string

const (
	DraftConnection DraftKind = "connection"
	DraftWelcome    DraftKind = "welcome"
	DraftFollowUp   DraftKind = "followup"
)

// DraftRequest carries the prospect context an outreach draft is built from.
type DraftRequest struct {
	Kind         DraftKind
	ProspectName string
	Company      string
	Headline     string
	CampaignName string
	Tone         string
}

// DraftService generates outreach message drafts.
// Implement this interface to add new AI providers.
type DraftService interface {
	GenerateDraft(ctx context.Context, req DraftRequest) (string, error)
}

// ProviderType selects the backing AI provider.
type ProviderType string

const (
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
