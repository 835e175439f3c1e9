package ai

// Config holds AI provider configuration.
type Config struct {
	Provider      ProviderType
	OllamaBaseURL string
	OllamaModel   string
}

// NewDraftService is the provider factory. Only Ollama ships today; the
// switch keeps the seam for hosted providers.
func NewDraftService(cfg Config) (DraftService, error) {
	switch cfg.Provider {
	case ProviderOllama:
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil
	default:
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil
	}
}
