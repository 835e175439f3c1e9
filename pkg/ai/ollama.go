package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OllamaService implements DraftService against a local Ollama server.
type OllamaService struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewOllamaService(baseURL, model string) *OllamaService {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3"
	}
	return &OllamaService{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type ollamaResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func (o *OllamaService) GenerateDraft(ctx context.Context, req DraftRequest) (string, error) {
	prompt := buildPrompt(req)

	payload := map[string]interface{}{
		"model":  o.model,
		"prompt": prompt,
		"stream": false,
		"options": map[string]interface{}{
			"temperature": 0.7,
			"num_predict": 200,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ollama status %d: %s", resp.StatusCode, string(raw))
	}

	var parsed ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return strings.TrimSpace(parsed.Response), nil
}

func buildPrompt(req DraftRequest) string {
	var intent string
	switch req.Kind {
	case DraftConnection:
		intent = "a short LinkedIn connection request note (max 300 characters)"
	case DraftWelcome:
		intent = "a friendly first message after the connection was accepted"
	default:
		intent = "a concise follow-up message that references the earlier outreach"
	}

	tone := req.Tone
	if tone == "" {
		tone = "professional and warm"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an outreach assistant. Write %s.\n", intent)
	fmt.Fprintf(&b, "Tone: %s. Output only the message text, no preamble.\n\n", tone)
	fmt.Fprintf(&b, "Prospect: %s\n", req.ProspectName)
	if req.Headline != "" {
		fmt.Fprintf(&b, "Headline: %s\n", req.Headline)
	}
	if req.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", req.Company)
	}
	if req.CampaignName != "" {
		fmt.Fprintf(&b, "Campaign: %s\n", req.CampaignName)
	}
	b.WriteString("\nMESSAGE:")
	return b.String()
}
