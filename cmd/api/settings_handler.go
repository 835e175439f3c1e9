package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	messageusecase "linkreach-backend/internal/message/usecase"
	"linkreach-backend/pkg/ai"
)

// RuntimeConfig holds the AI settings that can change without a restart.
type RuntimeConfig struct {
	OllamaBaseURL string `json:"ollama_base_url"`
	OllamaModel   string `json:"ollama_model,omitempty"`
}

var (
	runtimeConfig     RuntimeConfig
	runtimeConfigLock sync.RWMutex
)

// InitRuntimeConfig seeds the runtime config from the static config.
func InitRuntimeConfig(ollamaBaseURL, ollamaModel string) {
	runtimeConfigLock.Lock()
	defer runtimeConfigLock.Unlock()
	runtimeConfig = RuntimeConfig{
		OllamaBaseURL: ollamaBaseURL,
		OllamaModel:   ollamaModel,
	}
}

func GetRuntimeOllamaBaseURL() string {
	runtimeConfigLock.RLock()
	defer runtimeConfigLock.RUnlock()
	return runtimeConfig.OllamaBaseURL
}

func GetRuntimeOllamaModel() string {
	runtimeConfigLock.RLock()
	defer runtimeConfigLock.RUnlock()
	return runtimeConfig.OllamaModel
}

// AISettingsHandler exposes the runtime Ollama configuration. Updates
// rebuild the draft service and swap it into the message usecase, so new
// drafts use the new provider without a restart.
type AISettingsHandler struct {
	messageUsecase messageusecase.MessageUsecase
	provider       ai.ProviderType
}

func NewAISettingsHandler(messageUc messageusecase.MessageUsecase, provider ai.ProviderType) *AISettingsHandler {
	return &AISettingsHandler{messageUsecase: messageUc, provider: provider}
}

type UpdateOllamaSettingsRequest struct {
	OllamaBaseURL string `json:"ollama_base_url" binding:"required"`
	OllamaModel   string `json:"ollama_model,omitempty"`
}

// GET /api/admin/settings/ollama
func (h *AISettingsHandler) GetOllamaSettings(c *gin.Context) {
	runtimeConfigLock.RLock()
	defer runtimeConfigLock.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"ollama_base_url": runtimeConfig.OllamaBaseURL,
		"ollama_model":    runtimeConfig.OllamaModel,
	})
}

// PUT /api/admin/settings/ollama
func (h *AISettingsHandler) UpdateOllamaSettings(c *gin.Context) {
	var req UpdateOllamaSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	runtimeConfigLock.Lock()
	runtimeConfig.OllamaBaseURL = req.OllamaBaseURL
	if req.OllamaModel != "" {
		runtimeConfig.OllamaModel = req.OllamaModel
	}
	runtimeConfigLock.Unlock()

	svc, err := ai.NewDraftService(ai.Config{
		Provider:      h.provider,
		OllamaBaseURL: GetRuntimeOllamaBaseURL(),
		OllamaModel:   GetRuntimeOllamaModel(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to rebuild draft service"})
		return
	}
	h.messageUsecase.SetDraftService(svc)

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"ollama_base_url": GetRuntimeOllamaBaseURL(),
		"ollama_model":    GetRuntimeOllamaModel(),
	})
}

// POST /api/admin/settings/ollama/test
func (h *AISettingsHandler) TestOllamaConnection(c *gin.Context) {
	var req struct {
		OllamaBaseURL string `json:"ollama_base_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.OllamaBaseURL == "" {
		req.OllamaBaseURL = GetRuntimeOllamaBaseURL()
	}

	resp, err := http.Get(req.OllamaBaseURL + "/api/tags")
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "connected": false, "error": err.Error()})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "connected": false, "status_code": resp.StatusCode})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "connected": true, "ollama_base_url": req.OllamaBaseURL})
}
