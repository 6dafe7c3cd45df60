package config

import (
	"net/http"

	"smart_performance/pkg/api/response"
	"smart_performance/pkg/core/agent"

	"github.com/gin-gonic/gin"
)

type Response struct {
	ActiveProvider string   `json:"active_provider"`
	Available      []string `json:"available"`
}

type SwitchRequest struct {
	Provider string `json:"provider"`
}

// Handler holds dependencies for config endpoints
type Handler struct {
	AgentMgr *agent.Manager
}

// NewHandler creates a new config handler
func NewHandler(agentMgr *agent.Manager) *Handler {
	return &Handler{
		AgentMgr: agentMgr,
	}
}

func (h *Handler) HandleConfig(c *gin.Context) {
	response.RespondOK(c, h.current())
}

func (h *Handler) HandleSwitch(c *gin.Context) {
	var req SwitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	if err := h.AgentMgr.SetGlobalProvider(req.Provider); err != nil {
		response.RespondError(c, http.StatusBadRequest, "unknown_provider", err)
		return
	}

	response.RespondOK(c, h.current())
}

func (h *Handler) current() Response {
	return Response{
		ActiveProvider: h.AgentMgr.GetActiveProvider(),
		Available:      h.AgentMgr.Available(),
	}
}
