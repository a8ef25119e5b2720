package handlers

import (
	"net/http"
	"time"

	"tagtemanin/internal/contextutil"
	"tagtemanin/internal/llm"
	"tagtemanin/internal/service"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	apiKeyConfigured bool
	chain            llm.ModelChain
	now              func() time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(apiKeyConfigured bool, chain llm.ModelChain) *HealthHandler {
	return &HealthHandler{
		apiKeyConfigured: apiKeyConfigured,
		chain:            chain.Clone(),
		now:              time.Now,
	}
}

// HealthResponse represents the health check response.
//
// swagger:model HealthResponse
type HealthResponse struct {
	// Overall health status: "healthy" or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// List of issues (only present if status is unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP handles HTTP requests for health checks.
//
// Reports whether the model caller is configured. The provider itself is not
// contacted, so the check never consumes rate-limit budget.
//
// swagger:route GET /api/health healthCheck
//
// responses:
//
//	200: HealthResponse
//	503: HealthResponse
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	checks := make(map[string]string)
	var issues []string

	if h.apiKeyConfigured {
		checks["llm_credentials"] = "ok"
	} else {
		checks["llm_credentials"] = "missing"
		issues = append(issues, "llm_api_key_missing")
	}

	if err := h.chain.Validate(); err != nil {
		checks["model_chain"] = "error"
		issues = append(issues, "model_chain_invalid")
	} else {
		checks["model_chain"] = "ok"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if len(issues) > 0 {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
		logger.WarnContext(ctx, "health check failed", "issues", issues)
	}

	writeJSON(ctx, w, httpStatus, HealthResponse{
		Status:    status,
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Issues:    issues,
	})
}

// OptionsHandler serves the model chain and the closed option sets accepted
// by the caption endpoint.
type OptionsHandler struct {
	chain llm.ModelChain
}

// NewOptionsHandler creates a new OptionsHandler.
func NewOptionsHandler(chain llm.ModelChain) *OptionsHandler {
	return &OptionsHandler{chain: chain.Clone()}
}

// OptionsResponse lists the accepted option values.
//
// swagger:model OptionsResponse
type OptionsResponse struct {
	Models    []string `json:"models"`
	Regions   []string `json:"regions"`
	Platforms []string `json:"platforms"`
	Tones     []string `json:"tones"`
}

// ServeHTTP handles GET /api/options.
func (h *OptionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, OptionsResponse{
		Models:    h.chain,
		Regions:   service.Regions(),
		Platforms: service.Platforms(),
		Tones:     service.Tones(),
	})
}
