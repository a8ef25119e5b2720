package handlers

import (
	"net/http"

	"tagtemanin/internal/contextutil"
	"tagtemanin/internal/service"
)

// CaptionHandler handles HTTP requests for caption generation.
type CaptionHandler struct {
	captionService service.CaptionService
}

// NewCaptionHandler creates a new CaptionHandler.
func NewCaptionHandler(captionService service.CaptionService) *CaptionHandler {
	return &CaptionHandler{
		captionService: captionService,
	}
}

// CaptionRequest represents the HTTP request payload for caption generation.
//
// swagger:model CaptionRequest
type CaptionRequest struct {
	Keyword  string `json:"keyword"`
	Region   string `json:"region"`
	Platform string `json:"platform"`
	Tone     string `json:"tone"`
}

// CaptionResponse represents the HTTP response payload for caption generation.
//
// swagger:model CaptionResponse
type CaptionResponse struct {
	Captions []string `json:"captions"`
}

// ServeHTTP handles HTTP requests for caption generation.
//
// swagger:route POST /api/caption generateCaptions
//
// Generates exactly five caption variants for a keyword.
//
// responses:
//
//	200: CaptionResponse
//	400: ErrorResponse
//	500: ErrorResponse
//	502: ErrorResponse
func (h *CaptionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req CaptionRequest
	if err := decodeBody(w, r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	svcResp, err := h.captionService.Generate(ctx, service.CaptionRequest{
		Keyword:  req.Keyword,
		Region:   req.Region,
		Platform: req.Platform,
		Tone:     req.Tone,
	})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to generate captions")
		return
	}

	writeJSON(ctx, w, http.StatusOK, CaptionResponse{Captions: svcResp.Captions})
}
