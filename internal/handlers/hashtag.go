package handlers

import (
	"net/http"

	"tagtemanin/internal/contextutil"
	"tagtemanin/internal/service"
)

// HashtagHandler handles HTTP requests for hashtag research.
type HashtagHandler struct {
	hashtagService service.HashtagService
}

// NewHashtagHandler creates a new HashtagHandler.
func NewHashtagHandler(hashtagService service.HashtagService) *HashtagHandler {
	return &HashtagHandler{
		hashtagService: hashtagService,
	}
}

// HashtagRequest represents the HTTP request payload for hashtag research.
//
// swagger:model HashtagRequest
type HashtagRequest struct {
	Keyword string `json:"keyword"`
}

// HashtagResponse represents the HTTP response payload for hashtag research.
//
// swagger:model HashtagResponse
type HashtagResponse struct {
	Macro []string      `json:"macro"`
	Mid   []string      `json:"mid"`
	Micro []string      `json:"micro"`
	Emoji []string      `json:"emoji"`
	Reach service.Reach `json:"reach"`
}

// ServeHTTP handles HTTP requests for hashtag research.
//
// swagger:route POST /api/hashtag researchHashtags
//
// Returns ten hashtags per tier, ten emoji and a reach estimate per tier.
//
// responses:
//
//	200: HashtagResponse
//	400: ErrorResponse
//	500: ErrorResponse
//	502: ErrorResponse
func (h *HashtagHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req HashtagRequest
	if err := decodeBody(w, r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	svcResp, err := h.hashtagService.Generate(ctx, service.HashtagRequest{Keyword: req.Keyword})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to generate hashtags")
		return
	}

	writeJSON(ctx, w, http.StatusOK, HashtagResponse{
		Macro: svcResp.Macro,
		Mid:   svcResp.Mid,
		Micro: svcResp.Micro,
		Emoji: svcResp.Emoji,
		Reach: svcResp.Reach,
	})
}
