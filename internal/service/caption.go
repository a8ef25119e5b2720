package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_caller.go -package=mocks tagtemanin/internal/service Caller
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_caption_service.go -package=mocks -mock_names=CaptionService=MockCaptionService tagtemanin/internal/service CaptionService

import (
	"context"
	"strings"

	"tagtemanin/internal/contextutil"
	"tagtemanin/internal/llm"
	"tagtemanin/internal/normalize"
)

// CaptionCount is the number of caption variants returned per request.
const CaptionCount = 5

// CaptionFiller replaces captions the model failed to produce.
const CaptionFiller = "Caption tidak berhasil di-generate."

const (
	captionTemperature float32 = 0.9
	captionMaxTokens           = 1024
)

// Caller is an interface for calling the model fallback chain.
// This interface is defined from the service layer's perspective (consumer-first).
type Caller interface {
	// Call returns the first usable completion for the request.
	Call(ctx context.Context, req llm.GenerationRequest) (string, error)
}

// CaptionRequest represents a caption generation request in the domain layer.
type CaptionRequest struct {
	Keyword  string
	Region   string
	Platform string
	Tone     string
}

// CaptionResponse holds exactly CaptionCount captions.
type CaptionResponse struct {
	Captions []string
}

// CaptionService generates social media captions.
type CaptionService interface {
	// Generate returns CaptionCount captions for the request.
	Generate(ctx context.Context, req CaptionRequest) (CaptionResponse, error)
}

type captionService struct {
	caller Caller
	shape  normalize.FlatArray
}

// NewCaptionService creates a new CaptionService.
func NewCaptionService(caller Caller) CaptionService {
	return &captionService{
		caller: caller,
		shape:  normalize.FlatArray{Length: CaptionCount, Filler: CaptionFiller},
	}
}

// Generate builds the caption prompt, calls the model chain and repairs the
// output into exactly CaptionCount non-empty captions.
func (s *captionService) Generate(ctx context.Context, req CaptionRequest) (CaptionResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validateCaptionRequest(req); err != nil {
		logger.WarnContext(ctx, "invalid caption request", "error", err)
		return CaptionResponse{}, err
	}

	raw, err := s.caller.Call(ctx, llm.GenerationRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: captionSystemPrompt},
			{Role: llm.RoleUser, Content: buildCaptionPrompt(req)},
		},
		Temperature: llm.Temp(captionTemperature),
		MaxTokens:   captionMaxTokens,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate captions", "error", err)
		return CaptionResponse{}, WrapError(classifyCallError(err), "failed to generate captions")
	}

	captions := s.shape.Normalize(raw)
	for i, c := range captions {
		if strings.TrimSpace(c) == "" {
			captions[i] = CaptionFiller
		}
	}

	logger.InfoContext(ctx, "captions generated",
		"keyword", req.Keyword,
		"region", req.Region,
		"platform", req.Platform,
		"tone", req.Tone,
		"raw_length", len(raw),
	)
	return CaptionResponse{Captions: captions}, nil
}

func validateCaptionRequest(req CaptionRequest) error {
	fields := []struct {
		name  string
		value string
	}{
		{"keyword", req.Keyword},
		{"region", req.Region},
		{"platform", req.Platform},
		{"tone", req.Tone},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name, Message: "cannot be empty"}
		}
	}
	return nil
}
