package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tagtemanin/internal/llm"
	"tagtemanin/internal/service"
	"tagtemanin/internal/service/mocks"

	"go.uber.org/mock/gomock"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func encodeBody(t *testing.T, body interface{}) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
		return &buf
	}
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	return &buf
}

func TestNewCaptionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCaptionService := mocks.NewMockCaptionService(ctrl)
	handler := NewCaptionHandler(mockCaptionService)

	if handler == nil {
		t.Fatal("NewCaptionHandler() returned nil")
	}
	if handler.captionService != mockCaptionService {
		t.Error("NewCaptionHandler() captionService not set correctly")
	}
}

func TestCaptionHandler_ServeHTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validReq := CaptionRequest{Keyword: "Batik Jogja", Region: "Jogja", Platform: "Instagram", Tone: "Humoris"}
	validSvcReq := service.CaptionRequest{Keyword: "Batik Jogja", Region: "Jogja", Platform: "Instagram", Tone: "Humoris"}

	tests := []struct {
		name          string
		method        string
		body          interface{}
		mockSetup     func(*mocks.MockCaptionService)
		wantStatus    int
		checkResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "successful POST request",
			method: http.MethodPost,
			body:   validReq,
			mockSetup: func(m *mocks.MockCaptionService) {
				m.EXPECT().
					Generate(gomock.Any(), validSvcReq).
					Return(service.CaptionResponse{Captions: []string{"1", "2", "3", "4", "5"}}, nil)
			},
			wantStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp CaptionResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if len(resp.Captions) != 5 || resp.Captions[4] != "5" {
					t.Errorf("captions = %v", resp.Captions)
				}
			},
		},
		{
			name:       "method not allowed",
			method:     http.MethodGet,
			mockSetup:  func(m *mocks.MockCaptionService) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "invalid JSON body",
			method:     http.MethodPost,
			body:       "invalid json",
			mockSetup:  func(m *mocks.MockCaptionService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "missing field",
			method: http.MethodPost,
			body:   CaptionRequest{Keyword: "Batik"},
			mockSetup: func(m *mocks.MockCaptionService) {
				m.EXPECT().
					Generate(gomock.Any(), service.CaptionRequest{Keyword: "Batik"}).
					Return(service.CaptionResponse{}, &service.ValidationError{Field: "region", Message: "cannot be empty"})
			},
			wantStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp ErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if resp.Error != "Missing fields: region" {
					t.Errorf("error = %q", resp.Error)
				}
			},
		},
		{
			name:   "missing credential",
			method: http.MethodPost,
			body:   validReq,
			mockSetup: func(m *mocks.MockCaptionService) {
				m.EXPECT().
					Generate(gomock.Any(), validSvcReq).
					Return(service.CaptionResponse{}, fmt.Errorf("%w: %w", service.ErrConfiguration, &llm.ConfigurationError{Key: "GROQ_API_KEY"}))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "exhausted chain",
			method: http.MethodPost,
			body:   validReq,
			mockSetup: func(m *mocks.MockCaptionService) {
				m.EXPECT().
					Generate(gomock.Any(), validSvcReq).
					Return(service.CaptionResponse{}, fmt.Errorf("%w: %w", service.ErrExternalService, &llm.ExhaustedChainError{}))
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:   "unclassified error",
			method: http.MethodPost,
			body:   validReq,
			mockSetup: func(m *mocks.MockCaptionService) {
				m.EXPECT().
					Generate(gomock.Any(), validSvcReq).
					Return(service.CaptionResponse{}, errors.New("service error"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCaptionService := mocks.NewMockCaptionService(ctrl)
			tt.mockSetup(mockCaptionService)
			handler := NewCaptionHandler(mockCaptionService)

			req := httptest.NewRequest(tt.method, "/api/caption", encodeBody(t, tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}
