package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-translator/internal/models"
	"github.com/sbilibin2017/gw-translator/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockHistoryLister(ctrl)
	userID := uuid.New()
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	svc.EXPECT().List(gomock.Any(), userID, 0).Return([]models.ChatHistoryDB{
		{ID: 3, UserID: userID, Message: "hello", Translated: "bonjour", SourceLang: "en", TargetLang: "fr", CreatedAt: ts},
	}, nil)

	rec := httptest.NewRecorder()
	NewHistoryHandler(svc).ServeHTTP(rec, withUser(httptest.NewRequest(http.MethodGet, "/history", nil), userID))

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[[]map[string]any](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, float64(3), got[0]["id"])
	assert.Equal(t, "bonjour", got[0]["translated"])
	assert.Equal(t, "2024-05-01T10:00:00Z", got[0]["timestamp"])
	assert.Nil(t, got[0]["rating"])
	assert.NotContains(t, got[0], "user_id")
}

func TestClearHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockHistoryClearer(ctrl)
	userID := uuid.New()

	svc.EXPECT().Clear(gomock.Any(), userID).Return(nil)
	rec := httptest.NewRecorder()
	NewClearHistoryHandler(svc).ServeHTTP(rec, withUser(httptest.NewRequest(http.MethodPost, "/clear_history", nil), userID))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StatusResponse{Status: "ok"}, decodeBody[StatusResponse](t, rec))

	svc.EXPECT().Clear(gomock.Any(), userID).Return(errors.New("db down"))
	rec = httptest.NewRecorder()
	NewClearHistoryHandler(svc).ServeHTTP(rec, withUser(httptest.NewRequest(http.MethodPost, "/clear_chat", nil), userID))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRateHandler(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name         string
		body         any
		mockSetup    func(m *MockHistoryRater)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: RateRequest{HistoryID: 1, Rating: 5, Feedback: "great"},
			mockSetup: func(m *MockHistoryRater) {
				m.EXPECT().Rate(gomock.Any(), userID, int64(1), 5, "great").Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "ok",
		},
		{
			name: "foreign entry",
			body: RateRequest{HistoryID: 2, Rating: 3},
			mockSetup: func(m *MockHistoryRater) {
				m.EXPECT().Rate(gomock.Any(), userID, int64(2), 3, "").Return(services.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: "error",
		},
		{
			name:         "rating out of range",
			body:         RateRequest{HistoryID: 1, Rating: 7},
			mockSetup:    func(m *MockHistoryRater) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "error",
		},
		{
			name:         "missing history id",
			body:         map[string]any{"rating": 4},
			mockSetup:    func(m *MockHistoryRater) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockHistoryRater(ctrl)
			tt.mockSetup(svc)

			rec := httptest.NewRecorder()
			NewRateHandler(svc).ServeHTTP(rec, withUser(newJSONRequest(t, http.MethodPost, "/rate", tt.body), userID))

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedBody, decodeBody[StatusResponse](t, rec).Status)
		})
	}
}
