package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-translator/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler_JSON(t *testing.T) {
	tests := []struct {
		name         string
		body         any
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			body: RegisterRequest{Username: "alice", Password: "pw1"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "alice", "pw1").Return(nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "duplicate",
			body: RegisterRequest{Username: "alice", Password: "pw1"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "alice", "pw1").Return(services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "Username exists",
		},
		{
			name: "blank fields",
			body: RegisterRequest{},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "", "").Return(services.ErrInvalidInput)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Username and password are required",
		},
		{
			name:         "invalid json",
			body:         "{invalid",
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid request body",
		},
		{
			name: "internal error",
			body: RegisterRequest{Username: "bob", Password: "pw"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "bob", "pw").Return(errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockRegisterer(ctrl)
			tt.mockSetup(svc)

			rec := httptest.NewRecorder()
			NewRegisterHandler(svc).ServeHTTP(rec, newJSONRequest(t, http.MethodPost, "/register", tt.body))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeBody[ErrorResponse](t, rec).Error)
			} else {
				assert.Equal(t, "User registered successfully", decodeBody[RegisterResponse](t, rec).Message)
			}
		})
	}
}

func TestRegisterHandler_Form(t *testing.T) {
	form := url.Values{"username": {"alice"}, "password": {"pw1"}}

	t.Run("redirects to login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockRegisterer(ctrl)
		svc.EXPECT().Register(gomock.Any(), "alice", "pw1").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		NewRegisterHandler(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login?registered=1", rec.Header().Get("Location"))
	})

	t.Run("duplicate renders form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockRegisterer(ctrl)
		svc.EXPECT().Register(gomock.Any(), "alice", "pw1").Return(services.ErrUserAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		NewRegisterHandler(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "Username exists")
	})
}
