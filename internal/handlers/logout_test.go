package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-translator/internal/auth"
	"github.com/stretchr/testify/assert"
)

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockLogouter(ctrl)
	cookies := NewMockCookieClearer(ctrl)

	sid := uuid.New()
	svc.EXPECT().Logout(gomock.Any(), sid).Return(errors.New("redis down"))
	cookies.EXPECT().ClearCookie(gomock.Any())

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req = req.WithContext(auth.WithIdentity(req.Context(), auth.Identity{UserID: uuid.New(), SessionID: sid}))
	rec := httptest.NewRecorder()
	NewLogoutHandler(svc, cookies).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestLogoutHandler_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	cookies := NewMockCookieClearer(ctrl)
	cookies.EXPECT().ClearCookie(gomock.Any())

	rec := httptest.NewRecorder()
	NewLogoutHandler(NewMockLogouter(ctrl), cookies).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logout", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}
