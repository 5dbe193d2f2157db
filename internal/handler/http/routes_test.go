package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/notekeeper-app/notekeeper/models"
)

// TestRoutes_ProtectedRequireAuth verifies that every authenticated route
// rejects requests without an Authorization header.
func TestRoutes_ProtectedRequireAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newTestHandler(t, ctrl)
	router := h.Init()

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/auth/me"},
		{http.MethodPut, "/auth/attributes"},
		{http.MethodPost, "/auth/attributes/verify"},
		{http.MethodGet, "/notes"},
		{http.MethodPost, "/notes"},
		{http.MethodDelete, "/notes"},
		{http.MethodGet, "/notes/some-id"},
		{http.MethodPut, "/notes/some-id"},
		{http.MethodDelete, "/notes/some-id"},
		{http.MethodPost, "/attachments"},
		{http.MethodGet, "/attachments/url"},
	}

	for _, route := range protected {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

// TestRoutes_PublicAuthEndpointsReachable verifies that the unauthenticated
// auth endpoints are routed without a token.
func TestRoutes_PublicAuthEndpointsReachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newTestHandler(t, ctrl)
	router := h.Init()

	public := []string{"/auth/signup", "/auth/login", "/auth/forgot", "/auth/forgot/confirm"}

	for _, path := range public {
		t.Run(path, func(t *testing.T) {
			// An empty body fails JSON decoding with 400, which proves the
			// request reached the handler instead of an auth rejection.
			req := httptest.NewRequest(http.MethodPost, path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

// TestRoutes_FullRequestWithToken drives a request through the whole stack:
// trace ID, logging, auth middleware, and the notes handler.
func TestRoutes_FullRequestWithToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, notes, _ := newTestHandler(t, ctrl)
	router := h.Init()

	auth.EXPECT().ParseToken(gomock.Any(), "valid.jwt.token").Return(models.Token{UserID: 7}, nil)
	notes.EXPECT().List(gomock.Any(), int64(7)).Return([]models.Note{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}
