package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	app_error "github.com/kjoon418/MyChat/internal/errors"
	"github.com/kjoon418/MyChat/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapHandler_WritesErrorEnvelope(t *testing.T) {
	handler := WrapHandler(func(w http.ResponseWriter, r *http.Request) *app_error.AppError {
		return app_error.RoomNotFound()
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), app_error.KindRoomNotFound)
}

func TestWrapHandler_SilentOnSuccess(t *testing.T) {
	handler := WrapHandler(func(w http.ResponseWriter, r *http.Request) *app_error.AppError {
		WriteResponse(w, r, "ok", map[string]string{"hello": "world"})
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIdKey, "req-123"))

	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "req-123")
	assert.Contains(t, rec.Body.String(), "world")
}

func TestMemberIDFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := MemberIDFromContext(req)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusUnauthorized, err.Code)

	req = req.WithContext(context.WithValue(req.Context(), middleware.MemberIDKey, int64(7)))
	memberID, err := MemberIDFromContext(req)
	require.Nil(t, err)
	assert.Equal(t, int64(7), memberID)
}

func TestRoomIDParam(t *testing.T) {
	roomID := uuid.New()

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("roomId", roomID.String())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	parsed, err := RoomIDParam(req)
	require.Nil(t, err)
	assert.Equal(t, roomID, parsed)

	bad := chi.NewRouteContext()
	bad.URLParams.Add("roomId", "not-a-uuid")
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, bad))

	_, err = RoomIDParam(req)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Code)
}
