package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/kjoon418/MyChat/internal/dtos"
	app_error "github.com/kjoon418/MyChat/internal/errors"
	"github.com/kjoon418/MyChat/internal/middleware"
	"github.com/rs/zerolog/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

type HandlerFunc func(w http.ResponseWriter, r *http.Request) *app_error.AppError

func WrapHandler(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			log.Error().Err(err).Msg(fmt.Sprintf("error occur, request id: %s", r.Header.Get("X-Request-ID")))
			writeJSON(w, err.Code, map[string]any{
				"message": "Error occur",
				"errors": map[string]any{
					"code":    err.Code,
					"field":   err.Field,
					"message": err.Message,
				},
				"data":       nil,
				"request_id": r.Header.Get("X-Request-ID"),
			})
		}
	}
}

func CreateResponse[T any](message string, data T, requestId string) dtos.Response[T] {
	return dtos.Response[T]{
		Message:   message,
		Data:      data,
		RequestID: requestId,
	}
}

// WriteResponse wraps the payload in the standard envelope together
// with the request id set by the request-id middleware.
func WriteResponse[T any](w http.ResponseWriter, r *http.Request, message string, data T) {
	reqID, ok := r.Context().Value(middleware.RequestIdKey).(string)
	if !ok {
		reqID = "unknown"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CreateResponse(message, data, reqID))
}

func MemberIDFromContext(r *http.Request) (int64, *app_error.AppError) {
	memberID, ok := r.Context().Value(middleware.MemberIDKey).(int64)
	if !ok {
		return 0, app_error.NewAppError(http.StatusUnauthorized, "member id is not found in context", "context")
	}
	return memberID, nil
}

func RoomIDParam(r *http.Request) (uuid.UUID, *app_error.AppError) {
	roomID, err := uuid.Parse(chi.URLParam(r, "roomId"))
	if err != nil {
		return uuid.Nil, app_error.NewAppError(http.StatusBadRequest, "invalid room id", "room-id")
	}
	return roomID, nil
}
