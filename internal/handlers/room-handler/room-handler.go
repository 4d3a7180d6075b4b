package room_handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/kjoon418/MyChat/internal/dtos/room_dto"
	app_error "github.com/kjoon418/MyChat/internal/errors"
	"github.com/kjoon418/MyChat/internal/handlers"
	room_service "github.com/kjoon418/MyChat/internal/use-case/room-case"
	"github.com/kjoon418/MyChat/state"
)

type RoomHandler struct {
	State    *state.AppState
	Validate *validator.Validate
	Service  room_service.RoomServiceContract
}

func NewRoomHandler(state *state.AppState) *RoomHandler {
	return &RoomHandler{
		State:    state,
		Validate: validator.New(),
		Service:  room_service.NewRoomService(state),
	}
}

func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req room_dto.CreateRoomRequest
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", err), "validation")
	}

	memberID, appErr := handlers.MemberIDFromContext(r)
	if appErr != nil {
		return appErr
	}

	resp, appErr := h.Service.CreateRoom(r.Context(), memberID, req)
	if appErr != nil {
		return appErr
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	handlers.WriteResponse(w, r, "room created successfully", *resp)
	return nil
}

func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	memberID, appErr := handlers.MemberIDFromContext(r)
	if appErr != nil {
		return appErr
	}

	resp, appErr := h.Service.ListRooms(r.Context(), memberID)
	if appErr != nil {
		return appErr
	}

	handlers.WriteResponse(w, r, "rooms fetched successfully", resp)
	return nil
}

func (h *RoomHandler) SearchRooms(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	memberID, appErr := handlers.MemberIDFromContext(r)
	if appErr != nil {
		return appErr
	}

	name := r.URL.Query().Get("name")

	resp, appErr := h.Service.SearchRooms(r.Context(), memberID, name)
	if appErr != nil {
		return appErr
	}

	handlers.WriteResponse(w, r, "rooms searched successfully", resp)
	return nil
}

func (h *RoomHandler) InviteMembers(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req room_dto.InviteRequest
	defer r.Body.Close()

	roomID, appErr := handlers.RoomIDParam(r)
	if appErr != nil {
		return appErr
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", err), "validation")
	}

	memberID, appErr := handlers.MemberIDFromContext(r)
	if appErr != nil {
		return appErr
	}

	resp, appErr := h.Service.InviteMembers(r.Context(), memberID, roomID, req)
	if appErr != nil {
		return appErr
	}

	handlers.WriteResponse(w, r, "members invited successfully", *resp)
	return nil
}

func (h *RoomHandler) LeaveRoom(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	roomID, appErr := handlers.RoomIDParam(r)
	if appErr != nil {
		return appErr
	}

	memberID, appErr := handlers.MemberIDFromContext(r)
	if appErr != nil {
		return appErr
	}

	resp, appErr := h.Service.LeaveRoom(r.Context(), memberID, roomID)
	if appErr != nil {
		return appErr
	}

	handlers.WriteResponse(w, r, "room left successfully", *resp)
	return nil
}

func (h *RoomHandler) ModifyRoom(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req room_dto.ModifyRoomRequest
	defer r.Body.Close()

	roomID, appErr := handlers.RoomIDParam(r)
	if appErr != nil {
		return appErr
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", err), "validation")
	}

	memberID, appErr := handlers.MemberIDFromContext(r)
	if appErr != nil {
		return appErr
	}

	resp, appErr := h.Service.ModifyRoom(r.Context(), memberID, roomID, req)
	if appErr != nil {
		return appErr
	}

	handlers.WriteResponse(w, r, "room updated successfully", *resp)
	return nil
}

func (h *RoomHandler) ListRoomMembers(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	roomID, appErr := handlers.RoomIDParam(r)
	if appErr != nil {
		return appErr
	}

	memberID, appErr := handlers.MemberIDFromContext(r)
	if appErr != nil {
		return appErr
	}

	resp, appErr := h.Service.ListRoomMembers(r.Context(), memberID, roomID)
	if appErr != nil {
		return appErr
	}

	handlers.WriteResponse(w, r, "room members fetched successfully", resp)
	return nil
}
