package chat_handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/kjoon418/MyChat/internal/dtos/chat_dto"
	app_error "github.com/kjoon418/MyChat/internal/errors"
	"github.com/kjoon418/MyChat/internal/handlers"
	chat_service "github.com/kjoon418/MyChat/internal/use-case/chat-case"
	"github.com/kjoon418/MyChat/state"
)

type ChatHandler struct {
	State    *state.AppState
	Validate *validator.Validate
	Service  chat_service.ChatServiceContract
}

func NewChatHandler(state *state.AppState) *ChatHandler {
	return &ChatHandler{
		State:    state,
		Validate: validator.New(),
		Service:  chat_service.NewChatService(state),
	}
}

func (h *ChatHandler) SendChat(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req chat_dto.SendChatRequest
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

	resp, appErr := h.Service.SendChat(r.Context(), memberID, roomID, req.Content)
	if appErr != nil {
		return appErr
	}

	handlers.WriteResponse(w, r, "chat sent successfully", *resp)
	return nil
}

func (h *ChatHandler) ReadChats(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	roomID, appErr := handlers.RoomIDParam(r)
	if appErr != nil {
		return appErr
	}

	memberID, appErr := handlers.MemberIDFromContext(r)
	if appErr != nil {
		return appErr
	}

	resp, appErr := h.Service.ReadChats(r.Context(), memberID, roomID)
	if appErr != nil {
		return appErr
	}

	handlers.WriteResponse(w, r, "chats fetched successfully", resp)
	return nil
}

func (h *ChatHandler) SearchChats(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	roomID, appErr := handlers.RoomIDParam(r)
	if appErr != nil {
		return appErr
	}

	memberID, appErr := handlers.MemberIDFromContext(r)
	if appErr != nil {
		return appErr
	}

	content := r.URL.Query().Get("content")

	resp, appErr := h.Service.SearchChats(r.Context(), memberID, roomID, content)
	if appErr != nil {
		return appErr
	}

	handlers.WriteResponse(w, r, "chats searched successfully", resp)
	return nil
}

func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	roomID, appErr := handlers.RoomIDParam(r)
	if appErr != nil {
		return appErr
	}

	chatID, err := strconv.ParseInt(chi.URLParam(r, "chatId"), 10, 64)
	if err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "invalid chat id", "chat-id")
	}

	memberID, appErr := handlers.MemberIDFromContext(r)
	if appErr != nil {
		return appErr
	}

	resp, appErr := h.Service.DeleteChat(r.Context(), memberID, roomID, chatID)
	if appErr != nil {
		return appErr
	}

	handlers.WriteResponse(w, r, "chat deleted successfully", *resp)
	return nil
}
