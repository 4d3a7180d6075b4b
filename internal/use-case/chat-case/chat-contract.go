package chat_service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kjoon418/MyChat/internal/dtos/chat_dto"
	app_error "github.com/kjoon418/MyChat/internal/errors"
)

type ChatServiceContract interface {
	SendChat(ctx context.Context, memberID int64, roomID uuid.UUID, content string) (*chat_dto.ChatInfoResponse, *app_error.AppError)
	DeleteChat(ctx context.Context, memberID int64, roomID uuid.UUID, chatID int64) (*chat_dto.ChatInfoResponse, *app_error.AppError)
	ReadChats(ctx context.Context, memberID int64, roomID uuid.UUID) ([]chat_dto.ChatInfoResponse, *app_error.AppError)
	SearchChats(ctx context.Context, memberID int64, roomID uuid.UUID, content string) ([]chat_dto.ChatInfoResponse, *app_error.AppError)
}
