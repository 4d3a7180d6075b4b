package room_service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kjoon418/MyChat/internal/dtos/room_dto"
	app_error "github.com/kjoon418/MyChat/internal/errors"
)

type RoomServiceContract interface {
	CreateRoom(ctx context.Context, memberID int64, req room_dto.CreateRoomRequest) (*room_dto.RoomInfoResponse, *app_error.AppError)
	InviteMembers(ctx context.Context, memberID int64, roomID uuid.UUID, req room_dto.InviteRequest) (*room_dto.RoomInfoResponse, *app_error.AppError)
	LeaveRoom(ctx context.Context, memberID int64, roomID uuid.UUID) (*room_dto.RoomInfoResponse, *app_error.AppError)
	ModifyRoom(ctx context.Context, memberID int64, roomID uuid.UUID, req room_dto.ModifyRoomRequest) (*room_dto.RoomInfoResponse, *app_error.AppError)
	ListRooms(ctx context.Context, memberID int64) ([]room_dto.RoomInfoResponse, *app_error.AppError)
	SearchRooms(ctx context.Context, memberID int64, name string) ([]room_dto.RoomInfoResponse, *app_error.AppError)
	ListRoomMembers(ctx context.Context, memberID int64, roomID uuid.UUID) ([]room_dto.MemberInfoResponse, *app_error.AppError)
}
