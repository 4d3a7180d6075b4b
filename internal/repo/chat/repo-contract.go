package chat_repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kjoon418/MyChat/internal/entity"
	app_error "github.com/kjoon418/MyChat/internal/errors"
)

// ChatRepoContract is the persistence boundary for chat rooms,
// memberships and chats. All precondition failures surface as
// *app_error.AppError with a kind field; storage failures come back as
// generic internal errors.
type ChatRepoContract interface {
	CreateRoom(ctx context.Context, room *entity.ChatRoom) *app_error.AppError
	FindRoomByID(ctx context.Context, roomID uuid.UUID) (*entity.ChatRoom, *app_error.AppError)

	CreateMembership(ctx context.Context, memberID int64, roomID uuid.UUID, at time.Time) (*entity.Membership, *app_error.AppError)
	FindMembership(ctx context.Context, memberID int64, roomID uuid.UUID) (*entity.Membership, *app_error.AppError)
	// RemoveMembership deletes the membership and, when it was the room's
	// last one, the room together with every chat in it. Reports whether
	// the room was deleted.
	RemoveMembership(ctx context.Context, membership *entity.Membership) (bool, *app_error.AppError)
	UpdateAlias(ctx context.Context, membership *entity.Membership, aliasName, aliasProfileURL *string) *app_error.AppError
	TouchView(ctx context.Context, membership *entity.Membership, at time.Time) *app_error.AppError

	ListMembershipsByMember(ctx context.Context, memberID int64) ([]entity.Membership, *app_error.AppError)
	ListMembershipsByRoom(ctx context.Context, roomID uuid.UUID) ([]entity.Membership, *app_error.AppError)
	ListRoomMembers(ctx context.Context, roomID uuid.UUID) ([]entity.Member, *app_error.AppError)
	ListCoMembers(ctx context.Context, roomID uuid.UUID, excludeMemberID int64) ([]entity.Member, *app_error.AppError)

	CreateChat(ctx context.Context, chat *entity.Chat) *app_error.AppError
	FindChatByAuthor(ctx context.Context, authorID, chatID int64) (*entity.Chat, *app_error.AppError)
	RemoveChat(ctx context.Context, chatID int64) *app_error.AppError
	ReplaceChatContent(ctx context.Context, chatID int64, content string) *app_error.AppError
	ListChats(ctx context.Context, roomID uuid.UUID) ([]entity.Chat, *app_error.AppError)
	SearchChats(ctx context.Context, roomID uuid.UUID, content string) ([]entity.Chat, *app_error.AppError)
}
