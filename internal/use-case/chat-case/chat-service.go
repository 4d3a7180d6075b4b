package chat_service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kjoon418/MyChat/internal/dtos/chat_dto"
	"github.com/kjoon418/MyChat/internal/entity"
	app_error "github.com/kjoon418/MyChat/internal/errors"
	chat_repo "github.com/kjoon418/MyChat/internal/repo/chat"
	"github.com/kjoon418/MyChat/state"
)

const (
	// Chats older than the grace window are only soft-deleted: the row
	// stays so the conversation keeps its shape for members who already
	// read or quoted it.
	deleteGraceWindow = 5 * time.Minute

	deletedChatPlaceholder = "deleted message"
)

type ChatService struct {
	AppState *state.AppState
	ChatRepo chat_repo.ChatRepoContract
}

func NewChatService(appState *state.AppState) ChatServiceContract {
	return &ChatService{
		AppState: appState,
		ChatRepo: chat_repo.NewChatRepo(appState),
	}
}

func (c *ChatService) SendChat(ctx context.Context, memberID int64, roomID uuid.UUID, content string) (*chat_dto.ChatInfoResponse, *app_error.AppError) {
	room, err := c.ChatRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	membership, err := c.ChatRepo.FindMembership(ctx, memberID, roomID)
	if err != nil {
		return nil, err
	}

	// Sending counts as having seen everything up to this instant. A
	// single timestamp for both the view mark and the chat keeps the
	// sender out of their own unread counter.
	now := time.Now()
	if err := c.ChatRepo.TouchView(ctx, membership, now); err != nil {
		return nil, err
	}

	chat := &entity.Chat{
		RoomID:    room.ID,
		AuthorID:  &memberID,
		Content:   content,
		Kind:      entity.ChatKindUser,
		CreatedAt: now,
	}
	if err := c.ChatRepo.CreateChat(ctx, chat); err != nil {
		return nil, err
	}

	memberships, err := c.ChatRepo.ListMembershipsByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	return chatView(*chat, memberships), nil
}

func (c *ChatService) DeleteChat(ctx context.Context, memberID int64, roomID uuid.UUID, chatID int64) (*chat_dto.ChatInfoResponse, *app_error.AppError) {
	chat, err := c.ChatRepo.FindChatByAuthor(ctx, memberID, chatID)
	if err != nil {
		return nil, err
	}
	room, err := c.ChatRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if chat.RoomID != room.ID {
		return nil, app_error.RoomChatMismatch()
	}

	if chat.CreatedAt.Before(time.Now().Add(-deleteGraceWindow)) {
		if err := c.ChatRepo.ReplaceChatContent(ctx, chat.ID, deletedChatPlaceholder); err != nil {
			return nil, err
		}
		chat.Content = deletedChatPlaceholder
	} else {
		if err := c.ChatRepo.RemoveChat(ctx, chat.ID); err != nil {
			return nil, err
		}
	}

	memberships, err := c.ChatRepo.ListMembershipsByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	return chatView(*chat, memberships), nil
}

func (c *ChatService) ReadChats(ctx context.Context, memberID int64, roomID uuid.UUID) ([]chat_dto.ChatInfoResponse, *app_error.AppError) {
	room, err := c.ChatRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	membership, err := c.ChatRepo.FindMembership(ctx, memberID, roomID)
	if err != nil {
		return nil, err
	}

	if err := c.ChatRepo.TouchView(ctx, membership, time.Now()); err != nil {
		return nil, err
	}

	chats, err := c.ChatRepo.ListChats(ctx, room.ID)
	if err != nil {
		return nil, err
	}

	return c.annotate(ctx, roomID, chats)
}

func (c *ChatService) SearchChats(ctx context.Context, memberID int64, roomID uuid.UUID, content string) ([]chat_dto.ChatInfoResponse, *app_error.AppError) {
	room, err := c.ChatRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	membership, err := c.ChatRepo.FindMembership(ctx, memberID, roomID)
	if err != nil {
		return nil, err
	}

	if err := c.ChatRepo.TouchView(ctx, membership, time.Now()); err != nil {
		return nil, err
	}

	chats, err := c.ChatRepo.SearchChats(ctx, room.ID, content)
	if err != nil {
		return nil, err
	}

	return c.annotate(ctx, roomID, chats)
}

func (c *ChatService) annotate(ctx context.Context, roomID uuid.UUID, chats []entity.Chat) ([]chat_dto.ChatInfoResponse, *app_error.AppError) {
	memberships, err := c.ChatRepo.ListMembershipsByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	views := make([]chat_dto.ChatInfoResponse, 0, len(chats))
	for _, chat := range chats {
		views = append(views, *chatView(chat, memberships))
	}
	return views, nil
}

// unreadCount is recomputed from the room's current memberships on
// every read rather than cached; a membership counts while its last
// view is strictly earlier than the chat.
func unreadCount(chat entity.Chat, memberships []entity.Membership) int {
	count := 0
	for _, membership := range memberships {
		if membership.LastViewedAt.Before(chat.CreatedAt) {
			count++
		}
	}
	return count
}

func chatView(chat entity.Chat, memberships []entity.Membership) *chat_dto.ChatInfoResponse {
	return &chat_dto.ChatInfoResponse{
		ChatID:      chat.ID,
		Content:     chat.Content,
		Kind:        string(chat.Kind),
		CreatedAt:   chat.CreatedAt,
		UnreadCount: unreadCount(chat, memberships),
	}
}
