package chat_service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kjoon418/MyChat/internal/entity"
	app_error "github.com/kjoon418/MyChat/internal/errors"
	chat_repo "github.com/kjoon418/MyChat/internal/repo/chat"
	"github.com/kjoon418/MyChat/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type chatFixture struct {
	service ChatServiceContract
	repo    chat_repo.ChatRepoContract
	room    *entity.ChatRoom
}

// newChatFixture builds a room with members 1 and 2 already joined.
func newChatFixture(t *testing.T) *chatFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, state.Migrate(db))

	appState := &state.AppState{Ctx: context.Background(), DB: db}
	repo := chat_repo.NewChatRepo(appState)

	ctx := context.Background()
	room := &entity.ChatRoom{Name: "test room"}
	require.Nil(t, repo.CreateRoom(ctx, room))

	joinedAt := time.Now().Add(-time.Hour)
	for _, memberID := range []int64{1, 2} {
		_, err := repo.CreateMembership(ctx, memberID, room.ID, joinedAt)
		require.Nil(t, err)
	}

	return &chatFixture{
		service: NewChatService(appState),
		repo:    repo,
		room:    room,
	}
}

func TestSendChat_SenderIsNeverUnread(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	view, err := f.service.SendChat(ctx, 1, f.room.ID, "hello")
	require.Nil(t, err)
	assert.Equal(t, "hello", view.Content)
	assert.Equal(t, string(entity.ChatKindUser), view.Kind)

	// Member 2 has not viewed the room since the chat landed.
	assert.Equal(t, 1, view.UnreadCount)
}

func TestSendChat_RequiresMembership(t *testing.T) {
	f := newChatFixture(t)

	_, err := f.service.SendChat(context.Background(), 99, f.room.ID, "hello")

	require.NotNil(t, err)
	assert.Equal(t, app_error.KindNotAMember, err.Field)
}

func TestSendChat_UnknownRoom(t *testing.T) {
	f := newChatFixture(t)

	_, err := f.service.SendChat(context.Background(), 1, uuid.New(), "hello")

	require.NotNil(t, err)
	assert.Equal(t, app_error.KindRoomNotFound, err.Field)
}

func TestReadChats_UnknownRoom(t *testing.T) {
	f := newChatFixture(t)

	_, err := f.service.ReadChats(context.Background(), 1, uuid.New())

	require.NotNil(t, err)
	assert.Equal(t, app_error.KindRoomNotFound, err.Field)
}

func TestReadChats_DrainsUnreadCounter(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	_, err := f.service.SendChat(ctx, 1, f.room.ID, "hello")
	require.Nil(t, err)

	// Member 2 reads the room, so the chat ends up viewed by everyone.
	chats, err := f.service.ReadChats(ctx, 2, f.room.ID)
	require.Nil(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, 0, chats[0].UnreadCount)

	// Reading again changes nothing.
	chats, err = f.service.ReadChats(ctx, 2, f.room.ID)
	require.Nil(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, 0, chats[0].UnreadCount)
}

func TestReadChats_NewestFirst(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	for _, content := range []string{"first", "second", "third"} {
		_, err := f.service.SendChat(ctx, 1, f.room.ID, content)
		require.Nil(t, err)
	}

	chats, err := f.service.ReadChats(ctx, 2, f.room.ID)
	require.Nil(t, err)
	require.Len(t, chats, 3)
	assert.Equal(t, "third", chats[0].Content)
	assert.Equal(t, "first", chats[2].Content)
}

func TestSearchChats_FiltersByContent(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	for _, content := range []string{"lunch plans", "standup notes", "lunch today?"} {
		_, err := f.service.SendChat(ctx, 1, f.room.ID, content)
		require.Nil(t, err)
	}

	chats, err := f.service.SearchChats(ctx, 2, f.room.ID, "lunch")
	require.Nil(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, "lunch plans", chats[0].Content)
	assert.Equal(t, "lunch today?", chats[1].Content)
}

func TestDeleteChat_FreshChatIsRemoved(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	sent, err := f.service.SendChat(ctx, 1, f.room.ID, "oops")
	require.Nil(t, err)

	_, err = f.service.DeleteChat(ctx, 1, f.room.ID, sent.ChatID)
	require.Nil(t, err)

	chats, listErr := f.repo.ListChats(ctx, f.room.ID)
	require.Nil(t, listErr)
	assert.Empty(t, chats)
}

func TestDeleteChat_OldChatBecomesPlaceholder(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	authorID := int64(1)
	chat := &entity.Chat{
		RoomID:    f.room.ID,
		AuthorID:  &authorID,
		Content:   "old news",
		Kind:      entity.ChatKindUser,
		CreatedAt: time.Now().Add(-6 * time.Minute),
	}
	require.Nil(t, f.repo.CreateChat(ctx, chat))

	view, err := f.service.DeleteChat(ctx, 1, f.room.ID, chat.ID)
	require.Nil(t, err)
	assert.Equal(t, "deleted message", view.Content)

	chats, listErr := f.repo.ListChats(ctx, f.room.ID)
	require.Nil(t, listErr)
	require.Len(t, chats, 1)
	assert.Equal(t, "deleted message", chats[0].Content)
}

func TestDeleteChat_OnlyAuthorMayDelete(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	sent, err := f.service.SendChat(ctx, 1, f.room.ID, "mine")
	require.Nil(t, err)

	_, err = f.service.DeleteChat(ctx, 2, f.room.ID, sent.ChatID)

	require.NotNil(t, err)
	assert.Equal(t, app_error.KindChatNotFound, err.Field)
}

func TestDeleteChat_RoomMismatch(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	otherRoom := &entity.ChatRoom{Name: "other room"}
	require.Nil(t, f.repo.CreateRoom(ctx, otherRoom))
	_, err := f.repo.CreateMembership(ctx, 1, otherRoom.ID, time.Now())
	require.Nil(t, err)

	sent, sendErr := f.service.SendChat(ctx, 1, f.room.ID, "wrong door")
	require.Nil(t, sendErr)

	_, appErr := f.service.DeleteChat(ctx, 1, otherRoom.ID, sent.ChatID)

	require.NotNil(t, appErr)
	assert.Equal(t, app_error.KindRoomChatMismatch, appErr.Field)
}

func TestUnreadCount_StrictlyBeforeComparison(t *testing.T) {
	now := time.Now()
	chat := entity.Chat{CreatedAt: now}

	memberships := []entity.Membership{
		{LastViewedAt: now.Add(-time.Minute)}, // behind, counts
		{LastViewedAt: now},                   // same instant, does not count
		{LastViewedAt: now.Add(time.Minute)},  // ahead, does not count
	}

	assert.Equal(t, 1, unreadCount(chat, memberships))
}
