package chat_repo

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kjoon418/MyChat/internal/entity"
	app_error "github.com/kjoon418/MyChat/internal/errors"
	"github.com/kjoon418/MyChat/state"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ChatRepo struct {
	AppState *state.AppState
}

func NewChatRepo(appState *state.AppState) ChatRepoContract {
	return &ChatRepo{
		AppState: appState,
	}
}

func (r *ChatRepo) CreateRoom(ctx context.Context, room *entity.ChatRoom) *app_error.AppError {
	if room.ID == uuid.Nil {
		room.ID = uuid.New()
	}
	if room.CreatedAt.IsZero() {
		room.CreatedAt = time.Now()
	}

	if err := r.AppState.DB.WithContext(ctx).Create(room).Error; err != nil {
		log.Error().Err(err).Msg("failed to create chat room")
		return app_error.NewAppError(http.StatusInternalServerError, "failed to create chat room", "db-error")
	}
	return nil
}

func (r *ChatRepo) FindRoomByID(ctx context.Context, roomID uuid.UUID) (*entity.ChatRoom, *app_error.AppError) {
	var room entity.ChatRoom
	if err := r.AppState.DB.WithContext(ctx).Where("id = ?", roomID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.RoomNotFound()
		}
		log.Error().Err(err).Msg("failed to fetch chat room")
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to fetch chat room", "db-error")
	}
	return &room, nil
}

func (r *ChatRepo) CreateMembership(ctx context.Context, memberID int64, roomID uuid.UUID, at time.Time) (*entity.Membership, *app_error.AppError) {
	membership := &entity.Membership{
		MemberID:     memberID,
		RoomID:       roomID,
		LastViewedAt: at,
	}

	if err := r.AppState.DB.WithContext(ctx).Create(membership).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, app_error.DuplicateMembership()
		}
		log.Error().Err(err).Msg("failed to create membership")
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to create membership", "db-error")
	}
	return membership, nil
}

func (r *ChatRepo) FindMembership(ctx context.Context, memberID int64, roomID uuid.UUID) (*entity.Membership, *app_error.AppError) {
	var membership entity.Membership
	err := r.AppState.DB.WithContext(ctx).
		Where("member_id = ? AND room_id = ?", memberID, roomID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotAMember()
		}
		log.Error().Err(err).Msg("failed to fetch membership")
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to fetch membership", "db-error")
	}
	return &membership, nil
}

// RemoveMembership runs the single automatic-cleanup rule of the
// subsystem: a room whose last membership is removed is deleted in the
// same transaction, chats included.
func (r *ChatRepo) RemoveMembership(ctx context.Context, membership *entity.Membership) (bool, *app_error.AppError) {
	roomDeleted := false

	err := r.AppState.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.Membership{}, membership.ID).Error; err != nil {
			return err
		}

		var remaining int64
		if err := tx.Model(&entity.Membership{}).Where("room_id = ?", membership.RoomID).Count(&remaining).Error; err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}

		if err := tx.Where("room_id = ?", membership.RoomID).Delete(&entity.Chat{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entity.ChatRoom{}, "id = ?", membership.RoomID).Error; err != nil {
			return err
		}
		roomDeleted = true
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to remove membership")
		return false, app_error.NewAppError(http.StatusInternalServerError, "failed to remove membership", "db-error")
	}

	return roomDeleted, nil
}

// UpdateAlias only touches the fields actually supplied; blank values
// mean "no change requested", not "clear the field".
func (r *ChatRepo) UpdateAlias(ctx context.Context, membership *entity.Membership, aliasName, aliasProfileURL *string) *app_error.AppError {
	updates := map[string]any{}
	if aliasName != nil && strings.TrimSpace(*aliasName) != "" {
		updates["alias_name"] = *aliasName
		membership.AliasName = aliasName
	}
	if aliasProfileURL != nil && strings.TrimSpace(*aliasProfileURL) != "" {
		updates["alias_profile_url"] = *aliasProfileURL
		membership.AliasProfileURL = aliasProfileURL
	}
	if len(updates) == 0 {
		return nil
	}

	if err := r.AppState.DB.WithContext(ctx).Model(&entity.Membership{}).Where("id = ?", membership.ID).Updates(updates).Error; err != nil {
		log.Error().Err(err).Msg("failed to update membership alias")
		return app_error.NewAppError(http.StatusInternalServerError, "failed to update membership alias", "db-error")
	}
	return nil
}

func (r *ChatRepo) TouchView(ctx context.Context, membership *entity.Membership, at time.Time) *app_error.AppError {
	if err := r.AppState.DB.WithContext(ctx).Model(&entity.Membership{}).
		Where("id = ?", membership.ID).
		Update("last_viewed_at", at).Error; err != nil {
		log.Error().Err(err).Msg("failed to update last viewed time")
		return app_error.NewAppError(http.StatusInternalServerError, "failed to update last viewed time", "db-error")
	}
	membership.LastViewedAt = at
	return nil
}

func (r *ChatRepo) ListMembershipsByMember(ctx context.Context, memberID int64) ([]entity.Membership, *app_error.AppError) {
	var memberships []entity.Membership
	if err := r.AppState.DB.WithContext(ctx).Where("member_id = ?", memberID).Find(&memberships).Error; err != nil {
		log.Error().Err(err).Msg("failed to list memberships by member")
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to list memberships", "db-error")
	}
	return memberships, nil
}

func (r *ChatRepo) ListMembershipsByRoom(ctx context.Context, roomID uuid.UUID) ([]entity.Membership, *app_error.AppError) {
	var memberships []entity.Membership
	if err := r.AppState.DB.WithContext(ctx).Where("room_id = ?", roomID).Find(&memberships).Error; err != nil {
		log.Error().Err(err).Msg("failed to list memberships by room")
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to list memberships", "db-error")
	}
	return memberships, nil
}

func (r *ChatRepo) ListRoomMembers(ctx context.Context, roomID uuid.UUID) ([]entity.Member, *app_error.AppError) {
	var members []entity.Member
	err := r.AppState.DB.WithContext(ctx).
		Joins("JOIN memberships ON memberships.member_id = members.id").
		Where("memberships.room_id = ?", roomID).
		Find(&members).Error
	if err != nil {
		log.Error().Err(err).Msg("failed to list room members")
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to list room members", "db-error")
	}
	return members, nil
}

func (r *ChatRepo) ListCoMembers(ctx context.Context, roomID uuid.UUID, excludeMemberID int64) ([]entity.Member, *app_error.AppError) {
	var members []entity.Member
	err := r.AppState.DB.WithContext(ctx).
		Joins("JOIN memberships ON memberships.member_id = members.id").
		Where("memberships.room_id = ? AND members.id <> ?", roomID, excludeMemberID).
		Find(&members).Error
	if err != nil {
		log.Error().Err(err).Msg("failed to list co-members")
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to list co-members", "db-error")
	}
	return members, nil
}

func (r *ChatRepo) CreateChat(ctx context.Context, chat *entity.Chat) *app_error.AppError {
	if chat.CreatedAt.IsZero() {
		chat.CreatedAt = time.Now()
	}
	if err := r.AppState.DB.WithContext(ctx).Create(chat).Error; err != nil {
		log.Error().Err(err).Msg("failed to create chat")
		return app_error.NewAppError(http.StatusInternalServerError, "failed to create chat", "db-error")
	}
	return nil
}

// FindChatByAuthor looks the chat up within the author's own set, so a
// chat someone else wrote reads as absent.
func (r *ChatRepo) FindChatByAuthor(ctx context.Context, authorID, chatID int64) (*entity.Chat, *app_error.AppError) {
	var chat entity.Chat
	err := r.AppState.DB.WithContext(ctx).
		Where("id = ? AND author_id = ?", chatID, authorID).
		First(&chat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.ChatNotFound()
		}
		log.Error().Err(err).Msg("failed to fetch chat")
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to fetch chat", "db-error")
	}
	return &chat, nil
}

func (r *ChatRepo) RemoveChat(ctx context.Context, chatID int64) *app_error.AppError {
	if err := r.AppState.DB.WithContext(ctx).Delete(&entity.Chat{}, chatID).Error; err != nil {
		log.Error().Err(err).Msg("failed to delete chat")
		return app_error.NewAppError(http.StatusInternalServerError, "failed to delete chat", "db-error")
	}
	return nil
}

func (r *ChatRepo) ReplaceChatContent(ctx context.Context, chatID int64, content string) *app_error.AppError {
	if err := r.AppState.DB.WithContext(ctx).Model(&entity.Chat{}).
		Where("id = ?", chatID).
		Update("content", content).Error; err != nil {
		log.Error().Err(err).Msg("failed to replace chat content")
		return app_error.NewAppError(http.StatusInternalServerError, "failed to replace chat content", "db-error")
	}
	return nil
}

// ListChats returns the room's chats newest-first; the id tiebreak keeps
// the ordering stable for chats created in the same instant.
func (r *ChatRepo) ListChats(ctx context.Context, roomID uuid.UUID) ([]entity.Chat, *app_error.AppError) {
	var chats []entity.Chat
	err := r.AppState.DB.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&chats).Error
	if err != nil {
		log.Error().Err(err).Msg("failed to list chats")
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to list chats", "db-error")
	}
	return chats, nil
}

// SearchChats filters by content substring in the room's natural
// (insertion) order; a blank filter returns everything.
func (r *ChatRepo) SearchChats(ctx context.Context, roomID uuid.UUID, content string) ([]entity.Chat, *app_error.AppError) {
	query := r.AppState.DB.WithContext(ctx).Where("room_id = ?", roomID)
	if strings.TrimSpace(content) != "" {
		query = query.Where("content LIKE ?", "%"+content+"%")
	}

	var chats []entity.Chat
	if err := query.Order("id ASC").Find(&chats).Error; err != nil {
		log.Error().Err(err).Msg("failed to search chats")
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to search chats", "db-error")
	}
	return chats, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
