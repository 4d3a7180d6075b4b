package member_repo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kjoon418/MyChat/internal/entity"
	app_error "github.com/kjoon418/MyChat/internal/errors"
	"github.com/kjoon418/MyChat/internal/utils"
	"github.com/kjoon418/MyChat/state"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const memberCacheTTL = 5 * time.Minute

type MemberRepo struct {
	AppState *state.AppState
}

func NewMemberRepo(appState *state.AppState) MemberRepoContract {
	return &MemberRepo{
		AppState: appState,
	}
}

func (r *MemberRepo) FindByEmail(ctx context.Context, email string) (*entity.Member, *app_error.AppError) {
	cacheKey := fmt.Sprintf("member:email:%s", email)
	if cached := r.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	var member entity.Member
	if err := r.AppState.DB.WithContext(ctx).Where("email = ?", email).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.MemberNotFound(email)
		}
		log.Error().Err(err).Msg("failed to fetch member by email")
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to fetch member", "db-error")
	}

	r.toCache(ctx, cacheKey, &member)
	return &member, nil
}

func (r *MemberRepo) FindByID(ctx context.Context, memberID int64) (*entity.Member, *app_error.AppError) {
	cacheKey := fmt.Sprintf("member:id:%d", memberID)
	if cached := r.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	var member entity.Member
	if err := r.AppState.DB.WithContext(ctx).Where("id = ?", memberID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NewAppError(http.StatusNotFound, "member not found", app_error.KindMemberNotFound)
		}
		log.Error().Err(err).Msg("failed to fetch member by id")
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to fetch member", "db-error")
	}

	r.toCache(ctx, cacheKey, &member)
	return &member, nil
}

func (r *MemberRepo) HasBlocked(ctx context.Context, memberID, targetMemberID int64) (bool, *app_error.AppError) {
	var count int64
	err := r.AppState.DB.WithContext(ctx).Model(&entity.Blacklist{}).
		Where("member_id = ? AND target_member_id = ?", memberID, targetMemberID).
		Count(&count).Error
	if err != nil {
		log.Error().Err(err).Msg("failed to query blacklist")
		return false, app_error.NewAppError(http.StatusInternalServerError, "failed to query blacklist", "db-error")
	}
	return count > 0, nil
}

func (r *MemberRepo) IsBlockedBy(ctx context.Context, memberID, byMemberID int64) (bool, *app_error.AppError) {
	return r.HasBlocked(ctx, byMemberID, memberID)
}

func (r *MemberRepo) SaveMember(ctx context.Context, member *entity.Member) *app_error.AppError {
	if err := r.AppState.DB.WithContext(ctx).Create(member).Error; err != nil {
		log.Error().Err(err).Msg("failed to save member")
		return app_error.NewAppError(http.StatusInternalServerError, "failed to save member", "db-error")
	}
	return nil
}

func (r *MemberRepo) AddBlacklist(ctx context.Context, memberID, targetMemberID int64) *app_error.AppError {
	blacklist := &entity.Blacklist{MemberID: memberID, TargetMemberID: targetMemberID}
	if err := r.AppState.DB.WithContext(ctx).Create(blacklist).Error; err != nil {
		log.Error().Err(err).Msg("failed to save blacklist entry")
		return app_error.NewAppError(http.StatusInternalServerError, "failed to save blacklist entry", "db-error")
	}
	return nil
}

// Directory lookups are hot on every invitation resolution, so they go
// through a short-lived redis cache. Cache misses and cache errors both
// fall through to the database.
func (r *MemberRepo) fromCache(ctx context.Context, cacheKey string) *entity.Member {
	if r.AppState.Redis == nil {
		return nil
	}
	member, err := utils.GetCacheData[entity.Member](ctx, r.AppState.Redis, cacheKey)
	if err != nil {
		log.Warn().Msg("member cache read failed, falling back to database")
		return nil
	}
	return member
}

func (r *MemberRepo) toCache(ctx context.Context, cacheKey string, member *entity.Member) {
	if r.AppState.Redis == nil {
		return
	}
	if err := utils.SetCacheData(ctx, r.AppState.Redis, cacheKey, member, memberCacheTTL); err != nil {
		log.Warn().Err(err).Msg("member cache write failed")
	}
}
