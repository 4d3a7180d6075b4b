package member_repo

import (
	"context"

	"github.com/kjoon418/MyChat/internal/entity"
	app_error "github.com/kjoon418/MyChat/internal/errors"
)

// MemberRepoContract is the chat core's window onto the identity and
// blocklist subsystems: directory lookups plus the two block predicates.
type MemberRepoContract interface {
	FindByEmail(ctx context.Context, email string) (*entity.Member, *app_error.AppError)
	FindByID(ctx context.Context, memberID int64) (*entity.Member, *app_error.AppError)

	// HasBlocked reports whether memberID has put targetMemberID on their
	// blacklist; IsBlockedBy is the same relation seen from the other side.
	HasBlocked(ctx context.Context, memberID, targetMemberID int64) (bool, *app_error.AppError)
	IsBlockedBy(ctx context.Context, memberID, byMemberID int64) (bool, *app_error.AppError)

	SaveMember(ctx context.Context, member *entity.Member) *app_error.AppError
	AddBlacklist(ctx context.Context, memberID, targetMemberID int64) *app_error.AppError
}
