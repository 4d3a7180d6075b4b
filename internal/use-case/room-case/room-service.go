package room_service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kjoon418/MyChat/internal/dtos/room_dto"
	"github.com/kjoon418/MyChat/internal/entity"
	app_error "github.com/kjoon418/MyChat/internal/errors"
	chat_repo "github.com/kjoon418/MyChat/internal/repo/chat"
	member_repo "github.com/kjoon418/MyChat/internal/repo/member"
	"github.com/kjoon418/MyChat/state"
)

type RoomService struct {
	AppState   *state.AppState
	ChatRepo   chat_repo.ChatRepoContract
	MemberRepo member_repo.MemberRepoContract
}

func NewRoomService(appState *state.AppState) RoomServiceContract {
	return &RoomService{
		AppState:   appState,
		ChatRepo:   chat_repo.NewChatRepo(appState),
		MemberRepo: member_repo.NewMemberRepo(appState),
	}
}

func (s *RoomService) CreateRoom(ctx context.Context, memberID int64, req room_dto.CreateRoomRequest) (*room_dto.RoomInfoResponse, *app_error.AppError) {
	if len(req.Friends) == 0 {
		return nil, app_error.EmptyRoomCreation()
	}

	requester, err := s.MemberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	// Resolve and vet every invitee before touching the store, so a
	// failed precondition leaves nothing behind.
	members := []entity.Member{*requester}
	for _, friend := range req.Friends {
		invitee, err := s.MemberRepo.FindByEmail(ctx, friend.Email)
		if err != nil {
			return nil, err
		}

		for _, existing := range members {
			if existing.ID == invitee.ID {
				return nil, app_error.DuplicateInvitee(invitee.Email)
			}
		}

		blocked, err := s.MemberRepo.IsBlockedBy(ctx, requester.ID, invitee.ID)
		if err != nil {
			return nil, err
		}
		if blocked {
			return nil, app_error.Blocked(invitee.Email)
		}

		// Inviting someone the requester blocked is rejected separately
		// so the client can warn about it.
		hasBlocked, err := s.MemberRepo.HasBlocked(ctx, requester.ID, invitee.ID)
		if err != nil {
			return nil, err
		}
		if hasBlocked {
			return nil, app_error.BlockedTarget(invitee.Email)
		}

		members = append(members, *invitee)
	}

	room := &entity.ChatRoom{
		Name:       req.Name,
		ProfileURL: req.ProfileURL,
	}
	if err := s.ChatRepo.CreateRoom(ctx, room); err != nil {
		return nil, err
	}

	now := time.Now()
	var requesterMembership *entity.Membership
	names := make([]string, 0, len(members))
	for _, member := range members {
		membership, err := s.ChatRepo.CreateMembership(ctx, member.ID, room.ID, now)
		if err != nil {
			return nil, err
		}
		if member.ID == requester.ID {
			requesterMembership = membership
		}
		names = append(names, member.Name)
	}

	if err := s.appendSystemChat(ctx, room.ID, fmt.Sprintf("A new chat room has been created. Members: %s", strings.Join(names, ", "))); err != nil {
		return nil, err
	}

	return s.roomView(ctx, requesterMembership, room, requester)
}

// InviteMembers deliberately skips the duplicate-invitee and blocklist
// vetting that CreateRoom performs; only membership uniqueness itself is
// still enforced.
func (s *RoomService) InviteMembers(ctx context.Context, memberID int64, roomID uuid.UUID, req room_dto.InviteRequest) (*room_dto.RoomInfoResponse, *app_error.AppError) {
	if len(req.Friends) == 0 {
		return nil, app_error.EmptyInvitation()
	}

	room, err := s.ChatRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	membership, err := s.ChatRepo.FindMembership(ctx, memberID, roomID)
	if err != nil {
		return nil, err
	}
	requester, err := s.MemberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	// Membership uniqueness is checked across the whole batch before any
	// join lands, so a failing invitation leaves no partial joins. An
	// invitee repeated within the batch fails the same way joining them
	// twice would.
	invitees := make([]entity.Member, 0, len(req.Friends))
	for _, friend := range req.Friends {
		invitee, err := s.MemberRepo.FindByEmail(ctx, friend.Email)
		if err != nil {
			return nil, err
		}
		for _, resolved := range invitees {
			if resolved.ID == invitee.ID {
				return nil, app_error.DuplicateMembership()
			}
		}
		if _, err := s.ChatRepo.FindMembership(ctx, invitee.ID, roomID); err == nil {
			return nil, app_error.DuplicateMembership()
		} else if err.Field != app_error.KindNotAMember {
			return nil, err
		}
		invitees = append(invitees, *invitee)
	}

	now := time.Now()
	names := make([]string, 0, len(invitees))
	for _, invitee := range invitees {
		if _, err := s.ChatRepo.CreateMembership(ctx, invitee.ID, roomID, now); err != nil {
			return nil, err
		}
		names = append(names, invitee.Name)
	}

	if err := s.appendSystemChat(ctx, roomID, fmt.Sprintf("%s joined the chat room by invitation.", strings.Join(names, ", "))); err != nil {
		return nil, err
	}

	return s.roomView(ctx, membership, room, requester)
}

func (s *RoomService) LeaveRoom(ctx context.Context, memberID int64, roomID uuid.UUID) (*room_dto.RoomInfoResponse, *app_error.AppError) {
	room, err := s.ChatRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	membership, err := s.ChatRepo.FindMembership(ctx, memberID, roomID)
	if err != nil {
		return nil, err
	}
	member, err := s.MemberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	view, err := s.roomView(ctx, membership, room, member)
	if err != nil {
		return nil, err
	}

	// The departure notice goes in first; if the departure empties the
	// room, the notice is deleted together with the room.
	if err := s.appendSystemChat(ctx, roomID, fmt.Sprintf("%s left the chat room.", member.Name)); err != nil {
		return nil, err
	}

	roomDeleted, err := s.ChatRepo.RemoveMembership(ctx, membership)
	if err != nil {
		return nil, err
	}
	view.Deleted = roomDeleted

	return view, nil
}

func (s *RoomService) ModifyRoom(ctx context.Context, memberID int64, roomID uuid.UUID, req room_dto.ModifyRoomRequest) (*room_dto.RoomInfoResponse, *app_error.AppError) {
	room, err := s.ChatRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	membership, err := s.ChatRepo.FindMembership(ctx, memberID, roomID)
	if err != nil {
		return nil, err
	}
	member, err := s.MemberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	// The alias lives on the membership, not the room: the rename is
	// visible only to the member who asked for it.
	if err := s.ChatRepo.UpdateAlias(ctx, membership, &req.Name, &req.ProfileURL); err != nil {
		return nil, err
	}

	return s.roomView(ctx, membership, room, member)
}

func (s *RoomService) ListRooms(ctx context.Context, memberID int64) ([]room_dto.RoomInfoResponse, *app_error.AppError) {
	return s.collectRooms(ctx, memberID, "")
}

// SearchRooms matches the substring against each room's alias when one
// is set, else its default name; a blank pattern returns every room.
func (s *RoomService) SearchRooms(ctx context.Context, memberID int64, name string) ([]room_dto.RoomInfoResponse, *app_error.AppError) {
	return s.collectRooms(ctx, memberID, strings.TrimSpace(name))
}

func (s *RoomService) ListRoomMembers(ctx context.Context, memberID int64, roomID uuid.UUID) ([]room_dto.MemberInfoResponse, *app_error.AppError) {
	if _, err := s.ChatRepo.FindRoomByID(ctx, roomID); err != nil {
		return nil, err
	}
	if _, err := s.ChatRepo.FindMembership(ctx, memberID, roomID); err != nil {
		return nil, err
	}

	members, err := s.ChatRepo.ListRoomMembers(ctx, roomID)
	if err != nil {
		return nil, err
	}

	views := make([]room_dto.MemberInfoResponse, 0, len(members))
	for _, member := range members {
		views = append(views, room_dto.MemberInfoResponse{
			Email:      member.Email,
			Name:       member.Name,
			ProfileURL: member.ProfileURL,
		})
	}
	return views, nil
}

func (s *RoomService) collectRooms(ctx context.Context, memberID int64, pattern string) ([]room_dto.RoomInfoResponse, *app_error.AppError) {
	member, err := s.MemberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	memberships, err := s.ChatRepo.ListMembershipsByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	views := make([]room_dto.RoomInfoResponse, 0, len(memberships))
	for i := range memberships {
		membership := &memberships[i]
		room, err := s.ChatRepo.FindRoomByID(ctx, membership.RoomID)
		if err != nil {
			return nil, err
		}
		if pattern != "" && !strings.Contains(membership.SearchName(*room), pattern) {
			continue
		}

		view, err := s.roomView(ctx, membership, room, member)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *RoomService) roomView(ctx context.Context, membership *entity.Membership, room *entity.ChatRoom, self *entity.Member) (*room_dto.RoomInfoResponse, *app_error.AppError) {
	coMembers, err := s.ChatRepo.ListCoMembers(ctx, room.ID, self.ID)
	if err != nil {
		return nil, err
	}

	return &room_dto.RoomInfoResponse{
		RoomID:     room.ID.String(),
		Name:       membership.DisplayName(*room, coMembers, *self),
		ProfileURL: membership.DisplayProfileURL(*room),
	}, nil
}

func (s *RoomService) appendSystemChat(ctx context.Context, roomID uuid.UUID, content string) *app_error.AppError {
	return s.ChatRepo.CreateChat(ctx, &entity.Chat{
		RoomID:  roomID,
		Content: content,
		Kind:    entity.ChatKindSystem,
	})
}
