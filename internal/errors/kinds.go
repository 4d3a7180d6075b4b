package app_error

import (
	"fmt"
	"net/http"
)

// Field values double as machine-readable error kinds; handlers and
// tests discriminate on them rather than on message text.
const (
	KindNotAMember          = "not-a-member"
	KindRoomNotFound        = "room-not-found"
	KindChatNotFound        = "chat-not-found"
	KindMemberNotFound      = "member-not-found"
	KindEmptyRoomCreation   = "empty-room-creation"
	KindEmptyInvitation     = "empty-invitation"
	KindDuplicateInvitee    = "duplicate-invitee"
	KindDuplicateMembership = "duplicate-membership"
	KindBlocked             = "blocked"
	KindBlockedTarget       = "blocked-target"
	KindRoomChatMismatch    = "room-chat-mismatch"
)

func NotAMember() *AppError {
	return NewAppError(http.StatusForbidden, "member does not belong to this chat room", KindNotAMember)
}

func RoomNotFound() *AppError {
	return NewAppError(http.StatusNotFound, "chat room not found", KindRoomNotFound)
}

func ChatNotFound() *AppError {
	return NewAppError(http.StatusNotFound, "chat not found", KindChatNotFound)
}

func MemberNotFound(email string) *AppError {
	return NewAppError(http.StatusNotFound, fmt.Sprintf("no member exists with email: %s", email), KindMemberNotFound)
}

func EmptyRoomCreation() *AppError {
	return NewAppError(http.StatusBadRequest, "a chat room cannot be created without other members", KindEmptyRoomCreation)
}

func EmptyInvitation() *AppError {
	return NewAppError(http.StatusBadRequest, "no members to invite", KindEmptyInvitation)
}

func DuplicateInvitee(email string) *AppError {
	return NewAppError(http.StatusBadRequest, fmt.Sprintf("duplicated member in invitee list: %s", email), KindDuplicateInvitee)
}

func DuplicateMembership() *AppError {
	return NewAppError(http.StatusConflict, "member already belongs to this chat room", KindDuplicateMembership)
}

func Blocked(email string) *AppError {
	return NewAppError(http.StatusForbidden, fmt.Sprintf("this member has blocked you: %s", email), KindBlocked)
}

func BlockedTarget(email string) *AppError {
	return NewAppError(http.StatusForbidden, fmt.Sprintf("you have blocked this member: %s", email), KindBlockedTarget)
}

func RoomChatMismatch() *AppError {
	return NewAppError(http.StatusBadRequest, "chat does not belong to this chat room", KindRoomChatMismatch)
}
