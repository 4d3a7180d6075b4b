package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Membership ties a member to a chat room and carries the member's
// personalization (alias name/avatar) and read-tracking state for it.
// At most one membership exists per (member, room) pair.
type Membership struct {
	ID              int64     `gorm:"primaryKey"`
	MemberID        int64     `gorm:"not null;uniqueIndex:membership_unique"`
	RoomID          uuid.UUID `gorm:"not null;uniqueIndex:membership_unique"`
	AliasName       *string
	AliasProfileURL *string
	LastViewedAt    time.Time `gorm:"not null"`
}

// DisplayName resolves the name a member sees for a room:
// alias, else the room's default name, else the co-members' names joined
// with ", ", else the member's own name.
func (m Membership) DisplayName(room ChatRoom, coMembers []Member, self Member) string {
	if m.AliasName != nil && strings.TrimSpace(*m.AliasName) != "" {
		return *m.AliasName
	}
	if strings.TrimSpace(room.Name) != "" {
		return room.Name
	}
	if len(coMembers) > 0 {
		names := make([]string, 0, len(coMembers))
		for _, member := range coMembers {
			names = append(names, member.Name)
		}
		return strings.Join(names, ", ")
	}
	return self.Name
}

// DisplayProfileURL resolves the avatar the same way: alias, else room default.
func (m Membership) DisplayProfileURL(room ChatRoom) string {
	if m.AliasProfileURL != nil && strings.TrimSpace(*m.AliasProfileURL) != "" {
		return *m.AliasProfileURL
	}
	return room.ProfileURL
}

// SearchName is what room search matches against: alias if present,
// else the room's default name. The synthesized co-member fallback is
// deliberately not part of the searchable name.
func (m Membership) SearchName(room ChatRoom) string {
	if m.AliasName != nil && strings.TrimSpace(*m.AliasName) != "" {
		return *m.AliasName
	}
	return room.Name
}
