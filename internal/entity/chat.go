package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatKind string

const (
	ChatKindUser   ChatKind = "USER"
	ChatKindSystem ChatKind = "SYSTEM"
)

// Chat is a single message in a room. AuthorID is nil for system
// messages and for user messages whose author has since left or been
// deleted; Kind keeps the two cases distinguishable.
type Chat struct {
	ID        int64     `gorm:"primaryKey"`
	RoomID    uuid.UUID `gorm:"not null;index"`
	AuthorID  *int64
	Content   string
	Kind      ChatKind  `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (c Chat) IsSystem() bool {
	return c.Kind == ChatKindSystem
}

// IsOrphaned reports a user message whose author reference is gone.
func (c Chat) IsOrphaned() bool {
	return c.Kind == ChatKindUser && c.AuthorID == nil
}
