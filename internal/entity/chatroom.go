package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatRoom exists only while it has at least one membership. The last
// membership removal deletes the room together with its chats.
type ChatRoom struct {
	ID         uuid.UUID `gorm:"primaryKey"`
	Name       string
	ProfileURL string
	CreatedAt  time.Time `gorm:"not null"`
}
