package entity

import (
	"time"
)

// Member is owned by the identity subsystem; this service only reads it.
type Member struct {
	ID         int64     `gorm:"primaryKey"`
	Email      string    `gorm:"uniqueIndex;not null"`
	Name       string    `gorm:"not null"`
	ProfileURL string
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// Blacklist records that member_id has blocked target_member_id.
type Blacklist struct {
	ID             int64 `gorm:"primaryKey"`
	MemberID       int64 `gorm:"not null;uniqueIndex:blacklist_unique"`
	TargetMemberID int64 `gorm:"not null;uniqueIndex:blacklist_unique"`
}
