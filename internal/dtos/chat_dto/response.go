package chat_dto

import "time"

// ChatInfoResponse annotates a chat with its unread counter: how many
// current room members have not viewed it yet.
type ChatInfoResponse struct {
	ChatID      int64     `json:"chat_id"`
	Content     string    `json:"content"`
	Kind        string    `json:"kind"`
	CreatedAt   time.Time `json:"created_at"`
	UnreadCount int       `json:"unread_count"`
}
