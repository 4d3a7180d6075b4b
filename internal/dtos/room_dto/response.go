package room_dto

// RoomInfoResponse is always built from the requester's membership so
// the name/avatar reflect their personal alias, never another member's.
type RoomInfoResponse struct {
	RoomID     string `json:"room_id"`
	Name       string `json:"name"`
	ProfileURL string `json:"profile_url,omitempty"`
	Deleted    bool   `json:"deleted,omitempty"`
}

type MemberInfoResponse struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	ProfileURL string `json:"profile_url,omitempty"`
}
