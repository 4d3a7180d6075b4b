package room_dto

type Friend struct {
	Email string `json:"email" validate:"required,email"`
}

type CreateRoomRequest struct {
	Name       string   `json:"name" validate:"omitempty,max=100"`
	ProfileURL string   `json:"profile_url" validate:"omitempty,url"`
	Friends    []Friend `json:"friends" validate:"dive"`
}

type InviteRequest struct {
	Friends []Friend `json:"friends" validate:"dive"`
}

type ModifyRoomRequest struct {
	Name       string `json:"name" validate:"omitempty,max=100"`
	ProfileURL string `json:"profile_url" validate:"omitempty,url"`
}
