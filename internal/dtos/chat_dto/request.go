package chat_dto

type SendChatRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}
