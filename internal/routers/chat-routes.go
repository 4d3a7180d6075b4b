package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/kjoon418/MyChat/internal/handlers"
	chat_handler "github.com/kjoon418/MyChat/internal/handlers/chat-handler"
	"github.com/kjoon418/MyChat/internal/middleware"
	"github.com/kjoon418/MyChat/state"
)

func ChatRouter(r chi.Router, state *state.AppState) {
	chatHandler := chat_handler.NewChatHandler(state)
	r.Group(func(protected chi.Router) {
		protected.Use(middleware.JWTAuth(state.JwtSecret.Public))
		protected.Post("/api/v1/rooms/{roomId}/chats", handlers.WrapHandler(chatHandler.SendChat))
		protected.Get("/api/v1/rooms/{roomId}/chats", handlers.WrapHandler(chatHandler.ReadChats))
		protected.Get("/api/v1/rooms/{roomId}/chats/search", handlers.WrapHandler(chatHandler.SearchChats)) // receive query param content
		protected.Delete("/api/v1/rooms/{roomId}/chats/{chatId}", handlers.WrapHandler(chatHandler.DeleteChat))
	})
}
