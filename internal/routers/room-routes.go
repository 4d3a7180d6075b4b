package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/kjoon418/MyChat/internal/handlers"
	room_handler "github.com/kjoon418/MyChat/internal/handlers/room-handler"
	"github.com/kjoon418/MyChat/internal/middleware"
	"github.com/kjoon418/MyChat/state"
)

func RoomRouter(r chi.Router, state *state.AppState) {
	roomHandler := room_handler.NewRoomHandler(state)
	r.Group(func(protected chi.Router) {
		protected.Use(middleware.JWTAuth(state.JwtSecret.Public))
		protected.Post("/api/v1/rooms", handlers.WrapHandler(roomHandler.CreateRoom))
		protected.Get("/api/v1/rooms", handlers.WrapHandler(roomHandler.ListRooms))
		protected.Get("/api/v1/rooms/search", handlers.WrapHandler(roomHandler.SearchRooms)) // receive query param name
		protected.Post("/api/v1/rooms/{roomId}/invitation", handlers.WrapHandler(roomHandler.InviteMembers))
		protected.Delete("/api/v1/rooms/{roomId}", handlers.WrapHandler(roomHandler.LeaveRoom))
		protected.Patch("/api/v1/rooms/{roomId}", handlers.WrapHandler(roomHandler.ModifyRoom))
		protected.Get("/api/v1/rooms/{roomId}/members", handlers.WrapHandler(roomHandler.ListRoomMembers))
	})
}
