package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kjoon418/MyChat/internal/middleware"
	"github.com/kjoon418/MyChat/state"
)

func NewRouter(state *state.AppState) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.WithRequestId)
	RoomRouter(r, state)
	ChatRouter(r, state)
	return r
}
