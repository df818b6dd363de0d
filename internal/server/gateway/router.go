package gateway

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/usergate/internal/logging"
)

// NewRouter mounts the gateway routes. Panics in handlers are recovered and
// answered with 500.
func NewRouter(h *Handler, logger logging.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Post("/addUser", h.AddUser)
	r.Get("/getUsers", h.GetUsers)
	r.Get("/ping", h.Ping)

	return r
}
