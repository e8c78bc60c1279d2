package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the maintenance server.
//
//	GET  /api/delete-old-trash  purge trashed notes past the retention
//	POST /api/ping-database     keep the database awake
//	GET  /api/version/          application version as plain text
//	GET  /api/info              version, retention and uptime as JSON
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Get("/delete-old-trash", h.deleteOldTrash)
		r.Post("/ping-database", h.pingDatabase)
		r.Get("/version/", h.getServerVersion)
		r.Get("/info", h.getServerInfo)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
