package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Post("/api/auth/login", h.login)

	// Row storage. Reads and single-row writes are open: the public portal
	// inserts applications and device records without an account. Bulk
	// deletion is console-only.
	router.Route("/api/data/{table}", func(r chi.Router) {
		r.Get("/", h.listRows)
		r.Post("/", h.insertRow)
		r.Put("/", h.upsertRow)
		r.With(h.requireAuth).Delete("/", h.deleteAllRows)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getRow)
			r.Patch("/", h.updateRow)
			r.Delete("/", h.deleteRow)
		})
	})

	router.Route("/api/storage/{bucket}", func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Post("/", h.uploadFile)
		r.Delete("/*", h.removeFile)
	})

	router.Handle("/files/*", http.StripPrefix("/files/",
		http.FileServer(http.Dir(h.storages.Files.Root()))))

	return router
}
