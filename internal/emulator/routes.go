package emulator

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/studytrack/internal/app"
	"github.com/MKhiriev/studytrack/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, h.withAPIKey, h.withFaults)

	router.Route("/v1", func(r chi.Router) {
		// routes without authorization
		r.Post("/auth/signUp", h.signUp)
		r.Post("/auth/signIn", h.signIn)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/auth/signOut", h.signOut)

			r.Get("/documents/*", h.getDocument)
			r.Put("/documents/*", h.setDocument)
			r.Patch("/documents/*", h.mergeDocument)
			r.Delete("/documents/*", h.deleteDocument)

			r.Get("/collections/*", h.listCollection)
			r.Post("/collections/*", h.addDocument)

			r.Post("/batch", h.batch)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusNotFound, app.CodeNotFound, "route not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusMethodNotAllowed, app.CodeInvalidArgument, "method not allowed")
	})

	return router
}
