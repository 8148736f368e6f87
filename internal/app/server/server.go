// Package server assembles the HTTP router of the links service.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/atinyakov/useful-links/internal/app/handler"
	"github.com/atinyakov/useful-links/internal/app/service"
	"github.com/atinyakov/useful-links/internal/middleware"
)

// Init returns the router serving every HTTP route. The stats route is only
// reachable from trustedSubnet.
func Init(logger *zap.Logger, svc service.LinkServiceIface, auth service.AuthIface, trustedSubnet string) *chi.Mux {
	get := handler.NewGet(svc, logger)
	post := handler.NewPost(svc, logger)
	put := handler.NewPut(svc, logger)
	del := handler.NewDelete(svc, logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(middleware.WithGzip)

	r.Get("/ping", get.PingDB)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.WithJWT(auth, logger))

			r.Post("/links", post.Link)
			r.Post("/links/batch", post.Batch)
			r.Get("/user/links", get.ByAuthor)
			r.Delete("/user/links", del.DeleteBatch)
		})

		r.Get("/links", get.List)
		r.Get("/links/{id}", get.ByID)

		r.Get("/loading", get.LoadingAll)
		r.Get("/loading/{domain}", get.Loading)
		r.Put("/loading/{domain}", put.Loading)

		r.With(middleware.WithSubnet(trustedSubnet)).Get("/internal/stats", get.Stats)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
