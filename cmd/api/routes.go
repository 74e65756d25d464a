package main

import (
	"net/http"

	_ "backend/cmd/api/docs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

func (app *application) routes() http.Handler {
	// Create Router mux
	mux := chi.NewRouter()

	// Add middleware
	mux.Use(middleware.Recoverer)
	mux.Use(app.enableCORS)

	// Register Swagger
	mux.Get("/swagger/*", httpSwagger.WrapHandler)

	// Register the API routes to "api/v1"
	mux.Route("/api/v1", func(r chi.Router) {

		// Public routes
		r.Get("/", app.Home)

		// Authentication routes
		r.Post("/signup", app.signup)
		r.Post("/login", app.login)
		r.Get("/refresh", app.refreshToken)
		r.Get("/logout", app.logout)

		// JWT protected routes
		r.With(app.authRequired).Get("/account", app.Account)

		// API key protected routes
		r.Group(func(r chi.Router) {
			r.Use(app.apiKeyRequired)

			r.Get("/series", app.AllSeries)
			r.Get("/series/{id}", app.GetSeries)
			r.Get("/series/{id}/photos", app.SeriesPhotos)
			r.Post("/series/{id}/rating", app.RateSeries)

			r.Get("/collection", app.GetCollection)
			r.Post("/collection", app.AddToCollection)

			r.Post("/photos/{id}/like", app.LikePhoto)
			r.Delete("/photos/{id}/like", app.UnlikePhoto)
		})
	})
	return mux
}
