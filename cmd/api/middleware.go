package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"backend/internal/repository"
)

type contextKey string

// userContextKey carries the authenticated user's id through the request context
const userContextKey = contextKey("userID")

// enableCORS adds the CORS headers for the frontend
func (app *application) enableCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")

		if r.Method == "OPTIONS" {
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-CSRF-Token, X-API-Key, Authorization")
			return
		}
		h.ServeHTTP(w, r)
	})
}

// authRequired protects routes with a JWT bearer token and stores the
// authenticated user's id in the request context
func (app *application) authRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := app.auth.GetTokenFromHeaderAndVerify(w, r)
		if err != nil {
			app.errorJSON(w, errors.New("unauthorized"), http.StatusUnauthorized)
			return
		}

		userID, err := strconv.Atoi(claims.Subject)
		if err != nil {
			app.errorJSON(w, errors.New("unauthorized"), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// apiKeyRequired protects routes with the X-API-Key header. The key is
// resolved against the database and the owning user's id is stored in the
// request context for the handlers.
func (app *application) apiKeyRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			app.errorJSON(w, errors.New("missing api key"), http.StatusUnauthorized)
			return
		}

		valid, err := app.DB.ValidAPIKey(apiKey)
		if err != nil {
			app.errorJSON(w, errors.New("internal server error"), http.StatusInternalServerError)
			return
		}
		if !valid {
			app.errorJSON(w, errors.New("invalid api key"), http.StatusUnauthorized)
			return
		}

		userID, err := app.DB.GetUserIDByAPIKey(apiKey)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				app.errorJSON(w, errors.New("invalid api key"), http.StatusUnauthorized)
				return
			}
			app.errorJSON(w, errors.New("internal server error"), http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromContext pulls the authenticated user id set by the middleware
func (app *application) userIDFromContext(r *http.Request) (int, bool) {
	userID, ok := r.Context().Value(userContextKey).(int)
	return userID, ok
}
