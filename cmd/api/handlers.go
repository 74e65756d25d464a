package main

import (
	"errors"
	"net/http"
	"strconv"

	"backend/internal/models"
	"backend/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
)

// UserSignupPayload is the request payload for user registration
type UserSignupPayload struct {
	// Required: true
	// Example: "John Doe"
	Name string `json:"name"`
	// Required: true
	// Example: "john@example.com"
	Email string `json:"email"`
	// Required: true
	// Example: "password123"
	Password string `json:"password"`
}

// UserLoginPayload is the request payload for user login
type UserLoginPayload struct {
	// Required: true
	// Example: "john@example.com"
	Email string `json:"email"`
	// Required: true
	// Example: "password123"
	Password string `json:"password"`
}

// CollectionPayload is the request payload for adding a series to the collection
type CollectionPayload struct {
	// Required: true
	// Example: 1
	SeriesID int `json:"series_id"`
}

// RatingPayload is the request payload for rating a series
type RatingPayload struct {
	// Required: true
	// Minimum: 1
	// Maximum: 10
	Value int `json:"value"`
}

// Home checks the working status of the API
// @Summary Check the working status of the API
// @Description Shows status and version information about the API
// @Tags Home
// @Produce json
// @Success 200 {object} map[string]interface{} "{"status":"active","message":"TV series catalogue up and running","version":"1.0.0"}"
// @Router /api/v1/ [get]
func (app *application) Home(w http.ResponseWriter, r *http.Request) {
	var payload = struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Version string `json:"version"`
	}{
		Status:  "active",
		Message: "TV series catalogue up and running",
		Version: "1.0.0",
	}
	app.writeJSON(w, http.StatusOK, payload)
}

// signup registers a new user
// @Summary Register a new user
// @Description Creates a new user account and returns the generated API key
// @Tags Authentication
// @Accept json
// @Produce json
// @Param requestPayload body UserSignupPayload true "User registration data"
// @Success 201 {object} map[string]interface{} "User created" example({"message": "user created", "api_key": "string"})
// @Failure 400 {object} map[string]string "Bad Request" example({"error": "Bad Request"})
// @Failure 409 {object} map[string]string "Conflict" example({"error": "email already exists"})
// @Failure 500 {object} map[string]string "Internal Server Error" example({"error": "Internal Server Error"})
// @Router /api/v1/signup [post]
func (app *application) signup(w http.ResponseWriter, r *http.Request) {
	var requestPayload UserSignupPayload

	err := app.readJSON(w, r, &requestPayload)
	if err != nil {
		app.errorJSON(w, err, http.StatusBadRequest)
		return
	}

	if requestPayload.Name == "" || requestPayload.Email == "" || requestPayload.Password == "" {
		app.errorJSON(w, errors.New("name, email and password are required"), http.StatusBadRequest)
		return
	}

	// Create the user; the gateway reports the outcome through the
	// registration status vocabulary
	status, err := app.DB.CreateUser(requestPayload.Name, requestPayload.Email, requestPayload.Password)
	if err != nil {
		app.errorJSON(w, errors.New("could not create user"), http.StatusInternalServerError)
		return
	}

	switch status {
	case models.UserAlreadyExisted:
		app.errorJSON(w, errors.New("email already exists"), http.StatusConflict)
		return
	case models.UserCreatedSuccessfully:
		// read the user back to hand out the generated API key
		user, err := app.DB.GetUserByEmail(requestPayload.Email)
		if err != nil {
			app.errorJSON(w, errors.New("could not read created user"), http.StatusInternalServerError)
			return
		}

		responsePayload := struct {
			Message string `json:"message"`
			APIKey  string `json:"api_key"`
		}{
			Message: "user created",
			APIKey:  user.APIKey,
		}
		app.writeJSON(w, http.StatusCreated, responsePayload)
	default:
		app.errorJSON(w, errors.New("could not create user"), http.StatusInternalServerError)
	}
}

// login authenticates a user and creates TokenPairs
// @Summary Authenticate and create TokenPairs
// @Description Validates user credentials, then creates a JWT token pair and returns the user's API key
// @Tags Authentication
// @Accept json
// @Produce json
// @Param requestPayload body UserLoginPayload true "User credentials"
// @Success 202 {object} map[string]interface{} "Token pairs and API key" example({"access_token": "string", "refresh_token": "string", "api_key": "string"})
// @Failure 400 {object} map[string]interface{} "Bad Request" example({"error": "invalid credentials"})
// @Failure 500 {object} map[string]interface{} "Internal Server Error" example({"error": "Internal Server Error"})
// @Router /api/v1/login [post]
func (app *application) login(w http.ResponseWriter, r *http.Request) {
	// read json payload
	var requestPayload UserLoginPayload

	err := app.readJSON(w, r, &requestPayload)
	if err != nil {
		app.errorJSON(w, err, http.StatusBadRequest)
		return
	}

	// validate user against database
	valid, err := app.DB.CheckLogin(requestPayload.Email, requestPayload.Password)
	if err != nil {
		app.errorJSON(w, errors.New("internal server error"), http.StatusInternalServerError)
		return
	}
	if !valid {
		app.errorJSON(w, errors.New("invalid credentials"), http.StatusBadRequest)
		return
	}

	user, err := app.DB.GetUserByEmail(requestPayload.Email)
	if err != nil {
		app.errorJSON(w, errors.New("invalid credentials"), http.StatusBadRequest)
		return
	}

	// create a jwt user
	u := jwtUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}

	// generate tokens
	tokens, err := app.auth.GenerateTokenPair(&u)
	if err != nil {
		app.errorJSON(w, err)
		return
	}

	// set refresh token cookie
	refreshCookie := app.auth.GetRefreshCookie(tokens.RefreshToken)
	http.SetCookie(w, refreshCookie)

	// create the response payload
	responsePayload := struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		APIKey       string `json:"api_key"`
		User         struct {
			ID    int    `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}{
		AccessToken:  tokens.Token,
		RefreshToken: tokens.RefreshToken,
		APIKey:       user.APIKey,
		User: struct {
			ID    int    `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		}{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}

	// write the response as JSON
	app.writeJSON(w, http.StatusAccepted, responsePayload)
}

// refreshToken renews the JWT token pair
// @Summary Refresh the JWT token pair
// @Description Validates the refresh token cookie and creates a new token pair for the user
// @Tags Authentication
// @Produce json
// @Success 200 {object} map[string]string "Token pairs" example({"access_token": "string", "refresh_token": "string"})
// @Failure 401 {object} map[string]string "Unauthorized" example({"error": "Unauthorized"})
// @Router /api/v1/refresh [get]
func (app *application) refreshToken(w http.ResponseWriter, r *http.Request) {

	// Read cookie data
	for _, cookie := range r.Cookies() {
		if cookie.Name == app.auth.CookieName {
			claims := &Claims{}
			refreshToken := cookie.Value

			// parse the token to the claims
			_, err := jwt.ParseWithClaims(refreshToken, claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(app.JWTSecret), nil
			})
			if err != nil {
				app.errorJSON(w, errors.New("unauthorized"), http.StatusUnauthorized)
				return
			}

			// get the user id from the token claims
			userID, err := strconv.Atoi(claims.Subject)
			if err != nil {
				app.errorJSON(w, errors.New("unknown user"), http.StatusUnauthorized)
				return
			}

			user, err := app.DB.GetUserByID(userID)
			if err != nil {
				app.errorJSON(w, errors.New("unknown user"), http.StatusUnauthorized)
				return
			}

			u := jwtUser{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
			}

			tokenPairs, err := app.auth.GenerateTokenPair(&u)
			if err != nil {
				app.errorJSON(w, errors.New("error generating tokens"), http.StatusUnauthorized)
				return
			}

			http.SetCookie(w, app.auth.GetRefreshCookie(tokenPairs.RefreshToken))
			app.writeJSON(w, http.StatusOK, tokenPairs)
		}
	}
}

// logout ends the session
// @Summary Log out
// @Description Expires the user's refresh token cookie
// @Tags Authentication
// @Produce json
// @Success 202 {object} map[string]string "Accepted"
// @Router /api/v1/logout [get]
func (app *application) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, app.auth.GetExpiredRefreshCookie())
	w.WriteHeader(http.StatusAccepted)
}

// Account shows the authenticated user's profile
// @Summary Show the authenticated user's profile
// @Description Returns the profile of the user identified by the JWT bearer token
// @Tags Account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "User profile"
// @Failure 401 {object} map[string]string "Unauthorized" example({"error": "unauthorized"})
// @Router /api/v1/account [get]
func (app *application) Account(w http.ResponseWriter, r *http.Request) {
	userID, ok := app.userIDFromContext(r)
	if !ok {
		app.errorJSON(w, errors.New("unauthorized"), http.StatusUnauthorized)
		return
	}

	user, err := app.DB.GetUserByID(userID)
	if err != nil {
		app.errorJSON(w, errors.New("unknown user"), http.StatusUnauthorized)
		return
	}

	app.writeJSON(w, http.StatusOK, user)
}

// AllSeries lists every TV series
// @Summary List every TV series
// @Description Lists all series, each annotated with the calling user's collection status when added
// @Tags Series
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.TvSeries "List of all series"
// @Failure 500 {object} map[string]interface{} "Internal Server Error" example({"error":"Internal Server Error"})
// @Router /api/v1/series [get]
func (app *application) AllSeries(w http.ResponseWriter, r *http.Request) {
	userID, _ := app.userIDFromContext(r)

	seriesList, err := app.DB.AllTvSeries(userID)
	if err != nil {
		app.errorJSON(w, err, http.StatusInternalServerError)
		return
	}
	_ = app.writeJSON(w, http.StatusOK, seriesList)
}

// GetSeries shows a single TV series by ID
// @Summary Show a single TV series by ID
// @Description Fetches one series with its aggregate like and rating counts
// @Tags Series
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Series ID"
// @Success 200 {object} models.TvSeries "Series details"
// @Failure 400 {object} map[string]interface{} "Bad Request" example({"error":"Invalid ID"})
// @Failure 404 {object} map[string]interface{} "Not Found" example({"error":"series not found"})
// @Router /api/v1/series/{id} [get]
func (app *application) GetSeries(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		app.errorJSON(w, err, http.StatusBadRequest)
		return
	}

	series, err := app.DB.OneTvSeries(id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			app.errorJSON(w, errors.New("series not found"), http.StatusNotFound)
			return
		}
		app.errorJSON(w, err, http.StatusInternalServerError)
		return
	}
	app.writeJSON(w, http.StatusOK, series)
}

// SeriesPhotos lists the photos of a TV series
// @Summary List the photos of a TV series
// @Description Fetches the photos attached to the given series
// @Tags Series
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Series ID"
// @Success 200 {array} models.Photo "List of photos"
// @Failure 400 {object} map[string]interface{} "Bad Request" example({"error":"Invalid ID"})
// @Router /api/v1/series/{id}/photos [get]
func (app *application) SeriesPhotos(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		app.errorJSON(w, err, http.StatusBadRequest)
		return
	}

	photos, err := app.DB.AllPhotosOfSeries(id)
	if err != nil {
		app.errorJSON(w, err, http.StatusInternalServerError)
		return
	}
	_ = app.writeJSON(w, http.StatusOK, photos)
}

// GetCollection lists the user's collection
// @Summary List the user's collection
// @Description Lists only the series the calling user has added
// @Tags Collection
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.TvSeries "The user's collection"
// @Failure 500 {object} map[string]interface{} "Internal Server Error" example({"error":"Internal Server Error"})
// @Router /api/v1/collection [get]
func (app *application) GetCollection(w http.ResponseWriter, r *http.Request) {
	userID, _ := app.userIDFromContext(r)

	seriesList, err := app.DB.GetCollection(userID)
	if err != nil {
		app.errorJSON(w, err, http.StatusInternalServerError)
		return
	}
	_ = app.writeJSON(w, http.StatusOK, seriesList)
}

// AddToCollection adds a series to the user's collection
// @Summary Add a series to the user's collection
// @Description Adds the given series to the calling user's collection
// @Tags Collection
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param requestPayload body CollectionPayload true "Series to add"
// @Success 201 {object} map[string]interface{} "Added" example({"message":"series added to collection"})
// @Failure 400 {object} map[string]interface{} "Bad Request" example({"error":"Invalid data"})
// @Failure 409 {object} map[string]interface{} "Conflict" example({"error":"series already in collection"})
// @Router /api/v1/collection [post]
func (app *application) AddToCollection(w http.ResponseWriter, r *http.Request) {
	userID, _ := app.userIDFromContext(r)

	var requestPayload CollectionPayload
	err := app.readJSON(w, r, &requestPayload)
	if err != nil {
		app.errorJSON(w, err, http.StatusBadRequest)
		return
	}

	err = app.DB.AddToCollection(requestPayload.SeriesID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateRecord) {
			app.errorJSON(w, errors.New("series already in collection"), http.StatusConflict)
			return
		}
		app.errorJSON(w, err, http.StatusInternalServerError)
		return
	}

	resp := JSONResponse{
		Error:   false,
		Message: "series added to collection",
	}
	app.writeJSON(w, http.StatusCreated, resp)
}

// LikePhoto likes a photo
// @Summary Like a photo
// @Description Records the calling user's like on the photo and bumps the photo's like counter
// @Tags Likes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Photo ID"
// @Success 201 {object} map[string]interface{} "Liked" example({"message":"photo liked"})
// @Failure 400 {object} map[string]interface{} "Bad Request" example({"error":"Invalid ID"})
// @Failure 409 {object} map[string]interface{} "Conflict" example({"error":"photo already liked"})
// @Router /api/v1/photos/{id}/like [post]
func (app *application) LikePhoto(w http.ResponseWriter, r *http.Request) {
	userID, _ := app.userIDFromContext(r)

	photoID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		app.errorJSON(w, err, http.StatusBadRequest)
		return
	}

	// check whether the user already liked this photo
	_, err = app.DB.GetLike(photoID, userID)
	if err == nil {
		app.errorJSON(w, errors.New("photo already liked"), http.StatusConflict)
		return
	}
	if !errors.Is(err, repository.ErrRecordNotFound) {
		app.errorJSON(w, err, http.StatusInternalServerError)
		return
	}

	_, err = app.DB.AddLike(photoID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateRecord) {
			app.errorJSON(w, errors.New("photo already liked"), http.StatusConflict)
			return
		}
		app.errorJSON(w, err, http.StatusInternalServerError)
		return
	}

	// bump the aggregate counter on the photo row
	err = app.DB.IncrementLikeCount(photoID)
	if err != nil {
		app.errorJSON(w, err, http.StatusInternalServerError)
		return
	}

	resp := JSONResponse{
		Error:   false,
		Message: "photo liked",
	}
	app.writeJSON(w, http.StatusCreated, resp)
}

// UnlikePhoto removes a like from a photo
// @Summary Remove a like from a photo
// @Description Removes the calling user's like and lowers the photo's like counter
// @Tags Likes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Photo ID"
// @Success 200 {object} map[string]interface{} "Unliked" example({"message":"like removed"})
// @Failure 400 {object} map[string]interface{} "Bad Request" example({"error":"Invalid ID"})
// @Failure 404 {object} map[string]interface{} "Not Found" example({"error":"like not found"})
// @Router /api/v1/photos/{id}/like [delete]
func (app *application) UnlikePhoto(w http.ResponseWriter, r *http.Request) {
	userID, _ := app.userIDFromContext(r)

	photoID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		app.errorJSON(w, err, http.StatusBadRequest)
		return
	}

	like, err := app.DB.GetLike(photoID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			app.errorJSON(w, errors.New("like not found"), http.StatusNotFound)
			return
		}
		app.errorJSON(w, err, http.StatusInternalServerError)
		return
	}

	err = app.DB.RemoveLike(like.ID)
	if err != nil {
		app.errorJSON(w, err, http.StatusInternalServerError)
		return
	}

	err = app.DB.DecrementLikeCount(photoID)
	if err != nil {
		app.errorJSON(w, err, http.StatusInternalServerError)
		return
	}

	resp := JSONResponse{
		Error:   false,
		Message: "like removed",
	}
	app.writeJSON(w, http.StatusOK, resp)
}

// RateSeries rates a TV series
// @Summary Rate a TV series
// @Description Adds or updates the calling user's rating and recalculates the series aggregate
// @Tags Ratings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Series ID"
// @Param requestPayload body RatingPayload true "Rating value (1-10)"
// @Success 200 {object} map[string]interface{} "Rated" example({"message":"series rated"})
// @Failure 400 {object} map[string]interface{} "Bad Request" example({"error":"rating must be between 1 and 10"})
// @Failure 404 {object} map[string]interface{} "Not Found" example({"error":"series not found"})
// @Router /api/v1/series/{id}/rating [post]
func (app *application) RateSeries(w http.ResponseWriter, r *http.Request) {
	userID, _ := app.userIDFromContext(r)

	seriesID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		app.errorJSON(w, err, http.StatusBadRequest)
		return
	}

	var requestPayload RatingPayload
	err = app.readJSON(w, r, &requestPayload)
	if err != nil {
		app.errorJSON(w, err, http.StatusBadRequest)
		return
	}

	if requestPayload.Value < 1 || requestPayload.Value > 10 {
		app.errorJSON(w, errors.New("rating must be between 1 and 10"), http.StatusBadRequest)
		return
	}

	// make sure the series exists before touching the rating table
	_, err = app.DB.OneTvSeries(seriesID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			app.errorJSON(w, errors.New("series not found"), http.StatusNotFound)
			return
		}
		app.errorJSON(w, err, http.StatusInternalServerError)
		return
	}

	// add a new rating, or update the existing one
	existing, err := app.DB.GetRating(seriesID, userID)
	switch {
	case err == nil:
		err = app.DB.UpdateRating(existing.ID, requestPayload.Value)
	case errors.Is(err, repository.ErrRecordNotFound):
		err = app.DB.AddRating(seriesID, userID, requestPayload.Value)
	}
	if err != nil {
		app.errorJSON(w, err, http.StatusInternalServerError)
		return
	}

	// keep the denormalized aggregate in step with the rating rows
	err = app.DB.RecalculateSeriesRating(seriesID)
	if err != nil {
		app.errorJSON(w, err, http.StatusInternalServerError)
		return
	}

	resp := JSONResponse{
		Error:   false,
		Message: "series rated",
	}
	app.writeJSON(w, http.StatusOK, resp)
}
