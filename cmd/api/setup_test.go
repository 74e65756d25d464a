package main

import (
	"database/sql"
	"os"
	"testing"
	"time"

	"backend/internal/models"
	"backend/internal/repository"
	"backend/internal/repository/dbrepo"

	"golang.org/x/crypto/bcrypt"
)

var app application

func TestMain(m *testing.M) {
	app.Domain = "example.com"
	app.JWTSecret = "test-secret"
	app.JWTIssuer = "example.com"
	app.JWTAudience = "example.com"

	app.auth = Auth{
		Issuer:        app.JWTIssuer,
		Audience:      app.JWTAudience,
		Secret:        app.JWTSecret,
		TokenExpiry:   time.Minute * 15,
		RefreshExpiry: time.Hour * 24,
		CookiePath:    "/",
		CookieName:    "refresh_token",
		CookieDomain:  "example.com",
	}

	os.Exit(m.Run())
}

// testRepo is an in-memory DatabaseRepo used to exercise the handlers
// without a Postgres instance. It mirrors the gateway's semantics,
// including the uniqueness constraints and the like counter floor.
type testRepo struct {
	users      []*models.User
	series     []*models.TvSeries
	photos     []*models.Photo
	collection map[int]map[int]int // user id -> series id -> status
	likes      []*models.Like
	ratings    []*models.Rating
	nextUserID   int
	nextLikeID   int
	nextRatingID int
}

func newTestRepo() *testRepo {
	return &testRepo{
		collection:   map[int]map[int]int{},
		nextUserID:   1,
		nextLikeID:   1,
		nextRatingID: 1,
	}
}

func (r *testRepo) Connection() *sql.DB { return nil }

func (r *testRepo) CreateUser(name, email, password string) (models.RegistrationStatus, error) {
	for _, u := range r.users {
		if u.Email == email {
			return models.UserAlreadyExisted, nil
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return models.UserCreatedFailed, err
	}

	apiKey, err := dbrepo.GenerateAPIKey()
	if err != nil {
		return models.UserCreatedFailed, err
	}

	r.users = append(r.users, &models.User{
		ID:           r.nextUserID,
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		APIKey:       apiKey,
	})
	r.nextUserID++
	return models.UserCreatedSuccessfully, nil
}

func (r *testRepo) UserExists(email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *testRepo) ValidAPIKey(apiKey string) (bool, error) {
	for _, u := range r.users {
		if u.APIKey == apiKey {
			return true, nil
		}
	}
	return false, nil
}

func (r *testRepo) CheckLogin(email, password string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u.PasswordMatches(password)
		}
	}
	return false, nil
}

func (r *testRepo) GetUserIDByAPIKey(apiKey string) (int, error) {
	for _, u := range r.users {
		if u.APIKey == apiKey {
			return u.ID, nil
		}
	}
	return 0, repository.ErrRecordNotFound
}

func (r *testRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (r *testRepo) GetUserByID(id int) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (r *testRepo) AllTvSeries(userID int) ([]*models.TvSeries, error) {
	var out []*models.TvSeries
	for _, s := range r.series {
		copied := *s
		copied.CollectionStatus = nil
		if status, ok := r.collection[userID][s.ID]; ok {
			st := status
			copied.CollectionStatus = &st
		}
		out = append(out, &copied)
	}
	return out, nil
}

func (r *testRepo) GetCollection(userID int) ([]*models.TvSeries, error) {
	var out []*models.TvSeries
	for _, s := range r.series {
		if status, ok := r.collection[userID][s.ID]; ok {
			copied := *s
			st := status
			copied.CollectionStatus = &st
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *testRepo) OneTvSeries(id int) (*models.TvSeries, error) {
	for _, s := range r.series {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (r *testRepo) AddToCollection(seriesID, userID int) error {
	if _, ok := r.collection[userID][seriesID]; ok {
		return repository.ErrDuplicateRecord
	}
	if r.collection[userID] == nil {
		r.collection[userID] = map[int]int{}
	}
	r.collection[userID][seriesID] = 1
	return nil
}

func (r *testRepo) AllPhotosOfSeries(seriesID int) ([]*models.Photo, error) {
	var out []*models.Photo
	for _, p := range r.photos {
		if p.SeriesID == seriesID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) GetLike(photoID, userID int) (*models.Like, error) {
	for _, l := range r.likes {
		if l.PhotoID == photoID && l.UserID == userID {
			return l, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (r *testRepo) AddLike(photoID, userID int) (int, error) {
	for _, l := range r.likes {
		if l.PhotoID == photoID && l.UserID == userID {
			return 0, repository.ErrDuplicateRecord
		}
	}
	like := &models.Like{ID: r.nextLikeID, PhotoID: photoID, UserID: userID}
	r.nextLikeID++
	r.likes = append(r.likes, like)
	return like.ID, nil
}

func (r *testRepo) RemoveLike(likeID int) error {
	for i, l := range r.likes {
		if l.ID == likeID {
			r.likes = append(r.likes[:i], r.likes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *testRepo) IncrementLikeCount(photoID int) error {
	for _, p := range r.photos {
		if p.ID == photoID {
			p.CountLike++
		}
	}
	return nil
}

func (r *testRepo) DecrementLikeCount(photoID int) error {
	for _, p := range r.photos {
		if p.ID == photoID && p.CountLike > 0 {
			p.CountLike--
		}
	}
	return nil
}

func (r *testRepo) GetRating(seriesID, userID int) (*models.Rating, error) {
	for _, rt := range r.ratings {
		if rt.SeriesID == seriesID && rt.UserID == userID {
			return rt, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (r *testRepo) AddRating(seriesID, userID, value int) error {
	for _, rt := range r.ratings {
		if rt.SeriesID == seriesID && rt.UserID == userID {
			return repository.ErrDuplicateRecord
		}
	}
	r.ratings = append(r.ratings, &models.Rating{
		ID:       r.nextRatingID,
		SeriesID: seriesID,
		UserID:   userID,
		Value:    value,
	})
	r.nextRatingID++
	return nil
}

func (r *testRepo) UpdateRating(ratingID, value int) error {
	for _, rt := range r.ratings {
		if rt.ID == ratingID {
			rt.Value = value
		}
	}
	return nil
}

func (r *testRepo) RecalculateSeriesRating(seriesID int) error {
	var sum, count int
	for _, rt := range r.ratings {
		if rt.SeriesID == seriesID {
			sum += rt.Value
			count++
		}
	}
	for _, s := range r.series {
		if s.ID == seriesID {
			s.CountRatingGiver = count
			if count == 0 {
				s.CountRating = 0
			} else {
				s.CountRating = float64(sum) / float64(count)
			}
		}
	}
	return nil
}
