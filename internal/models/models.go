package models

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// RegistrationStatus is the closed set of outcomes for user registration.
type RegistrationStatus int

const (
	UserAlreadyExisted RegistrationStatus = iota + 1
	UserCreatedSuccessfully
	UserCreatedFailed
)

func (s RegistrationStatus) String() string {
	switch s {
	case UserAlreadyExisted:
		return "user already existed"
	case UserCreatedSuccessfully:
		return "user created successfully"
	case UserCreatedFailed:
		return "user creation failed"
	default:
		return "unknown"
	}
}

// Type for User
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	APIKey       string    `json:"api_key"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// PasswordMatches verifies a plain text password against the stored hash
func (u *User) PasswordMatches(plainText string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plainText))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			// invalid password
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Type for TvSeries
// CollectionStatus is only populated by queries that join against the
// user's collection; it stays nil for series the user has not added.
type TvSeries struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	ImdbLink         string  `json:"imdb_link,omitempty"`
	CountLike        int     `json:"count_like"`
	CountRating      float64 `json:"count_rating"`
	CountRatingGiver int     `json:"count_rating_giver"`
	DefaultImage     string  `json:"default_image"`
	CollectionStatus *int    `json:"collection_status,omitempty"`
}

// Type for Photo
type Photo struct {
	ID        int    `json:"id"`
	SeriesID  int    `json:"series_id"`
	Image     string `json:"image"`
	CountLike int    `json:"count_like"`
}

// Type for Like
type Like struct {
	ID      int `json:"id"`
	PhotoID int `json:"photo_id"`
	UserID  int `json:"user_id"`
}

// Type for Rating
type Rating struct {
	ID       int `json:"id"`
	SeriesID int `json:"series_id"`
	UserID   int `json:"user_id"`
	Value    int `json:"value"`
}
