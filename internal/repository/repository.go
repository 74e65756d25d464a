package repository

import (
	"backend/internal/models"
	"database/sql"
	"errors"
)

// ErrRecordNotFound is returned when a query succeeds but matches no row,
// so callers can tell "no row" apart from an execution failure.
var ErrRecordNotFound = errors.New("record not found")

// ErrDuplicateRecord is returned when an insert hits a uniqueness constraint.
var ErrDuplicateRecord = errors.New("record already exists")

type DatabaseRepo interface {
	Connection() *sql.DB // Connect to db

	// Users and authentication
	CreateUser(name, email, password string) (models.RegistrationStatus, error)
	UserExists(email string) (bool, error)
	ValidAPIKey(apiKey string) (bool, error)
	CheckLogin(email, password string) (bool, error)
	GetUserIDByAPIKey(apiKey string) (int, error)
	GetUserByEmail(email string) (*models.User, error) // get user using email
	GetUserByID(id int) (*models.User, error)          // get user using id

	// TV series and collections
	AllTvSeries(userID int) ([]*models.TvSeries, error) // every series, annotated with the user's collection status
	GetCollection(userID int) ([]*models.TvSeries, error)
	OneTvSeries(id int) (*models.TvSeries, error)
	AddToCollection(seriesID, userID int) error
	AllPhotosOfSeries(seriesID int) ([]*models.Photo, error)

	// Likes
	GetLike(photoID, userID int) (*models.Like, error)
	AddLike(photoID, userID int) (int, error)
	RemoveLike(likeID int) error
	IncrementLikeCount(photoID int) error
	DecrementLikeCount(photoID int) error

	// Ratings
	GetRating(seriesID, userID int) (*models.Rating, error)
	AddRating(seriesID, userID, value int) error
	UpdateRating(ratingID, value int) error
	RecalculateSeriesRating(seriesID int) error
}
