package dbrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"backend/internal/models"
	"backend/internal/repository"

	"github.com/jackc/pgconn"
	"golang.org/x/crypto/bcrypt"
)

// PostgresDBRepo is the data access gateway. It owns the injected connection
// pool for its lifetime and exposes one method per application use case.
type PostgresDBRepo struct {
	DB *sql.DB
}

const dbTimeout = time.Second * 3

func (m *PostgresDBRepo) Connection() *sql.DB {
	return m.DB
}

// uniqueViolation reports whether err is a Postgres unique constraint error.
// Constraint hits are the authoritative "already exists" signal; the
// existence pre-checks alone leave a race window between check and insert.
func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CreateUser registers a new user: hashes the password, generates an API key
// and inserts the row. The outcome is reported through the registration
// status vocabulary rather than an error, except for infrastructure failures.
func (m *PostgresDBRepo) CreateUser(name, email, password string) (models.RegistrationStatus, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	// check if the email is already taken
	exists, err := m.UserExists(email)
	if err != nil {
		return models.UserCreatedFailed, err
	}
	if exists {
		return models.UserAlreadyExisted, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.UserCreatedFailed, fmt.Errorf("hashing password: %w", err)
	}

	apiKey, err := GenerateAPIKey()
	if err != nil {
		return models.UserCreatedFailed, err
	}

	query := `
		INSERT INTO user_regular (name, email, password_hash, api_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	now := time.Now()
	_, err = m.DB.ExecContext(ctx, query, name, email, string(hashedPassword), apiKey, now, now)
	if err != nil {
		// a concurrent registration can slip past the pre-check; the unique
		// index on email catches it here
		if uniqueViolation(err) {
			return models.UserAlreadyExisted, nil
		}
		return models.UserCreatedFailed, fmt.Errorf("inserting user: %w", err)
	}

	return models.UserCreatedSuccessfully, nil
}

// UserExists reports whether a user with the given email is registered.
func (m *PostgresDBRepo) UserExists(email string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	query := `SELECT COUNT(*) FROM user_regular WHERE email = $1`

	var count int
	err := m.DB.QueryRowContext(ctx, query, email).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking user existence: %w", err)
	}
	return count > 0, nil
}

// ValidAPIKey reports whether the API key belongs to a registered user.
func (m *PostgresDBRepo) ValidAPIKey(apiKey string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	query := `SELECT COUNT(*) FROM user_regular WHERE api_key = $1`

	var count int
	err := m.DB.QueryRowContext(ctx, query, apiKey).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking api key: %w", err)
	}
	return count > 0, nil
}

// CheckLogin verifies the supplied password against the stored hash for the
// email. An unknown email is not an error, just a failed login.
func (m *PostgresDBRepo) CheckLogin(email, password string) (bool, error) {
	user, err := m.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.PasswordMatches(password)
}

// GetUserIDByAPIKey resolves an API key to the owning user's id.
func (m *PostgresDBRepo) GetUserIDByAPIKey(apiKey string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	query := `SELECT id_user_regular FROM user_regular WHERE api_key = $1`

	var id int
	err := m.DB.QueryRowContext(ctx, query, apiKey).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, repository.ErrRecordNotFound
		}
		return 0, fmt.Errorf("getting user by api key: %w", err)
	}
	return id, nil
}

// GetUserByEmail returns the user registered under the given email.
func (m *PostgresDBRepo) GetUserByEmail(email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	query := `
		SELECT id_user_regular, name, email, password_hash, api_key, created_at, updated_at
		FROM user_regular
		WHERE email = $1`

	var user models.User
	row := m.DB.QueryRowContext(ctx, query, email)

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.APIKey,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrRecordNotFound
		}
		return nil, fmt.Errorf("getting user by email: %w", err)
	}

	return &user, nil
}

// GetUserByID returns the user with the given id.
func (m *PostgresDBRepo) GetUserByID(id int) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	query := `
		SELECT id_user_regular, name, email, password_hash, api_key, created_at, updated_at
		FROM user_regular
		WHERE id_user_regular = $1`

	var user models.User
	row := m.DB.QueryRowContext(ctx, query, id)

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.APIKey,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrRecordNotFound
		}
		return nil, fmt.Errorf("getting user by id: %w", err)
	}

	return &user, nil
}

// AllTvSeries returns every series, each annotated with the given user's
// collection status when the user has added it. No ordering is imposed
// beyond series id; callers wanting a different order must sort themselves.
func (m *PostgresDBRepo) AllTvSeries(userID int) ([]*models.TvSeries, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	query := `
		SELECT ts.id_tv_series, ts.tv_series_name, ts.imdb_link, ts.count_like,
			ts.count_rating, ts.count_rating_giver, ts.default_image, c.status
		FROM tv_series ts
		LEFT JOIN collection c
			ON c.id_tv_series = ts.id_tv_series AND c.id_user_regular = $1
		ORDER BY ts.id_tv_series`

	rows, err := m.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tv series: %w", err)
	}
	defer rows.Close()

	var seriesList []*models.TvSeries

	for rows.Next() {
		var series models.TvSeries
		var status sql.NullInt64
		err := rows.Scan(
			&series.ID,
			&series.Name,
			&series.ImdbLink,
			&series.CountLike,
			&series.CountRating,
			&series.CountRatingGiver,
			&series.DefaultImage,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning tv series: %w", err)
		}
		if status.Valid {
			s := int(status.Int64)
			series.CollectionStatus = &s
		}
		seriesList = append(seriesList, &series)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing tv series: %w", err)
	}

	return seriesList, nil
}

// GetCollection returns only the series the given user has added.
func (m *PostgresDBRepo) GetCollection(userID int) ([]*models.TvSeries, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	query := `
		SELECT ts.id_tv_series, ts.tv_series_name, ts.imdb_link, ts.count_like,
			ts.count_rating, ts.count_rating_giver, ts.default_image, c.status
		FROM tv_series ts
		JOIN collection c ON c.id_tv_series = ts.id_tv_series
		WHERE c.id_user_regular = $1
		ORDER BY ts.id_tv_series`

	rows, err := m.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing collection: %w", err)
	}
	defer rows.Close()

	var seriesList []*models.TvSeries

	for rows.Next() {
		var series models.TvSeries
		var status sql.NullInt64
		err := rows.Scan(
			&series.ID,
			&series.Name,
			&series.ImdbLink,
			&series.CountLike,
			&series.CountRating,
			&series.CountRatingGiver,
			&series.DefaultImage,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning collection: %w", err)
		}
		if status.Valid {
			s := int(status.Int64)
			series.CollectionStatus = &s
		}
		seriesList = append(seriesList, &series)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing collection: %w", err)
	}

	return seriesList, nil
}

// OneTvSeries returns a single series by id.
func (m *PostgresDBRepo) OneTvSeries(id int) (*models.TvSeries, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	query := `
		SELECT id_tv_series, tv_series_name, imdb_link, count_like,
			count_rating, count_rating_giver, default_image
		FROM tv_series
		WHERE id_tv_series = $1`

	var series models.TvSeries
	row := m.DB.QueryRowContext(ctx, query, id)

	err := row.Scan(
		&series.ID,
		&series.Name,
		&series.ImdbLink,
		&series.CountLike,
		&series.CountRating,
		&series.CountRatingGiver,
		&series.DefaultImage,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrRecordNotFound
		}
		return nil, fmt.Errorf("getting tv series: %w", err)
	}

	return &series, nil
}

// AddToCollection adds a series to the user's collection. A second add of the
// same series surfaces as ErrDuplicateRecord via the unique index.
func (m *PostgresDBRepo) AddToCollection(seriesID, userID int) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	query := `
		INSERT INTO collection (id_user_regular, id_tv_series, status)
		VALUES ($1, $2, $3)`

	_, err := m.DB.ExecContext(ctx, query, userID, seriesID, 1)
	if err != nil {
		if uniqueViolation(err) {
			return repository.ErrDuplicateRecord
		}
		return fmt.Errorf("adding to collection: %w", err)
	}
	return nil
}

// AllPhotosOfSeries returns the photos attached to a series.
func (m *PostgresDBRepo) AllPhotosOfSeries(seriesID int) ([]*models.Photo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	query := `
		SELECT id_photo, id_tv_series, image, count_like
		FROM photo
		WHERE id_tv_series = $1
		ORDER BY id_photo`

	rows, err := m.DB.QueryContext(ctx, query, seriesID)
	if err != nil {
		return nil, fmt.Errorf("listing photos: %w", err)
	}
	defer rows.Close()

	var photos []*models.Photo

	for rows.Next() {
		var photo models.Photo
		err := rows.Scan(&photo.ID, &photo.SeriesID, &photo.Image, &photo.CountLike)
		if err != nil {
			return nil, fmt.Errorf("scanning photo: %w", err)
		}
		photos = append(photos, &photo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing photos: %w", err)
	}

	return photos, nil
}

// GetLike returns the like the user placed on the photo, or
// ErrRecordNotFound when the user has not liked it.
func (m *PostgresDBRepo) GetLike(photoID, userID int) (*models.Like, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	query := `
		SELECT id_like, id_photo, id_user_regular
		FROM like_photo
		WHERE id_photo = $1 AND id_user_regular = $2`

	var like models.Like
	err := m.DB.QueryRowContext(ctx, query, photoID, userID).Scan(&like.ID, &like.PhotoID, &like.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrRecordNotFound
		}
		return nil, fmt.Errorf("getting like: %w", err)
	}
	return &like, nil
}

// AddLike records that the user liked the photo and returns the new like id.
// The aggregate counter on the photo row is maintained separately by
// IncrementLikeCount.
func (m *PostgresDBRepo) AddLike(photoID, userID int) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	query := `
		INSERT INTO like_photo (id_photo, id_user_regular)
		VALUES ($1, $2)
		RETURNING id_like`

	var id int
	err := m.DB.QueryRowContext(ctx, query, photoID, userID).Scan(&id)
	if err != nil {
		if uniqueViolation(err) {
			return 0, repository.ErrDuplicateRecord
		}
		return 0, fmt.Errorf("adding like: %w", err)
	}
	return id, nil
}

// RemoveLike deletes a like row by its own id.
func (m *PostgresDBRepo) RemoveLike(likeID int) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	query := `DELETE FROM like_photo WHERE id_like = $1`

	_, err := m.DB.ExecContext(ctx, query, likeID)
	if err != nil {
		return fmt.Errorf("removing like: %w", err)
	}
	return nil
}

// IncrementLikeCount bumps the photo's aggregate like counter by one.
func (m *PostgresDBRepo) IncrementLikeCount(photoID int) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	query := `
		UPDATE photo
		SET count_like = count_like + 1
		WHERE id_photo = $1`

	_, err := m.DB.ExecContext(ctx, query, photoID)
	if err != nil {
		return fmt.Errorf("incrementing like count: %w", err)
	}
	return nil
}

// DecrementLikeCount lowers the photo's aggregate like counter by one.
// The counter never goes below zero.
func (m *PostgresDBRepo) DecrementLikeCount(photoID int) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	query := `
		UPDATE photo
		SET count_like = count_like - 1
		WHERE id_photo = $1 AND count_like > 0`

	_, err := m.DB.ExecContext(ctx, query, photoID)
	if err != nil {
		return fmt.Errorf("decrementing like count: %w", err)
	}
	return nil
}

// GetRating returns the rating the user gave the series, or
// ErrRecordNotFound when the user has not rated it yet.
func (m *PostgresDBRepo) GetRating(seriesID, userID int) (*models.Rating, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	query := `
		SELECT id_rating, id_tv_series, id_user_regular, value_rating
		FROM rating
		WHERE id_tv_series = $1 AND id_user_regular = $2`

	var rating models.Rating
	err := m.DB.QueryRowContext(ctx, query, seriesID, userID).Scan(
		&rating.ID,
		&rating.SeriesID,
		&rating.UserID,
		&rating.Value,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrRecordNotFound
		}
		return nil, fmt.Errorf("getting rating: %w", err)
	}
	return &rating, nil
}

// AddRating inserts the user's rating for a series.
func (m *PostgresDBRepo) AddRating(seriesID, userID, value int) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	query := `
		INSERT INTO rating (id_tv_series, id_user_regular, value_rating)
		VALUES ($1, $2, $3)`

	_, err := m.DB.ExecContext(ctx, query, seriesID, userID, value)
	if err != nil {
		if uniqueViolation(err) {
			return repository.ErrDuplicateRecord
		}
		return fmt.Errorf("adding rating: %w", err)
	}
	return nil
}

// UpdateRating changes the value of an existing rating row.
func (m *PostgresDBRepo) UpdateRating(ratingID, value int) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	query := `
		UPDATE rating
		SET value_rating = $1
		WHERE id_rating = $2`

	_, err := m.DB.ExecContext(ctx, query, value, ratingID)
	if err != nil {
		return fmt.Errorf("updating rating: %w", err)
	}
	return nil
}

// RecalculateSeriesRating recomputes the series' denormalized aggregate
// rating from the rating table: count_rating holds the mean value and
// count_rating_giver the number of ratings. Recomputing from source rows in
// a single statement keeps the aggregate consistent with the ratings no
// matter how they were added or updated.
func (m *PostgresDBRepo) RecalculateSeriesRating(seriesID int) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	query := `
		UPDATE tv_series
		SET count_rating = COALESCE(
				(SELECT AVG(value_rating)::double precision
				 FROM rating
				 WHERE rating.id_tv_series = tv_series.id_tv_series), 0),
			count_rating_giver =
				(SELECT COUNT(*)
				 FROM rating
				 WHERE rating.id_tv_series = tv_series.id_tv_series)
		WHERE id_tv_series = $1`

	_, err := m.DB.ExecContext(ctx, query, seriesID)
	if err != nil {
		return fmt.Errorf("recalculating series rating: %w", err)
	}
	return nil
}
