package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"backend/internal/repository"
	"backend/internal/repository/dbrepo"

	"github.com/joho/godotenv"
)

const port = 8080

// Create Application Struct to store configuration
type application struct {
	Domain       string
	DSN          string
	DB           repository.DatabaseRepo
	auth         Auth
	JWTSecret    string
	JWTIssuer    string
	JWTAudience  string
	CookieDomain string
}

// @title TV Series Catalogue API
// @version 1.0
// @description Backend for cataloguing TV series, liking photos and rating shows.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// set application config
	var app application

	// Load values from .env, if present
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, reading config from environment")
	}

	dsn := fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=%s timezone=%s connect_timeout=%s",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_SSLMODE"),
		os.Getenv("DB_TIMEZONE"), os.Getenv("DB_CONNECT_TIMEOUT"),
	)
	app.DSN = dsn

	app.JWTSecret = os.Getenv("JWT_SECRET")
	app.JWTIssuer = os.Getenv("JWT_ISSUER")
	app.JWTAudience = os.Getenv("JWT_AUDIENCE")
	app.CookieDomain = os.Getenv("COOKIE_DOMAIN")
	app.Domain = os.Getenv("DOMAIN")

	// Connect to database
	conn, err := app.connectToDB()
	if err != nil {
		log.Fatal(err)
	}

	repo := &dbrepo.PostgresDBRepo{
		DB: conn,
	}
	app.DB = repo

	// Close the database before the main() function exits
	defer app.DB.Connection().Close()

	// Create the tables and uniqueness constraints the gateway relies on
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = repo.EnsureSchema(ctx)
	cancel()
	if err != nil {
		log.Fatal(err)
	}

	// Set Auth
	app.auth = Auth{
		Issuer:        app.JWTIssuer,
		Audience:      app.JWTAudience,
		Secret:        app.JWTSecret,
		TokenExpiry:   time.Minute * 15,
		RefreshExpiry: time.Hour * 24,
		CookiePath:    "/",
		CookieName:    "__Host-refresh_token",
		CookieDomain:  app.CookieDomain,
	}

	// Start server
	log.Printf("Starting server on port %d\n", port)

	err = http.ListenAndServe(fmt.Sprintf(":%d", port), app.routes())
	if err != nil {
		log.Fatal(err)
	}
}
