package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	CORS_ORIGIN string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string

	BLOB_ENDPOINT   string
	BLOB_ACCESS_KEY string
	BLOB_SECRET_KEY string
	BLOB_BUCKET     string
	BLOB_PUBLIC_URL string
	BLOB_USE_SSL    string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")

	// Google sign-in is optional; the routes reply 500 if hit unconfigured.
	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")

	BLOB_ENDPOINT = mustEnv("BLOB_ENDPOINT")
	BLOB_ACCESS_KEY = mustEnv("BLOB_ACCESS_KEY")
	BLOB_SECRET_KEY = mustEnv("BLOB_SECRET_KEY")
	BLOB_BUCKET = getEnv("BLOB_BUCKET", "atelier-photos")
	BLOB_PUBLIC_URL = getEnv("BLOB_PUBLIC_URL", "")
	BLOB_USE_SSL = getEnv("BLOB_USE_SSL", "true")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
