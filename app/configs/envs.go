package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string
	BaseURL    string

	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	SecretKey         string

	UploadDir     string
	UploadBaseURL string
}

func LoadEnv() ENV {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found")
	}

	env := ENV{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		Port:       os.Getenv("APP_PORT"),
		BaseURL:    os.Getenv("BASE_URL"),

		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		SecretKey:         os.Getenv("SECRET_KEY"),

		UploadDir:     os.Getenv("UPLOAD_DIR"),
		UploadBaseURL: os.Getenv("UPLOAD_BASE_URL"),
	}

	if env.Port == "" {
		env.Port = ":8000"
	}
	if env.BaseURL == "" {
		env.BaseURL = "http://localhost:8000"
	}
	if env.UploadDir == "" {
		env.UploadDir = "static/images/products"
	}
	if env.UploadBaseURL == "" {
		env.UploadBaseURL = "/static/images/products"
	}

	return env
}
