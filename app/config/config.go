package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// defaultGroupInvite is the Madarsa WhatsApp group used for broadcasts when
// WHATSAPP_GROUP_LINK is not set.
const defaultGroupInvite = "https://chat.whatsapp.com/DORRpChWn6V3J7erUo102N"

type Config struct {
	DB            *sql.DB
	Port          string
	JWTSecret     string
	WhatsAppGroup string
}

var AppConfig *Config

// Load reads .env (if present) and environment variables, opens the
// database pool and pings it. The process cannot serve anything without a
// database, so a failed connection is fatal.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	psqlInfo := os.Getenv("DATABASE_URL")
	if psqlInfo == "" {
		host := envOr("DB_HOST", "localhost")
		port := envOr("DB_PORT", "5432")
		user := envOr("DB_USER", "postgres")
		password := os.Getenv("DB_PASSWORD")
		dbname := envOr("DB_NAME", "madarsa")

		psqlInfo = fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable",
			host, port, user, dbname)
		if password != "" {
			psqlInfo += " password=" + password
		}
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	AppConfig = &Config{
		DB:            db,
		Port:          envOr("PORT", "5000"),
		JWTSecret:     envOr("JWT_SECRET", "madarsa-dev-secret"),
		WhatsAppGroup: envOr("WHATSAPP_GROUP_LINK", defaultGroupInvite),
	}
	log.Println("Database connected successfully")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

// JWTSecret returns the key used to sign and verify API tokens.
func JWTSecret() []byte {
	return []byte(AppConfig.JWTSecret)
}
