package config

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fzambone/event-attendance/internal/models"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// AdminPasswordHash is the bcrypt hash of the single shared admin
	// secret. SessionSecret signs the session cookie.
	AdminPasswordHash string
	SessionSecret     string
	Environment       string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		Environment:   getEnvWithDefault("ENVIRONMENT", "development"),
	}

	hash, err := loadAdminPasswordHash()
	if err != nil {
		return nil, err
	}
	cfg.AdminPasswordHash = hash

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	return cfg, nil
}

// loadAdminPasswordHash prefers a pre-hashed secret; a plain
// ADMIN_PASSWORD is hashed once at startup so the comparison path is the
// same either way. An empty result is allowed: login then reports a
// server configuration error instead of refusing to boot.
func loadAdminPasswordHash() (string, error) {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return hash, nil
	}
	plain := os.Getenv("ADMIN_PASSWORD")
	if plain == "" {
		return "", nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash ADMIN_PASSWORD: %v", err)
	}
	return string(hashed), nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Event{}, &models.Confirmation{}); err != nil {
		return nil, err
	}

	return db, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
