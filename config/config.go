package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	App     AppConfig
	GitHub  GitHubConfig
	Admin   AdminConfig
	Store   StoreConfig
	Profile ProfileConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

type AppConfig struct {
	Environment string
	Version     string
}

type GitHubConfig struct {
	Username string
	Token    string
}

type AdminConfig struct {
	Password  string
	JWTSecret string
	TokenTTL  time.Duration
}

type StoreConfig struct {
	DataFile string
}

// ProfileConfig holds the fallbacks used when the GitHub profile is
// unavailable or incomplete, plus the contact block for the resume export.
type ProfileConfig struct {
	Name     string
	Title    string
	Bio      string
	Location string
	Email    string
	Phone    string
	Website  string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: splitEnv("CORS_ORIGINS", "*"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		GitHub: GitHubConfig{
			Username: getEnv("GITHUB_USERNAME", ""),
			Token:    getEnv("GITHUB_TOKEN", ""),
		},
		Admin: AdminConfig{
			Password:  getEnv("ADMIN_PASSWORD", ""),
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  time.Duration(getEnvAsInt("TOKEN_TTL_MINUTES", 120)) * time.Minute,
		},
		Store: StoreConfig{
			DataFile: getEnv("DATA_FILE", "portfolio_data.json"),
		},
		Profile: ProfileConfig{
			Name:     getEnv("PROFILE_NAME", ""),
			Title:    getEnv("PROFILE_TITLE", "Full Stack Developer"),
			Bio:      getEnv("PROFILE_BIO", ""),
			Location: getEnv("PROFILE_LOCATION", ""),
			Email:    getEnv("PROFILE_EMAIL", ""),
			Phone:    getEnv("PROFILE_PHONE", ""),
			Website:  getEnv("PROFILE_WEBSITE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.GitHub.Username == "" {
		return fmt.Errorf("GITHUB_USERNAME is required")
	}

	if c.Admin.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}

	if c.Admin.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func splitEnv(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
