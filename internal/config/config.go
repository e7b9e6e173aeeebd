package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config chứa toàn bộ application configuration.
// Populated from environment variables.
type Config struct {
	App       AppConfig
	Backend   BackendConfig
	Redis     RedisConfig
	OAuth     OAuthConfig
	VoiceChat VoiceChatConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	// CookieSecure controls the Secure flag on the session cookie.
	CookieSecure bool
}

// BackendConfig points the client at the Mutqin REST backend.
// Each resource group gets its own timeout: auth/profile calls are quick,
// session booking and dashboard queries tolerate slower responses.
type BackendConfig struct {
	BaseURL         string
	AuthTimeout     time.Duration
	ProfileTimeout  time.Duration
	SessionsTimeout time.Duration
	TutorsTimeout   time.Duration
	ProgressTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
	// Enabled switches the session store from in-memory to Redis.
	Enabled bool
}

type OAuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	// RedirectURL is this app's own callback, registered with the provider.
	RedirectURL string
}

type VoiceChatConfig struct {
	URL string
	// PollInterval drives the background availability probe.
	PollInterval time.Duration
}

// Load đọc config từ environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:         getEnv("APP_NAME", "Mutqin Web Client"),
			Environment:  getEnv("APP_ENV", "development"),
			Port:         getEnv("APP_PORT", "3000"),
			Version:      getEnv("APP_VERSION", "1.0.0"),
			CookieSecure: getEnv("APP_ENV", "development") == "production",
		},
		Backend: BackendConfig{
			BaseURL:         getEnv("BACKEND_BASE_URL", "https://mutqin-springboot-backend-1.onrender.com"),
			AuthTimeout:     getEnvDuration("BACKEND_AUTH_TIMEOUT", 10*time.Second),
			ProfileTimeout:  getEnvDuration("BACKEND_PROFILE_TIMEOUT", 10*time.Second),
			SessionsTimeout: getEnvDuration("BACKEND_SESSIONS_TIMEOUT", 15*time.Second),
			TutorsTimeout:   getEnvDuration("BACKEND_TUTORS_TIMEOUT", 15*time.Second),
			ProgressTimeout: getEnvDuration("BACKEND_PROGRESS_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Enabled:  getEnvBool("REDIS_ENABLED", false),
		},
		OAuth: OAuthConfig{
			GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:        getEnv("GOOGLE_REDIRECT_URL", "http://localhost:3000/oauth/google/callback"),
		},
		VoiceChat: VoiceChatConfig{
			URL:          getEnv("VOICE_CHAT_URL", "https://mahmoudgomaa8545-tasmee3-mutqin.hf.space/"),
			PollInterval: getEnvDuration("VOICE_CHAT_POLL_INTERVAL", 5*time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không.
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL must not be empty")
	}

	if c.App.Environment == "production" {
		if !c.Redis.Enabled {
			fmt.Println("WARNING: REDIS_ENABLED is false - sessions are lost on restart")
		}
		if c.OAuth.GoogleClientID == "" {
			fmt.Println("WARNING: Google OAuth not configured - social login will not work")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
