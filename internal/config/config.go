// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
// API 키와 Kisan 카드 번호는 소스에 두지 않고 환경변수(.env)로만 받는다.
type Config struct {
	Port      string
	LogLevel  string
	UsersFile string
	DBPath    string

	KisanCardNumber string
	JWTSecret       string
	TokenTTL        time.Duration
	SessionTTL      time.Duration
	PasswordHasher  string

	LLM     LLMConfig
	Weather WeatherConfig
	Voice   VoiceConfig

	CropDatasetPath    string
	RateLimitPerMinute int
}

type LLMConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type WeatherConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type VoiceConfig struct {
	CredentialsFile string
	LanguageCode    string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		UsersFile: getEnv("USERS_FILE", "users.json"),
		DBPath:    getEnv("DB_PATH", "./agrimind.db"),

		KisanCardNumber: os.Getenv("KISAN_CARD_NUMBER"),
		JWTSecret:       os.Getenv("JWT_SECRET_KEY"),
		TokenTTL:        getEnvDuration("TOKEN_TTL", 0),
		SessionTTL:      getEnvDuration("SESSION_TTL", 0),
		PasswordHasher:  strings.ToLower(getEnv("PASSWORD_HASHER", "sha256")),

		LLM: LLMConfig{
			APIKey:  os.Getenv("OPENROUTER_API_KEY"),
			BaseURL: getEnv("LLM_BASE_URL", "https://openrouter.ai/api/v1"),
			Model:   getEnv("LLM_MODEL", "openai/gpt-4"),
			Timeout: getEnvDuration("LLM_TIMEOUT", 60*time.Second),
		},
		Weather: WeatherConfig{
			APIKey:  os.Getenv("WEATHER_API_KEY"),
			BaseURL: getEnv("WEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5/weather"),
			Timeout: getEnvDuration("WEATHER_TIMEOUT", 10*time.Second),
		},
		Voice: VoiceConfig{
			CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
			LanguageCode:    getEnv("VOICE_LANGUAGE", "en-IN"),
		},

		CropDatasetPath:    os.Getenv("CROP_DATASET_PATH"),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.UsersFile == "" {
		return fmt.Errorf("USERS_FILE cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if len(c.KisanCardNumber) != 12 {
		return fmt.Errorf("KISAN_CARD_NUMBER must be a 12 digit number")
	}
	if _, err := strconv.ParseUint(c.KisanCardNumber, 10, 64); err != nil {
		return fmt.Errorf("KISAN_CARD_NUMBER must be a 12 digit number")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET_KEY cannot be empty")
	}
	if c.PasswordHasher != "sha256" && c.PasswordHasher != "bcrypt" {
		return fmt.Errorf("PASSWORD_HASHER must be sha256 or bcrypt")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be > 0")
	}
	return nil
}

// VoiceEnabled reports whether Google speech credentials are configured.
func (c *Config) VoiceEnabled() bool {
	return c.Voice.CredentialsFile != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
