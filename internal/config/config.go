package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/hadith"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/reflection"
)

// Config holds environment-based settings
type Config struct {
	Environment   string
	LogLevel      string
	ServerAddress string

	HadithBaseURL string
	HadithTimeout time.Duration

	// GroqAPIKey may be empty; reflection requests then fail with a config error.
	GroqAPIKey            string
	GroqBaseURL           string
	GroqModel             string
	ReflectionCount       int
	ReflectionTemperature float32

	// MQTTBrokerURL empty disables broadcasting to screens.
	MQTTBrokerURL string
	MQTTClientID  string
	MQTTTopic     string
}

// Load reads a .env file if present, then configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv reads configuration from environment variables only
func FromEnv() (*Config, error) {
	cfg := &Config{
		Environment:   getenv("APP_ENV", "production"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		ServerAddress: getenv("SERVER_ADDRESS", ":8080"),

		HadithBaseURL: getenv("HADITH_API_BASE_URL", hadith.DefaultBaseURL),

		GroqAPIKey:  getenv("GROQ_API_KEY", os.Getenv("EXPO_PUBLIC_GROQ_API_KEY")),
		GroqBaseURL: getenv("GROQ_BASE_URL", reflection.DefaultBaseURL),
		GroqModel:   getenv("GROQ_MODEL", reflection.DefaultModel),

		MQTTBrokerURL: os.Getenv("MQTT_BROKER_URL"),
		MQTTClientID:  getenv("MQTT_CLIENT_ID", "daily-islamic-wisdom"),
		MQTTTopic:     getenv("MQTT_TOPIC", "screens/wisdom"),
	}

	if v := os.Getenv("HADITH_API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("HADITH_API_TIMEOUT: invalid duration %q", v)
		}
		cfg.HadithTimeout = d
	}

	cfg.ReflectionCount = reflection.DefaultCount
	if v := os.Getenv("REFLECTION_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("REFLECTION_COUNT: must be a positive integer, got %q", v)
		}
		cfg.ReflectionCount = n
	}

	cfg.ReflectionTemperature = reflection.DefaultTemperature
	if v := os.Getenv("REFLECTION_TEMPERATURE"); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil || f <= 0 || f > 2 {
			return nil, fmt.Errorf("REFLECTION_TEMPERATURE: must be in (0, 2], got %q", v)
		}
		cfg.ReflectionTemperature = float32(f)
	}

	return cfg, nil
}

// Development reports whether APP_ENV selects development mode.
func (c *Config) Development() bool {
	return c.Environment == "development"
}

// Reflection returns the reflection generator settings.
func (c *Config) Reflection() reflection.Config {
	return reflection.Config{
		APIKey:      c.GroqAPIKey,
		BaseURL:     c.GroqBaseURL,
		Model:       c.GroqModel,
		Temperature: c.ReflectionTemperature,
		Count:       c.ReflectionCount,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
