// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	AI          AIConfig
	Weather     WeatherConfig
	AWS         AWSConfig
	Frontend    FrontendConfig
	I18n        I18nConfig
}

type FrontendConfig struct {
	BaseURL string
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

// AIConfig drives the generation service. An empty APIKey is valid: the
// service starts unconfigured and generation endpoints return a configuration
// error instead of calling out.
type AIConfig struct {
	APIKey         string
	TextModel      string
	ImageModel     string
	RequestTimeout int // per sub-call, in seconds
}

type WeatherConfig struct {
	BaseURL   string
	Latitude  float64
	Longitude float64
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	CloudFrontURL   string
}

type I18nConfig struct {
	DefaultLocale string
	LocalesPath   string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout: getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			// Must exceed the generation sub-call deadline or the response
			// gets cut off mid-pipeline.
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 45),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		AI: AIConfig{
			APIKey:         getEnv("GENAI_API_KEY", ""),
			TextModel:      getEnv("GENAI_TEXT_MODEL", "gemini-1.5-flash"),
			ImageModel:     getEnv("GENAI_IMAGE_MODEL", "gemini-2.0-flash-exp"),
			RequestTimeout: getEnvAsInt("GENAI_REQUEST_TIMEOUT", 30),
		},
		Weather: WeatherConfig{
			BaseURL: getEnv("WEATHER_BASE_URL", "https://api.open-meteo.com"),
			// Yilan City, where the shop is
			Latitude:  getEnvAsFloat("WEATHER_LATITUDE", 24.7570),
			Longitude: getEnvAsFloat("WEATHER_LONGITUDE", 121.7530),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "ap-northeast-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        getEnv("AWS_S3_BUCKET", "woosh-cafe-assets"),
			CloudFrontURL:   getEnv("AWS_CLOUDFRONT_URL", ""),
		},
		Frontend: FrontendConfig{
			BaseURL: getEnv("FRONTEND_BASE_URL", "http://localhost:5173"),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "zh_TW"),
			LocalesPath:   getEnv("LOCALES_PATH", "./internal/i18n/locales"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.AI.RequestTimeout <= 0 {
		return fmt.Errorf("GENAI_REQUEST_TIMEOUT must be positive")
	}

	if c.Weather.Latitude < -90 || c.Weather.Latitude > 90 {
		return fmt.Errorf("WEATHER_LATITUDE out of range")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
