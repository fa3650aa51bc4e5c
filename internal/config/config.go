package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Common
	Environment string
	LogLevel    string

	// Indicator parameters
	Analysis AnalysisConfig

	// HTTP API
	API APIConfig
}

// AnalysisConfig holds the indicator parameters for one analysis pass
type AnalysisConfig struct {
	SMAShortPeriod      int
	SMALongPeriod       int
	RSIPeriod           int
	MACDFastPeriod      int
	MACDSlowPeriod      int
	BollingerPeriod     int
	BollingerMultiplier float64
}

// APIConfig holds REST API configuration
type APIConfig struct {
	Port         int
	RateLimitRPS int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Analysis: AnalysisConfig{
			SMAShortPeriod:      getEnvAsInt("SMA_SHORT_PERIOD", 3),
			SMALongPeriod:       getEnvAsInt("SMA_LONG_PERIOD", 5),
			RSIPeriod:           getEnvAsInt("RSI_PERIOD", 14),
			MACDFastPeriod:      getEnvAsInt("MACD_FAST_PERIOD", 12),
			MACDSlowPeriod:      getEnvAsInt("MACD_SLOW_PERIOD", 26),
			BollingerPeriod:     getEnvAsInt("BOLLINGER_PERIOD", 20),
			BollingerMultiplier: getEnvAsFloat("BOLLINGER_MULTIPLIER", 2.0),
		},
		API: APIConfig{
			Port:         getEnvAsInt("API_PORT", 8090),
			RateLimitRPS: getEnvAsInt("API_RATE_LIMIT_RPS", 100),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	a := c.Analysis
	for name, period := range map[string]int{
		"SMA_SHORT_PERIOD": a.SMAShortPeriod,
		"SMA_LONG_PERIOD":  a.SMALongPeriod,
		"RSI_PERIOD":       a.RSIPeriod,
		"MACD_FAST_PERIOD": a.MACDFastPeriod,
		"MACD_SLOW_PERIOD": a.MACDSlowPeriod,
		"BOLLINGER_PERIOD": a.BollingerPeriod,
	} {
		if period < 1 {
			return fmt.Errorf("%s must be at least 1, got %d", name, period)
		}
	}
	if a.SMAShortPeriod >= a.SMALongPeriod {
		return fmt.Errorf("SMA_SHORT_PERIOD (%d) must be less than SMA_LONG_PERIOD (%d)", a.SMAShortPeriod, a.SMALongPeriod)
	}
	if a.MACDFastPeriod >= a.MACDSlowPeriod {
		return fmt.Errorf("MACD_FAST_PERIOD (%d) must be less than MACD_SLOW_PERIOD (%d)", a.MACDFastPeriod, a.MACDSlowPeriod)
	}
	if a.BollingerMultiplier <= 0 {
		return fmt.Errorf("BOLLINGER_MULTIPLIER must be positive, got %v", a.BollingerMultiplier)
	}
	if c.API.Port < 1 || c.API.Port > 65535 {
		return fmt.Errorf("API_PORT must be a valid port, got %d", c.API.Port)
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
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return floatValue
}
