package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	MarketBaseURL string
	StartPage     int
	EndPage       int
	UserAgent     string

	// PageDelayMs is the courtesy pause between successive page fetches.
	// Tests set it to 0.
	PageDelayMs     int
	HTTPTimeoutSecs int

	ThresholdPercentile float64

	AuctionAPIURL  string
	MaxConcurrency int
	MaxRetries     int

	ReportCSVPath string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "scout"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "scout123"),
		PostgresDB:       getEnv("POSTGRES_DB", "assets_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		MarketBaseURL: getEnv("MARKET_BASE_URL", "https://example-marketplace.com"),
		StartPage:     getEnvInt("START_PAGE", 1),
		EndPage:       getEnvInt("END_PAGE", 3),
		UserAgent: getEnv("USER_AGENT",
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"),

		PageDelayMs:     getEnvInt("PAGE_DELAY_MS", 1000),
		HTTPTimeoutSecs: getEnvInt("HTTP_TIMEOUT_SECS", 10),

		ThresholdPercentile: getEnvFloat("THRESHOLD_PERCENTILE", 25),

		AuctionAPIURL:  getEnv("AUCTION_API_URL", "https://your-auction-site.com/api"),
		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 3),
		MaxRetries:     getEnvInt("MAX_RETRIES", 3),

		ReportCSVPath: getEnv("REPORT_CSV_PATH", ""),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}
