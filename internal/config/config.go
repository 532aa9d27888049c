package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For durations

	"github.com/joho/godotenv"   // For loading .env files
	"github.com/sirupsen/logrus" // For log levels
)

// Defaults applied when a variable is unset or invalid
const (
	defaultAppPort        = "8080"
	defaultDBPort         = "3306"
	defaultLeaderboardTTL = 30 * time.Second
	defaultLogLevel       = logrus.InfoLevel
)

// Config holds the application configuration
type Config struct {
	AppPort        string        // Application port
	DBUser         string        // Database user
	DBPassword     string        // Database password
	DBHost         string        // Database host
	DBPort         string        // Database port
	DBName         string        // Database name
	RedisAddr      string        // Redis server address, empty disables the leaderboard cache
	RedisPass      string        // Redis password
	RedisDB        int           // Redis database number
	AMQPURL        string        // RabbitMQ URL, empty disables transfer events
	LeaderboardTTL time.Duration // Leaderboard cache TTL
	LogLevel       logrus.Level  // Log level
	IsProd         bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:        getEnv("APP_PORT", defaultAppPort), // Application port
		DBUser:         os.Getenv("DB_USER"),               // Database user
		DBPassword:     os.Getenv("DB_PASSWORD"),           // Database password
		DBHost:         os.Getenv("DB_HOST"),               // Database host
		DBPort:         getEnv("DB_PORT", defaultDBPort),   // Database port
		DBName:         os.Getenv("DB_NAME"),               // Database name
		RedisAddr:      os.Getenv("REDIS_ADDR"),            // Redis server address
		RedisPass:      os.Getenv("REDIS_PASS"),            // Redis password
		RedisDB:        redisDB,                            // Redis database number
		AMQPURL:        os.Getenv("AMQP_URL"),              // RabbitMQ URL
		LeaderboardTTL: leaderboardTTL(),                   // Leaderboard cache TTL
		LogLevel:       logLevel(),                         // Log level
		IsProd:         os.Getenv("IS_PROD") == "true",     // Is production environment
	}
}

// DSN builds the MySQL Data Source Name
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true&loc=UTC"
}

// getEnv returns the variable or fallback when unset
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// leaderboardTTL reads LEADERBOARD_CACHE_TTL in seconds
func leaderboardTTL() time.Duration {
	secs, err := strconv.Atoi(os.Getenv("LEADERBOARD_CACHE_TTL"))
	if err != nil || secs <= 0 {
		return defaultLeaderboardTTL
	}
	return time.Duration(secs) * time.Second
}

// logLevel reads LOG_LEVEL as a logrus level name
func logLevel() logrus.Level {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return defaultLogLevel
	}
	return level
}
