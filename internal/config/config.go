package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Game    GameConfig
	Store   StoreConfig
	Deposit DepositConfig
	Logging LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	Host string
	Env  string // "development" or "production"
}

// GameConfig holds game-related configuration
type GameConfig struct {
	MinPlayers        int
	MaxPlayers        int
	MaxRounds         int
	RoundTimerSeconds int
	HandSize          int
	AdvanceDelay      time.Duration
}

// StoreConfig selects and configures the persistence backend
type StoreConfig struct {
	Driver        string // "memory" or "redis"
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// DepositConfig holds buy-in related configuration
type DepositConfig struct {
	Required        bool
	AmountWei       string
	TreasuryAddress string
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// Load loads configuration from environment variables with defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "0.0.0.0"),
			Env:  getEnv("ENV", "development"),
		},
		Game: GameConfig{
			MinPlayers:        getEnvInt("MIN_PLAYERS", 2),
			MaxPlayers:        getEnvInt("MAX_PLAYERS", 8),
			MaxRounds:         getEnvInt("MAX_ROUNDS", 5),
			RoundTimerSeconds: getEnvInt("ROUND_TIMER_SECONDS", 90),
			HandSize:          getEnvInt("HAND_SIZE", 7),
			AdvanceDelay:      time.Duration(getEnvInt("ADVANCE_DELAY_SECONDS", 5)) * time.Second,
		},
		Store: StoreConfig{
			Driver:        getEnv("STORE_DRIVER", "memory"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
		},
		Deposit: DepositConfig{
			Required:        getEnvBool("DEPOSIT_REQUIRED", false),
			AmountWei:       getEnv("DEPOSIT_AMOUNT_WEI", "1000000000"),
			TreasuryAddress: getEnv("TREASURY_ADDRESS", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// GetAddr returns the server address in host:port format
func (c *Config) GetAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// LogLevel translates the configured level into a slog level
func (c *Config) LogLevel() slog.Level {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// getEnv returns an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns an environment variable as an integer or a default value
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool returns an environment variable as a boolean or a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
