package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	PasswordSchemeSHA256 = "sha256"
	PasswordSchemeBcrypt = "bcrypt"
)

type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	Logger   LoggerConfig
}

type DatabaseConfig struct {
	// Path is the SQLite file holding every table.
	Path string
	// BusyTimeoutMS is how long a statement waits on a locked file.
	BusyTimeoutMS int
}

type AuthConfig struct {
	// PasswordScheme selects how new digests are produced. Existing digests
	// of either scheme always verify.
	PasswordScheme    string
	MinPasswordLength int
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

func LoadConfig() Config {
	if os.Getenv("INVENTORY_ENV") == "dev" {
		godotenv.Load()
	}

	return Config{
		Database: DatabaseConfig{
			Path:          getEnv("INVENTORY_DB_PATH", "inventory.db"),
			BusyTimeoutMS: getEnvInt("INVENTORY_DB_BUSY_TIMEOUT_MS", 5000),
		},
		Auth: AuthConfig{
			PasswordScheme:    strings.ToLower(getEnv("INVENTORY_PASSWORD_SCHEME", PasswordSchemeSHA256)),
			MinPasswordLength: getEnvInt("INVENTORY_MIN_PASSWORD_LENGTH", 4),
		},
		Logger: LoggerConfig{
			Level:    getEnv("INVENTORY_LOG_LEVEL", "info"),
			Encoding: getEnv("INVENTORY_LOG_ENCODING", "console"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		value, err := strconv.Atoi(strings.TrimSpace(valueStr))
		if err != nil {
			return defaultValue
		}
		return value
	}
	return defaultValue
}
