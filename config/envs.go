package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	BoardWidth  int   // Default number of columns for a new board
	BoardHeight int   // Default number of rows for a new board
	BoardMines  int   // Default number of mines for a new board
	MaxBoards   int   // Maximum number of live boards, 0 for unlimited
	Seed        int64 // Seed for mine layouts, 0 for time-based layouts
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		BoardWidth:  getEnvAsIntWithDefault("SWEEPER_WIDTH", 9),
		BoardHeight: getEnvAsIntWithDefault("SWEEPER_HEIGHT", 9),
		BoardMines:  getEnvAsIntWithDefault("SWEEPER_MINES", 10),
		MaxBoards:   getEnvAsIntWithDefault("SWEEPER_MAX_BOARDS", 1),
		Seed:        int64(getEnvAsIntWithDefault("SWEEPER_SEED", 0)),
	}
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer,
// falling back to defaultValue when it is not set. A value that cannot be parsed is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
