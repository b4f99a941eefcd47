package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP     string        // Host IP for the server
	RESTPort   int           // Port for the REST API
	GinMode    string        // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret  string        // Secret key for JWT signing
	JWTIssuer  string        // Issuer claim for JWTs
	MazeCols   int           // Columns of every maze
	MazeRows   int           // Rows of every maze
	MazeSeed   int64         // Base generation seed; 0 seeds from the clock
	LogLevel   string        // logrus level name
	SessionTTL time.Duration // Idle time before a session and its token expire
}

// Envs holds the application's configuration loaded from environment variables.
// It is populated by Load.
var Envs Config

// Load reads the configuration into Envs.
func Load() {
	Envs = initConfig()
}

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:     mustGetEnv("HOST_IP"),
		RESTPort:   mustGetEnvAsInt("REST_PORT"),
		GinMode:    getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:  mustGetEnv("JWT_SECRET"),
		JWTIssuer:  mustGetEnv("JWT_ISSUER"),
		MazeCols:   getEnvAsIntWithDefault("MAZE_COLS", 7),
		MazeRows:   getEnvAsIntWithDefault("MAZE_ROWS", 10),
		MazeSeed:   int64(getEnvAsIntWithDefault("MAZE_SEED", 0)),
		LogLevel:   getEnvWithDefault("LOG_LEVEL", "info"),
		SessionTTL: getEnvAsDurationWithDefault("SESSION_TTL", 24*time.Hour),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func getEnvAsDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a duration: %v", key, err)
	}
	return value
}
