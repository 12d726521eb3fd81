package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, Postgres connection details, and the breadth aggregation
// parameters.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=breadthpulse
//	POSTGRES_SSLMODE=disable
//	BREADTH_WINDOW_MINUTES=60
//	BREADTH_BUCKET_SECONDS=60
//	UNIVERSE_SECURITY_IDS=2885,11536,1333,1594,3045
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Postgres PostgresConfig // PostgreSQL connection settings
	Breadth  BreadthConfig  // Aggregation window and bucket width
	Universe UniverseConfig // Fixed security allow-list for the universe query
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// BreadthConfig controls the breadth aggregation pipeline.
//
// Fields:
//   - WindowMinutes: trailing window queried from the snapshot store (default 60).
//   - BucketSeconds: bucket width used for time grouping (default 60, i.e. 1 minute).
type BreadthConfig struct {
	WindowMinutes int
	BucketSeconds int
}

// UniverseConfig holds the fixed allow-list of security identifiers
// served by the universe endpoint. The list is configuration, not data:
// it never changes between requests.
type UniverseConfig struct {
	SecurityIDs []int64
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Constructs the PostgreSQL connection string (DSN).
//   - Parses the comma-separated universe allow-list.
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing or malformed, validateConfig() will
//     terminate the app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "breadthpulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("BREADTH_WINDOW_MINUTES", 60)
	viper.SetDefault("BREADTH_BUCKET_SECONDS", 60)

	// NSE-style numeric identifiers for a large-cap universe; override per deployment.
	viper.SetDefault("UNIVERSE_SECURITY_IDS", "2885,11536,1333,1594,3045,4963,1330,10604,17963,5258")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Breadth: BreadthConfig{
			WindowMinutes: viper.GetInt("BREADTH_WINDOW_MINUTES"),
			BucketSeconds: viper.GetInt("BREADTH_BUCKET_SECONDS"),
		},
		Universe: UniverseConfig{
			SecurityIDs: parseSecurityIDs(viper.GetString("UNIVERSE_SECURITY_IDS")),
		},
	}

	// Construct Postgres DSN (used by database/sql)
	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	// Validate critical fields
	validateConfig()
}

// parseSecurityIDs parses a comma-separated list of integer identifiers.
// Entries that fail to parse are dropped; validateConfig catches an empty result.
func parseSecurityIDs(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			log.Printf("ignoring invalid security id %q in UNIVERSE_SECURITY_IDS", part)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing ones in a slice.
//   - If any are missing, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if AppConfig.Breadth.WindowMinutes <= 0 {
		missing = append(missing, "BREADTH_WINDOW_MINUTES")
	}
	if AppConfig.Breadth.BucketSeconds <= 0 {
		missing = append(missing, "BREADTH_BUCKET_SECONDS")
	}
	if len(AppConfig.Universe.SecurityIDs) == 0 {
		missing = append(missing, "UNIVERSE_SECURITY_IDS")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
