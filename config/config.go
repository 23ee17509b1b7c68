package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// lifeMadeFrame is the Google Play row whose columns are shifted by one
// (its category reads "1.9").
const lifeMadeFrame = "Life Made WI-Fi Touchscreen Photo Frame"

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// SourceBackend is "csv" or "sql".
	SourceBackend string

	AppStoreCSVPath    string
	AppStoreEncoding   string
	GooglePlayCSVPath  string
	GooglePlayEncoding string

	SQLDriver        string
	SQLDSN           string
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
	AppStoreTable    string
	GooglePlayTable  string
	MaxRetries       int

	// Names of records dropped before cleaning.
	AppStoreKnownBad   []string
	GooglePlayKnownBad []string

	TopN int
}

// Load reads the .env file and returns a populated Config struct. It reports
// whether a .env file was found so the caller can log it.
func Load() (*Config, bool) {
	envLoaded := godotenv.Load() == nil

	return &Config{
		SourceBackend: strings.ToLower(getEnv("SOURCE_BACKEND", "csv")),

		AppStoreCSVPath:    getEnv("APPSTORE_CSV_PATH", "./data/AppleStore.csv"),
		AppStoreEncoding:   getEnv("APPSTORE_ENCODING", "utf-8"),
		GooglePlayCSVPath:  getEnv("GOOGLEPLAY_CSV_PATH", "./data/googleplaystore.csv"),
		GooglePlayEncoding: getEnv("GOOGLEPLAY_ENCODING", "utf-8"),

		SQLDriver:        getEnv("SQL_DRIVER", "postgres"),
		SQLDSN:           getEnv("SQL_DSN", ""),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "stats"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "stats"),
		PostgresDB:       getEnv("POSTGRES_DB", "app_stats"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		AppStoreTable:    getEnv("APPSTORE_TABLE", "appstore"),
		GooglePlayTable:  getEnv("GOOGLEPLAY_TABLE", "googleplay"),
		MaxRetries:       getEnvInt("MAX_RETRIES", 3),

		AppStoreKnownBad:   getEnvList("APPSTORE_KNOWN_BAD", nil),
		GooglePlayKnownBad: getEnvList("GOOGLEPLAY_KNOWN_BAD", []string{lifeMadeFrame}),

		TopN: getEnvInt("TOP_N", 0),
	}, envLoaded
}

// DSN returns the connection string for the SQL backend. SQL_DSN wins when
// set; otherwise a PostgreSQL DSN is assembled from the POSTGRES_* values.
func (c *Config) DSN() string {
	if c.SQLDSN != "" {
		return c.SQLDSN
	}
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

// getEnvList splits a comma-separated variable. An unset variable returns
// fallback; a variable set to "-" returns an empty list.
func getEnvList(key string, fallback []string) []string {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	if val == "-" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
