package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"cf-insight/internal/codeforces"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	API         codeforces.Config
	DataPath    string
	LogDir      string
	SnapshotDir string
	RosterPath  string

	// ReportLocation is the fixed reporting timezone all windows and daily
	// buckets are computed in. Threaded explicitly, never a process default.
	ReportLocation *time.Location
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try the executable's directory first, then the working directory
	// (useful for development/go run).
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables")
	}

	// 2. Resolve data paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = "."
	}

	logDir := filepath.Join(dataPath, "logs")
	snapshotDir := filepath.Join(dataPath, "data")

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
	}
	if err := os.MkdirAll(snapshotDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", snapshotDir).Msg("Failed to create snapshot directory")
	}

	// 3. Reporting timezone
	tzName := getEnv("REPORT_TIMEZONE", "Asia/Karachi")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_TIMEZONE %q: %w", tzName, err)
	}

	delaySecs, _ := strconv.Atoi(getEnv("API_REQUEST_DELAY_SECONDS", "2"))
	pageSize, _ := strconv.Atoi(getEnv("API_PAGE_SIZE", "1000"))

	cfg := &AppConfig{
		API: codeforces.Config{
			BaseURL:      getEnv("API_URL", ""),
			RequestDelay: time.Duration(delaySecs) * time.Second,
			PageSize:     pageSize,
		},
		DataPath:       dataPath,
		LogDir:         logDir,
		SnapshotDir:    snapshotDir,
		RosterPath:     getEnv("ROSTER_FILE", filepath.Join(dataPath, "users.toml")),
		ReportLocation: loc,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
