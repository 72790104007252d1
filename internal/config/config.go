// Package config reads pathways settings from the environment, with an
// optional .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DataDirEnv overrides the fixture directory.
	DataDirEnv = "PATHWAYS_DATA_DIR"
	// DefaultDataDir is relative to the working directory.
	DefaultDataDir = "pathways"

	// IDsEnv lists pathway ids, comma separated, in sidebar order.
	// Unset means discover them from the data directory.
	IDsEnv = "PATHWAYS_IDS"

	LogLevelEnv     = "PATHWAYS_LOG_LEVEL"
	DefaultLogLevel = "info"

	LogFormatEnv     = "PATHWAYS_LOG_FORMAT"
	DefaultLogFormat = "json"

	// LogFileEnv overrides the log sink. The TUI owns stdout, so logs go to a file.
	LogFileEnv = "PATHWAYS_LOG_FILE"

	// OTLPEndpointEnv enables trace export when set.
	OTLPEndpointEnv    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	ServiceNameEnv     = "OTEL_SERVICE_NAME"
	DefaultServiceName = "pathways"

	// DotEnvFile is read from the working directory when present.
	DotEnvFile = ".env"
)

// Config holds the resolved settings.
type Config struct {
	DataDir      string
	IDs          []string
	LogLevel     string
	LogFormat    string
	LogFile      string
	OTLPEndpoint string
	ServiceName  string
}

// Load loads the given env files (or .env when none are named, ignoring its
// absence) and then reads the environment. Variables already set in the
// process win over file values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", DotEnvFile, err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return nil, fmt.Errorf("loading env files: %w", err)
	}

	return &Config{
		DataDir:      getEnv(DataDirEnv, DefaultDataDir),
		IDs:          SplitIDs(os.Getenv(IDsEnv)),
		LogLevel:     getEnv(LogLevelEnv, DefaultLogLevel),
		LogFormat:    getEnv(LogFormatEnv, DefaultLogFormat),
		LogFile:      getEnv(LogFileEnv, DefaultLogFile()),
		OTLPEndpoint: os.Getenv(OTLPEndpointEnv),
		ServiceName:  getEnv(ServiceNameEnv, DefaultServiceName),
	}, nil
}

// DefaultLogFile returns $XDG_STATE_HOME/pathways/pathways.log, falling back
// to ~/.local/state and then the temp directory.
func DefaultLogFile() string {
	state := os.Getenv("XDG_STATE_HOME")
	if state == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "pathways.log")
		}
		state = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(state, "pathways", "pathways.log")
}

// SplitIDs splits a comma-separated id list, dropping blanks.
// Returns nil for an empty list.
func SplitIDs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if id := strings.TrimSpace(p); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return ids
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
