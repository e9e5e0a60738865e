package config

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// LoadDotEnv merges variables from an optional dotenv file into the process
// environment. Variables already set win over the file, and a missing file
// is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return errors.Wrapf(err, "load env file %s", path)
}

type Config struct {
	Port                   int
	LogLevel               string
	LogFormat              string
	GinMode                string
	DescriptionSignature   string
	ShutdownTimeoutSeconds int
}

func Default() Config {
	return Config{
		Port:                   5000,
		LogLevel:               "info",
		LogFormat:              "console",
		GinMode:                "release",
		DescriptionSignature:   "Processed by Python service",
		ShutdownTimeoutSeconds: 10,
	}
}

func Load() Config {
	cfg := Default()
	if raw := os.Getenv("PORT"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 && value < 65536 {
			cfg.Port = value
		}
	}
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		cfg.LogLevel = strings.ToLower(raw)
	}
	if raw := os.Getenv("LOG_FORMAT"); raw == "json" || raw == "console" {
		cfg.LogFormat = raw
	}
	switch raw := os.Getenv("GIN_MODE"); raw {
	case "debug", "release", "test":
		cfg.GinMode = raw
	}
	// Set but empty drops the signature from descriptions.
	if raw, ok := os.LookupEnv("DESCRIPTION_SIGNATURE"); ok {
		cfg.DescriptionSignature = raw
	}
	if raw := os.Getenv("SHUTDOWN_TIMEOUT_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.ShutdownTimeoutSeconds = value
		}
	}
	return cfg
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
