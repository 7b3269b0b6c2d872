// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/camp-apply/models"
)

// DefaultEnvFile is where the connection string is kept out of version control.
const DefaultEnvFile = "credentialsDontPost/.env"

type Config struct {
	Port            int
	DatabaseURL     string
	DatabaseType    string
	DatabaseName    string
	CollectionName  string
	AdminKey        string
	LogLevel        slog.Level
	StoreTimeout    time.Duration
	ShutdownTimeout time.Duration
	EnvFile         string
}

// LoadEnvFile loads KEY=value pairs into the environment.
// Variables already set are not overridden and a missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and sets port number.
// The port may be given as the single positional argument.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var logLevel string

	fs := flag.NewFlagSet("camp-apply", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database connection string")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (mongo, postgres or sqlite)")
	fs.StringVar(&cfg.DatabaseName, "db-name", "", "MongoDB database name")
	fs.StringVar(&cfg.CollectionName, "collection", "", "MongoDB collection name")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKey, "admin-key", "", "Admin key for admin routes (prefer env)")

	fs.StringVar(&cfg.EnvFile, "env", DefaultEnvFile, "Env file with credentials")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.StoreTimeout, "store-timeout", 0, "Timeout for a single store operation")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", 0, "Time allowed for in-flight requests on stop")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := LoadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		port, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return Config{}, fmt.Errorf("invalid port %q", fs.Arg(0))
		}
		cfg.Port = port
	default:
		return Config{}, errors.New("usage: camp-apply [flags] <port>")
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		portStr := os.Getenv("PORT")
		if portStr == "" {
			return Config{}, errors.New("port required (positional argument, -p or PORT env)")
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, errors.New("invalid PORT env variable")
		}
		cfg.Port = port
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("MONGO_CONNECTION_STRING")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("connection string required (use -d, MONGO_CONNECTION_STRING or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = models.DatabaseMongo
		}
	}
	switch cfg.DatabaseType {
	case models.DatabaseMongo, models.DatabasePostgres, models.DatabaseSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseName == "" {
		cfg.DatabaseName = envOr("DATABASE_NAME", models.DefaultDatabaseName)
	}
	if cfg.CollectionName == "" {
		cfg.CollectionName = envOr("COLLECTION_NAME", models.DefaultCollectionName)
	}

	// Optional - admin routes stay open without it
	if cfg.AdminKey == "" {
		cfg.AdminKey = os.Getenv("ADMIN_KEY")
	}

	if logLevel == "" {
		logLevel = envOr("LOG_LEVEL", "info")
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q", logLevel)
	}

	if cfg.StoreTimeout == 0 {
		cfg.StoreTimeout = 10 * time.Second
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
