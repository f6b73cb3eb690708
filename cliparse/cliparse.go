package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
)

// Blob backends
const (
	BlobBackendFS    = "fs"
	BlobBackendAzure = "azure"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	BlobBackend   string
	BlobRoot      string
	BlobURL       string
	BlobAccount   string
	BlobKey       string
	BlobContainer string

	MaxUploadBytes int64
	Location       *time.Location
}

// LoadDotEnv loads variables from path into the environment without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var maxUpload, timezone string

	fs := flag.NewFlagSet("gym-check", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Blob storage
	fs.StringVar(&cfg.BlobBackend, "blob", "", "Blob backend (fs or azure)")
	fs.StringVar(&cfg.BlobRoot, "blob-root", "", "Directory for the fs blob backend")
	fs.StringVar(&cfg.BlobURL, "blob-url", "", "Azure blob service URL")
	fs.StringVar(&cfg.BlobContainer, "blob-container", "", "Azure blob container")

	fs.StringVar(&maxUpload, "max-upload", "", "Max upload size, e.g. 10MB")
	fs.StringVar(&timezone, "tz", "", "IANA time zone for day boundaries (default local)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if err := parseBlobConfig(&cfg); err != nil {
		return Config{}, err
	}

	if maxUpload == "" {
		maxUpload = envOr("MAX_UPLOAD_SIZE", "10MB")
	}
	size, err := humanize.ParseBytes(maxUpload)
	if err != nil || size == 0 {
		return Config{}, fmt.Errorf("invalid max upload size %q", maxUpload)
	}
	cfg.MaxUploadBytes = int64(size)

	if timezone == "" {
		timezone = os.Getenv("TIMEZONE")
	}
	cfg.Location = time.Local
	if timezone != "" {
		loc, err := time.LoadLocation(timezone)
		if err != nil {
			return Config{}, fmt.Errorf("invalid time zone %q: %w", timezone, err)
		}
		cfg.Location = loc
	}

	return cfg, nil
}

func parseBlobConfig(cfg *Config) error {
	if cfg.BlobBackend == "" {
		cfg.BlobBackend = envOr("BLOB_BACKEND", BlobBackendFS)
	}

	switch cfg.BlobBackend {
	case BlobBackendFS:
		if cfg.BlobRoot == "" {
			cfg.BlobRoot = envOr("BLOB_ROOT", "./uploads")
		}

	case BlobBackendAzure:
		if cfg.BlobURL == "" {
			cfg.BlobURL = os.Getenv("BLOB_URL")
		}
		if cfg.BlobContainer == "" {
			cfg.BlobContainer = envOr("BLOB_CONTAINER", "exercise-images")
		}
		// Credentials only come from the environment
		cfg.BlobAccount = os.Getenv("BLOB_ACCOUNT")
		cfg.BlobKey = os.Getenv("BLOB_KEY")

		if cfg.BlobURL == "" {
			return errors.New("BLOB_URL required for azure blob backend")
		}
		if cfg.BlobAccount == "" {
			return errors.New("BLOB_ACCOUNT required for azure blob backend")
		}
		if cfg.BlobKey == "" {
			return errors.New("BLOB_KEY required for azure blob backend")
		}

	default:
		return fmt.Errorf("unsupported blob backend %q", cfg.BlobBackend)
	}

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
