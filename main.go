package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"github.com/danielhkuo/gym-check/attendance"
	"github.com/danielhkuo/gym-check/blob"
	"github.com/danielhkuo/gym-check/cliparse"
	"github.com/danielhkuo/gym-check/db"
	"github.com/danielhkuo/gym-check/middleware"
	"github.com/danielhkuo/gym-check/router"
	"github.com/danielhkuo/gym-check/store"
)

func main() {
	var err error

	if err := cliparse.LoadDotEnv(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the record store
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	blobs, err := newBlobStore(cfg)
	if err != nil {
		slog.Error("blob store setup failed", "error", err)
		os.Exit(1)
	}

	svc := attendance.NewService(store.NewSQLStore(dbConn), blobs, attendance.WithLocation(cfg.Location))

	// Create router
	mux := router.NewRouter(svc, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening",
		"port", cfg.Port,
		"blob_backend", cfg.BlobBackend,
		"max_upload", humanize.Bytes(uint64(cfg.MaxUploadBytes)),
		"timezone", cfg.Location.String(),
	)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

func newBlobStore(cfg cliparse.Config) (attendance.BlobStore, error) {
	if cfg.BlobBackend == cliparse.BlobBackendAzure {
		azure, err := blob.NewAzureStore(cfg.BlobURL, cfg.BlobAccount, cfg.BlobKey, cfg.BlobContainer)
		if err != nil {
			return nil, err
		}
		return azure, nil
	}
	return blob.NewFSStore(afero.NewOsFs(), cfg.BlobRoot), nil
}
