// Package server initializes and runs the photo-album application server:
// database and migrations, blob storage, services, and the HTTP endpoint
// with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fotolab/foto/internal/downsample"
	"github.com/fotolab/foto/internal/logging"
	"github.com/fotolab/foto/internal/server/config"
	"github.com/fotolab/foto/internal/server/httpapi"
	"github.com/fotolab/foto/internal/server/repositories/repomanager"
	"github.com/fotolab/foto/internal/server/services"
	"github.com/fotolab/foto/internal/server/storage"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler http.Handler
}

// NewApp wires the full application: opens the database, runs migrations,
// selects the blob backend, and builds the service and HTTP layers.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewDefault()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	store, err := newBlobStore(ctx, cfg)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	// the imgproc protocol only takes local paths, so with S3 enabled
	// thumbnails are skipped and the thumbnail route falls back to originals
	var ds services.DownSampler
	if cfg.S3Bucket == "" {
		ds = downsample.NewClient(cfg.ImgprocAddr)
	}

	users := services.NewUserService(db, rm, cfg)
	albums := services.NewAlbumService(db, rm, store, logger)
	photos := services.NewPhotoService(db, rm, store, ds, logger)

	api := httpapi.NewAPI(users, albums, photos, logger)
	router := httpapi.NewRouter(api, users, logger)
	handler := httpapi.NewHandler(router, logger, cfg.CORSAllowedOrigin)

	return &App{config: cfg, logger: logger, db: db, handler: handler}, nil
}

func newBlobStore(ctx context.Context, cfg *config.Config) (storage.BlobStore, error) {
	if cfg.S3Bucket != "" {
		return storage.NewS3Store(ctx, storage.S3Config{
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			RootUser:     cfg.S3RootUser,
			RootPassword: cfg.S3RootPassword,
			BaseEndpoint: cfg.S3BaseEndpoint,
		})
	}
	return storage.NewLocalStore(cfg.DataDir)
}

// Run serves HTTP until the context is cancelled or a termination signal
// arrives, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.initSignalHandler(cancel)

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.handler,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting server", "addr", app.config.EndpointAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return app.db.Close()
}

func (app *App) initSignalHandler(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancel()
	}()
}
