package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/teachertube/backend/internal/catalog/httpapi"
	"github.com/teachertube/backend/internal/catalog/kafka"
	"github.com/teachertube/backend/internal/catalog/repository"
	"github.com/teachertube/backend/internal/catalog/service"
	"github.com/teachertube/backend/internal/config"
	"github.com/teachertube/backend/internal/storage/blob"
	"github.com/teachertube/backend/internal/storage/jsonfile"
	"github.com/teachertube/backend/internal/storage/postgres"
)

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var (
		teachers repository.TeacherStore
		videos   repository.VideoStore
		requests repository.RequestStore
	)

	if cfg.DatabaseURL != "" {
		db, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		defer db.Close()

		if err := postgres.Migrate(ctx, db); err != nil {
			return fmt.Errorf("db migrate: %w", err)
		}

		teachers = postgres.NewTeacherRepo(db)
		videos = postgres.NewVideoRepo(db)
		requests = postgres.NewRequestRepo(db)
		logger.Info().Msg("using postgres record store")
	} else {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
		teachers = jsonfile.NewTeacherStore(cfg.DataDir, logger)
		videos = jsonfile.NewVideoStore(cfg.DataDir, logger)
		requests = jsonfile.NewRequestStore(cfg.DataDir, logger)
		logger.Info().Str("dir", cfg.DataDir).Msg("using file-backed record store")
	}

	blobs, err := blob.NewLocalStorage(cfg.UploadDir, cfg.UploadBaseURL, cfg.MaxUploadBytes, logger)
	if err != nil {
		return fmt.Errorf("init blob storage: %w", err)
	}

	var events service.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(kafka.ProducerConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
			Logger:  logger,
		})
		if err != nil {
			return fmt.Errorf("init kafka producer: %w", err)
		}
		defer producer.Close()
		events = producer
	}

	svc := service.New(service.Deps{
		Teachers: teachers,
		Videos:   videos,
		Requests: requests,
		Blobs:    blobs,
		Events:   events,
		Logger:   logger,
	})

	if err := svc.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	h := httpapi.New(svc)
	router := httpapi.NewRouter(h, http.FileServer(http.Dir(blobs.Dir())))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil

	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen and serve: %w", err)
	}
}
