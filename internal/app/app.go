// Package app wires the configuration, database, use cases and HTTP server
// together and owns the server lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/vadimbarashkov/linkpulse/internal/config"
	"github.com/vadimbarashkov/linkpulse/internal/usecase"
	"github.com/vadimbarashkov/linkpulse/pkg/postgres"
	"golang.org/x/sync/errgroup"

	repo "github.com/vadimbarashkov/linkpulse/internal/adapter/repository/postgres"

	delivery "github.com/vadimbarashkov/linkpulse/internal/adapter/delivery/http"
)

func Run(ctx context.Context, cfg *config.Config) error {
	const op = "app.Run"

	db, err := postgres.New(
		ctx,
		cfg.Postgres.DSN(),
		postgres.WithConnMaxIdleTime(cfg.Postgres.ConnMaxIdleTime),
		postgres.WithConnMaxLifetime(cfg.Postgres.ConnMaxLifetime),
		postgres.WithMaxIdleConns(cfg.Postgres.MaxIdleConns),
		postgres.WithMaxOpenConns(cfg.Postgres.MaxOpenConns),
	)
	if err != nil {
		return fmt.Errorf("%s: failed to connect to database: %w", op, err)
	}
	defer db.Close()

	if err := postgres.RunMigrations("file://migrations", cfg.Postgres.DSN()); err != nil {
		return fmt.Errorf("%s: failed to run migrations: %w", op, err)
	}

	linkRepo := repo.NewLinkRepository(db)
	clickRepo := repo.NewClickRepository(db)
	templateRepo := repo.NewTemplateRepository(db)
	qrCodeRepo := repo.NewQRCodeRepository(db)

	logger := httplog.NewLogger("linkpulse", httplog.Options{
		JSON:    cfg.Env == config.EnvProd,
		Concise: cfg.Env != config.EnvProd,
	})

	router := delivery.NewRouter(logger, cfg.BaseURL, delivery.UseCases{
		Links:     usecase.NewLinkUseCase(cfg.SlugLength, linkRepo),
		Clicks:    usecase.NewClickUseCase(clickRepo),
		Analytics: usecase.NewAnalyticsUseCase(cfg.TopN, clickRepo),
		Templates: usecase.NewTemplateUseCase(templateRepo),
		QRCodes:   usecase.NewQRCodeUseCase(cfg.BaseURL, qrCodeRepo, linkRepo),
	})

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        router,
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		if err := server.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}
