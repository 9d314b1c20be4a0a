// Package app assembles the blog from its configuration: store, services,
// controllers and router.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"techtrends/app/config"
	"techtrends/app/controllers"
	"techtrends/app/logger"
	"techtrends/app/metrics"
	"techtrends/app/repositories"
	"techtrends/app/routes"
	"techtrends/app/services"
	"techtrends/app/session"
	"techtrends/app/views"
)

const shutdownTimeout = 5 * time.Second

// Application is built once at startup and owns every long-lived dependency.
type Application struct {
	Config      config.Config
	Connections *metrics.Counter
	Store       repositories.PostRepository
	Posts       *services.PostService
	Router      http.Handler
}

// New opens the configured store and wires the HTTP handlers on top of it.
func New(cfg config.Config) (*Application, error) {
	conns := metrics.NewCounter()
	store, err := OpenStore(cfg, conns)
	if err != nil {
		return nil, err
	}

	renderer, err := controllers.NewRenderer(views.FS)
	if err != nil {
		store.Close()
		return nil, err
	}

	postService := services.NewPostService(store)
	router := routes.SetupRoutes(routes.Controllers{
		Posts:  controllers.NewPostController(postService, renderer, session.NewFlasher(cfg.SecretKey)),
		Pages:  controllers.NewPageController(renderer),
		Status: controllers.NewStatusController(postService, conns),
	})

	return &Application{
		Config:      cfg,
		Connections: conns,
		Store:       store,
		Posts:       postService,
		Router:      router,
	}, nil
}

// OpenStore opens the post repository selected by cfg.Store.
func OpenStore(cfg config.Config, conns *metrics.Counter) (repositories.PostRepository, error) {
	switch cfg.Store {
	case config.StoreBadger:
		repo, err := repositories.OpenBadgerPostRepository(cfg.BadgerDir, conns)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case config.StoreSQLite, "":
		repo, err := repositories.NewSQLitePostRepository(cfg.DatabasePath, cfg.MaxIdleConns, conns)
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// Close releases the store.
func (a *Application) Close() error {
	return a.Store.Close()
}

// Server returns the HTTP server for the configured address.
func (a *Application) Server() *http.Server {
	return &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run serves HTTP until ctx is cancelled, then shuts the server down
// gracefully.
func (a *Application) Run(ctx context.Context) error {
	srv := a.Server()

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Infof("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
