package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/bengobox/landing-service/internal/config"
	"github.com/bengobox/landing-service/internal/httpapi"
	"github.com/bengobox/landing-service/internal/httpapi/handlers"
	"github.com/bengobox/landing-service/internal/view"
	"go.uber.org/zap"
)

// App wires core dependencies and exposes server lifecycle controls.
type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	renderer   *view.Renderer
	httpServer *http.Server

	stopWatch context.CancelFunc
	watchDone <-chan struct{}
}

// New constructs the application.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	renderer, err := view.New(cfg.Templates.Dir, logger.Named("view"))
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	if cfg.App.Debug && cfg.App.IsProduction() {
		logger.Warn("debug mode is enabled in production; render errors will be exposed to clients")
	}

	homeHandler := handlers.NewHomeHandler(renderer, logger, handlers.WithDebug(cfg.App.Debug))

	router := httpapi.NewRouter(httpapi.RouterDeps{
		HomeHandler:        homeHandler.Home,
		HealthHandler:      handlers.Health,
		Logger:             logger.Named("http"),
		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	a := &App{
		cfg:        cfg,
		logger:     logger,
		renderer:   renderer,
		httpServer: server,
	}

	if cfg.App.Debug && cfg.Templates.Dir != "" {
		watchCtx, cancel := context.WithCancel(ctx)
		done, err := renderer.Watch(watchCtx)
		if err != nil {
			cancel()
			return nil, err
		}
		a.stopWatch, a.watchDone = cancel, done
		logger.Info("watching templates for changes", zap.String("dir", cfg.Templates.Dir))
	}

	return a, nil
}

// Run binds the configured address and serves until Shutdown is called.
// A bind failure is returned immediately.
func (a *App) Run() error {
	ln, err := net.Listen("tcp", a.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.httpServer.Addr, err)
	}
	return a.Serve(ln)
}

// Serve accepts connections on ln, with TLS if certificates are configured.
// It returns nil once the server has been shut down.
func (a *App) Serve(ln net.Listener) error {
	var err error
	if a.cfg.HTTP.TLSCertFile != "" && a.cfg.HTTP.TLSKeyFile != "" {
		a.logger.Info("starting HTTPS server",
			zap.String("service", a.cfg.App.ServiceName),
			zap.String("cert", a.cfg.HTTP.TLSCertFile),
			zap.String("key", a.cfg.HTTP.TLSKeyFile),
			zap.String("addr", ln.Addr().String()),
			zap.Bool("debug", a.cfg.App.Debug),
		)
		err = a.httpServer.ServeTLS(ln, a.cfg.HTTP.TLSCertFile, a.cfg.HTTP.TLSKeyFile)
	} else {
		a.logger.Info("starting HTTP server",
			zap.String("service", a.cfg.App.ServiceName),
			zap.String("addr", ln.Addr().String()),
			zap.Bool("debug", a.cfg.App.Debug),
		)
		err = a.httpServer.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the HTTP server and the template watcher.
func (a *App) Shutdown(ctx context.Context) error {
	shutdownErr := a.httpServer.Shutdown(ctx)

	if a.stopWatch != nil {
		a.stopWatch()
		select {
		case <-a.watchDone:
		case <-ctx.Done():
			a.logger.Warn("template watcher did not stop before shutdown deadline")
			if shutdownErr == nil {
				shutdownErr = ctx.Err()
			}
		}
	}
	return shutdownErr
}
