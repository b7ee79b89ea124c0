package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/hangman-backend/internal/config"
	"github.com/heartmarshall/hangman-backend/internal/profanity"
	"github.com/heartmarshall/hangman-backend/internal/service/wordgen"
	"github.com/heartmarshall/hangman-backend/internal/transport/middleware"
	"github.com/heartmarshall/hangman-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration and the
// lexicon, then serves HTTP until ctx is cancelled or SIGINT/SIGTERM
// arrives, shutting down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("lexicon_source", cfg.Lexicon.Source),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lex, pool, err := LoadLexicon(ctx, logger, cfg)
	if err != nil {
		return err
	}

	health := rest.NewHealthHandler(nil, lex, BuildVersion())
	if pool != nil {
		defer pool.Close()
		health = rest.NewHealthHandler(pool, lex, BuildVersion())
	}

	detector := profanity.NewDetector(cfg.Profanity.ExtraWords()...)
	gen := wordgen.NewGenerator(logger, lex, detector)

	deps := rest.RouterDeps{
		Logger: logger,
		Word:   rest.NewWordHandler(logger, gen, cfg.Generator),
		Health: health,
		CORS:   cfg.CORS,
	}
	if cfg.Docs.Enabled {
		docs, err := rest.NewDocsHandler(cfg.Docs.PublicURL)
		if err != nil {
			return err
		}
		deps.Docs = docs
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		deps.RateLimiter = limiter
		deps.WordPerMinute = cfg.RateLimit.WordPerMinute
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      rest.NewRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}
