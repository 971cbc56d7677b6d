package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mindease/mindease/internal"
	"github.com/mindease/mindease/internal/api"
	"github.com/mindease/mindease/internal/config"
	"github.com/mindease/mindease/internal/storage"
)

type app struct {
	logger   internal.Logger
	moodRepo storage.MoodRepository
	userRepo storage.UserRepository
}

func (a *app) Logger() internal.Logger          { return a.logger }
func (a *app) MoodRepo() storage.MoodRepository { return a.moodRepo }
func (a *app) UserRepo() storage.UserRepository { return a.userRepo }

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	moodRepo, userRepo, closer, err := storage.New(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage (%s): %v", cfg.DBType, err)
	}

	router := api.NewRouter(&app{logger: logger, moodRepo: moodRepo, userRepo: userRepo})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Infof("mindease backend listening on %s (storage=%s)", cfg.HTTPAddr, cfg.DBType)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Errorf("server exited: %v", err)
	}

	if err := closer.Close(); err != nil {
		logger.Errorf("failed to close storage: %v", err)
	}
	logger.Info("shutdown complete")
}
