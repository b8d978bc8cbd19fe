package main

import (
	"context"
	"time"

	"quill-server/internal/config"
	"quill-server/internal/infrastructure/crontab"
	"quill-server/internal/infrastructure/logger"
	"quill-server/internal/infrastructure/observability"
	"quill-server/internal/interfaces/httpserver"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

type Application struct {
	HttpServer *httpserver.HTTPServer
	Crontab    *crontab.Crontab
}

func (application *Application) Start() {
	background := context.Background()
	ctx, cancel := context.WithCancel(background)
	defer cancel()

	var eg errgroup.Group
	eg.Go(func() error {
		err := application.Crontab.Run(ctx)
		if err != nil {
			cancel()
		}
		return err
	})
	eg.Go(func() error {
		err := application.HttpServer.Run()
		if err != nil {
			cancel()
		}
		return err
	})

	if err := eg.Wait(); err != nil {
		panic(err)
	}
}

func main() {
	ctx := context.Background()
	_ = godotenv.Load()

	log := logger.GetLogger()

	if _, err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	cfg := config.GetGlobal()

	application, err := CreateApplication()
	if err != nil {
		log.Fatal().Err(err).Msg("create application")
	}

	otelShutdown, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("initialize observability")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := otelShutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("shutdown telemetry")
			}
		}()
	}

	log.Info().Int("port", cfg.HTTPPort).Str("model", cfg.ChatModel).Msg("starting server")
	application.Start()
}
