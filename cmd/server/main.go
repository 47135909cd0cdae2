package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/config"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/infra"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Structured logger: pretty in dev, JSON in prod
	if cfg.Env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if !cfg.AuthConfigured() || cfg.SessionSecret == "" {
		log.Warn().Msg("ADMIN_USERNAME, ADMIN_PASSWORD_HASH or SESSION_SECRET missing: admin login is disabled")
	}

	ctx := context.Background()

	store, err := infra.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("failed to open store")
	}
	log.Info().Str("driver", store.Driver).Msg("store connected")

	deps := router.Deps{Store: store}

	if cfg.RedisURL != "" {
		rdb, err := infra.NewRedis(cfg.RedisURL)
		if err != nil {
			// The cache is optional; run without it rather than refuse to start.
			log.Warn().Err(err).Msg("redis unavailable, catalog cache disabled")
		} else {
			deps.Cache = infra.NewCatalogCache(rdb, cfg.CatalogCacheTTL)
			defer rdb.Close()
		}
	}

	if cfg.CloudinaryConfigured() {
		host, err := infra.NewCloudinaryHost(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to configure cloudinary")
		}
		deps.Images = host
	} else {
		log.Warn().Msg("cloudinary credentials missing: image uploads are disabled")
	}

	if mailer := infra.NewMailer(cfg); mailer != nil {
		deps.Mailer = mailer
	} else {
		log.Warn().Msg("SMTP not configured: contact form is disabled")
	}

	r := router.New(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second, // uploads up to 5 MiB on slow links
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Calo API listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("store close")
	}
	log.Info().Msg("server exited")
}
