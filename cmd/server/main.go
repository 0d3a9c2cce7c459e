package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/broadcast"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/config"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/hadith"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/http/api/wisdom/endpoints"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/proverbs"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/reflection"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/wisdom"
)

func main() {
	// load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	SetupLogger(cfg)

	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}

	facade := wisdom.New(
		hadith.NewGateway(cfg.HadithBaseURL, hadith.WithHTTPClient(&http.Client{Timeout: cfg.HadithTimeout})),
		proverbs.Default(),
		reflection.NewGenerator(cfg.Reflection()),
	)
	if cfg.GroqAPIKey == "" {
		log.Info().Msg("GROQ_API_KEY not set, reflections will be unavailable")
	}

	// screens are optional
	var broadcaster endpoints.Broadcaster
	publisher, err := broadcast.Connect(cfg.MQTTBrokerURL, cfg.MQTTClientID, cfg.MQTTTopic)
	switch {
	case errors.Is(err, broadcast.ErrDisabled):
		log.Info().Msg("MQTT_BROKER_URL not set, screen broadcast disabled")
	case err != nil:
		log.Error().Err(err).Msg("screen broadcast disabled")
	default:
		defer publisher.Close()
		broadcaster = publisher
		log.Info().Str("broker", cfg.MQTTBrokerURL).Str("topic", cfg.MQTTTopic).Msg("screen broadcast enabled")
	}

	r := gin.New()
	RegisterRoutes(r, facade, broadcaster)

	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: r,
	}

	go func() {
		log.Info().Str("address", cfg.ServerAddress).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
