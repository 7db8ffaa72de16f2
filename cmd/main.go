package main

import (
	"context"
	"github.com/haidar-allaw/red-cross-sub000/cmd/config"
	migration "github.com/haidar-allaw/red-cross-sub000/cmd/database/migrate"
	"github.com/haidar-allaw/red-cross-sub000/internal/logger"
	"github.com/haidar-allaw/red-cross-sub000/internal/utils"
	"github.com/rs/zerolog/log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	utils.LoadConfig()
	logger.InitLogger("red-cross-api", utils.GetConfig("APP_ENV"), utils.GetConfig("LOG_LEVEL"))

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build app")
	}

	app.Scheduler.Start()

	go func() {
		addr := ":" + utils.GetConfig("SERVER_PORT")
		log.Info().Str("addr", addr).Msg("starting HTTP server")
		if err := app.Fiber.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Fiber.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	app.Scheduler.Stop()
	if err := app.Publisher.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close publisher")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
