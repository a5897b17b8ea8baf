package main

import (
	"os"

	"github.com/anatolianspine/clinic-api/internal/config"
	"github.com/anatolianspine/clinic-api/internal/db"
	"github.com/anatolianspine/clinic-api/internal/handler"
	"github.com/anatolianspine/clinic-api/internal/router"
	"github.com/anatolianspine/clinic-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	gin.SetMode(cfg.GinMode)

	gdb, err := db.Init(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	// First-boot admin seeding; a no-op when the account exists or the
	// credentials are not configured.
	if err := db.EnsureAdmin(gdb, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin account")
	}

	mailer := service.NewSMTPMailer(cfg.SMTP)
	api := handler.NewAPI(gdb, log, mailer, cfg)

	r, err := router.Setup(api, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up router")
	}

	log.Info().Str("addr", cfg.ListenAddr).Msg("server starting")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
