package main

import (
	"clinic/config"
	"clinic/di"
	"clinic/helper"
	"clinic/shared/logger"
	"clinic/shared/timezone"

	"github.com/rs/zerolog/log"
)

// @title						Clinic Scheduling API
// @version					1.0
// @description				Appointment scheduling and booking for a psychology clinic.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @securityDefinitions.apikey	APIKey
// @in							header
// @name						X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if err := timezone.Init(cfg.App.Timezone); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize clinic timezone")
	}

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Runner(cfg, "up"); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate clinic schema")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
