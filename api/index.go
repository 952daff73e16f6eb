package handler

import (
	"clinic/config"
	"clinic/di"
	"clinic/shared/logger"
	"clinic/shared/timezone"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Handler serves the API as a single serverless function.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if err := timezone.Init(cfg.App.Timezone); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize clinic timezone")
	}

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
