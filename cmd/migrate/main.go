package main

import (
	"clinic/config"
	"clinic/helper"
	"clinic/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

const usage = "usage: migrate up|down|step-up|drop"

func main() {
	if len(os.Args) < 2 { //nolint:mnd
		log.Fatal().Msg(usage)
	}

	cfg := config.Get()

	logger.InitLogger(cfg)
	logger.SetLogLevel(cfg)

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Msg(usage)
	}
}
