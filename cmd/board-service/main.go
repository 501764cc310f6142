package main

import (
	"github.com/rs/zerolog/log"

	"github.com/gfdmit/board-service/config"
	"github.com/gfdmit/board-service/internal/app"
)

func main() {
	conf, err := config.New(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("error when reading config")
	}

	if err := app.Run(*conf); err != nil {
		log.Fatal().Err(err).Msg("application error")
	}

	log.Info().Msg("service shut down gracefully")
}
