// Package main starts the chart of accounts HTTP API.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/go-petr/coa-seeder/cmd/httpserver"
	"github.com/go-petr/coa-seeder/internal/middleware"
	"github.com/go-petr/coa-seeder/pkg/configpkg"
	"github.com/go-petr/coa-seeder/pkg/dbpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	server, err := httpserver.New(db, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Str("address", config.ServerAddress).Msg("chart of accounts server has started")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
