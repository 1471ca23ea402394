package main

import (
	"deliveryform/config"
	"deliveryform/di"
	"deliveryform/helper"
	"deliveryform/shared/constant"
	"deliveryform/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Delivery Form API
// @version 1.0
// @description Booking window, availability and submission endpoints behind the delivery scheduling form.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)

	logger.SetLogLevel(cfg)

	if cfg.Ledger.Driver == constant.LedgerDriverPostgres && cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
