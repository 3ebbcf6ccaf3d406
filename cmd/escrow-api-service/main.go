package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/remitflow/escrow-api-service/cmd/escrow-api-service/cli"
	"github.com/remitflow/escrow-api-service/internal/api"
	"github.com/remitflow/escrow-api-service/internal/clients"
	"github.com/remitflow/escrow-api-service/internal/config"
	"github.com/remitflow/escrow-api-service/internal/db/model"
	"github.com/remitflow/escrow-api-service/internal/observability/healthcheck"
	"github.com/remitflow/escrow-api-service/internal/observability/metrics"
	"github.com/remitflow/escrow-api-service/internal/queue"
	"github.com/remitflow/escrow-api-service/internal/services"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("failed to load .env file")
	}
}

func main() {
	ctx := context.Background()

	// setup cli commands and flags
	if err := cli.Setup(); err != nil {
		log.Fatal().Err(err).Msg("error while setting up cli")
	}

	// load config
	cfgPath := cli.GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	err = model.Setup(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up escrow db model")
	}

	externalClients := clients.New(cfg)
	queues := queue.New(&cfg.Queue)

	services, err := services.New(ctx, cfg, externalClients, queues)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up escrow services layer")
	}

	if err := healthcheck.StartHealthCheckCron(ctx, queues, cfg.Server.HealthCheckInterval); err != nil {
		log.Fatal().Err(err).Msg("error while starting health check cron")
	}

	apiServer, err := api.New(ctx, cfg, services)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up escrow api service")
	}
	if err = apiServer.Start(); err != nil {
		log.Fatal().Err(err).Msg("error while starting escrow api service")
	}
}
