package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/remitflow/escrow-api-service/internal/clients"
	"github.com/remitflow/escrow-api-service/internal/clients/oracle"
	"github.com/remitflow/escrow-api-service/internal/clients/treasury"
	"github.com/remitflow/escrow-api-service/internal/config"
	"github.com/remitflow/escrow-api-service/internal/db"
	"github.com/remitflow/escrow-api-service/internal/queue"
	"github.com/remitflow/escrow-api-service/internal/utils"
)

// Service layer contains the escrow protocol business logic and is used to
// interact with the database, the settlement collaborator and the event queue.
type Services struct {
	DbClient db.DBClient
	Transfer treasury.TransferClient
	Oracle   oracle.PriceClient
	Emitter  queue.EventEmitter
	cfg      *config.Config
	guard    *remittanceGuard
}

func New(ctx context.Context, cfg *config.Config, clients *clients.Clients, emitter queue.EventEmitter) (*Services, error) {
	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		log.Ctx(ctx).Fatal().Err(err).Msg("error while creating db client")
		return nil, err
	}

	// Seed the fee configuration with the deployment defaults. The fee
	// collector starts out as the owner until changed through admin ops.
	owner := utils.NormalizeAddress(cfg.Escrow.OwnerAddress)
	if err := dbClient.InitFeeConfig(ctx, cfg.Escrow.DefaultFeeBps, owner); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while seeding fee configuration")
		return nil, err
	}

	return &Services{
		DbClient: dbClient,
		Transfer: clients.Treasury,
		Oracle:   clients.Oracle,
		Emitter:  emitter,
		cfg:      cfg,
		guard:    newRemittanceGuard(),
	}, nil
}

// DoHealthCheck checks the health of the services by ping the database.
func (s *Services) DoHealthCheck(ctx context.Context) error {
	return s.DbClient.Ping(ctx)
}
