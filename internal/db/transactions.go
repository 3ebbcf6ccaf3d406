package db

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/remitflow/escrow-api-service/internal/utils"
)

const (
	DefaultMaxAttempts    = 4 // max attempt INCLUDES the first execution
	DefaultInitialBackoff = 100 * time.Millisecond
	DefaultBackoffFactor  = 2.0
)

// WithTransaction executes fn inside a mongo session transaction, so every
// read and write issued with the session context either commits as a whole or
// leaves no trace. An error returned by fn aborts the transaction. Transient
// write conflicts are retried with exponential backoff.
func (db *Database) WithTransaction(ctx context.Context, fn func(sessCtx context.Context) error) error {
	txnFunc := func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	}
	_, err := txWithRetries(ctx, db.Client, txnFunc)
	return err
}

func txWithRetries(
	ctx context.Context,
	client *mongo.Client,
	txnFunc func(sessCtx mongo.SessionContext) (interface{}, error),
) (interface{}, error) {
	maxAttempts := DefaultMaxAttempts
	backoffFactor := DefaultBackoffFactor

	var (
		result  interface{}
		err     error
		backoff = DefaultInitialBackoff
	)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		session, sessionErr := client.StartSession()
		if sessionErr != nil {
			return nil, sessionErr
		}

		result, err = session.WithTransaction(ctx, txnFunc)
		session.EndSession(ctx)

		if err != nil {
			if shouldRetry(err) && attempt < maxAttempts {
				log.Ctx(ctx).Warn().Err(err).Int("attempt", attempt).
					Dur("backoff", backoff).Msg("transaction failed with retryable error")
				utils.Sleep(backoff)
				backoff *= time.Duration(backoffFactor)
				continue
			}
			return nil, err
		}
		break
	}
	return result, nil
}

// Check for network-related, timeout errors, write conflicts or transaction
// aborted, which are generally transient and should retry. Other errors such
// as duplicated keys are considered non-retryable.
func shouldRetry(err error) bool {
	if mongo.IsNetworkError(err) {
		return true
	}
	if mongo.IsTimeout(err) {
		return true
	}

	if IsWriteConflictError(err) {
		return true
	}

	if IsTransactionAbortedError(err) {
		return true
	}

	return false
}
