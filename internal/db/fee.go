package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/remitflow/escrow-api-service/internal/db/model"
)

// InitFeeConfig seeds the singleton fee configuration document on first
// startup. An existing document is left untouched, so fee changes made
// through the admin operations survive restarts.
func (db *Database) InitFeeConfig(ctx context.Context, feeBps uint64, feeCollector string) error {
	client := db.Client.Database(db.DbName).Collection(model.FeeConfigCollection)

	filter := bson.M{"_id": model.FeeConfigDocumentID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"fee_bps":       feeBps,
			"fee_collector": feeCollector,
			"updated_at":    time.Now().UTC(),
		},
	}
	_, err := client.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (db *Database) GetFeeConfig(ctx context.Context) (*model.FeeConfigDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.FeeConfigCollection)

	var feeConfig model.FeeConfigDocument
	err := client.FindOne(ctx, bson.M{"_id": model.FeeConfigDocumentID}).Decode(&feeConfig)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.FeeConfigDocumentID,
				Message: "Fee configuration not found",
			}
		}
		return nil, err
	}
	return &feeConfig, nil
}

func (db *Database) UpdateFeeBps(ctx context.Context, feeBps uint64) error {
	return db.updateFeeConfig(ctx, bson.M{"fee_bps": feeBps})
}

func (db *Database) UpdateFeeCollector(ctx context.Context, feeCollector string) error {
	return db.updateFeeConfig(ctx, bson.M{"fee_collector": feeCollector})
}

func (db *Database) updateFeeConfig(ctx context.Context, fields bson.M) error {
	client := db.Client.Database(db.DbName).Collection(model.FeeConfigCollection)

	fields["updated_at"] = time.Now().UTC()
	filter := bson.M{"_id": model.FeeConfigDocumentID}
	result, err := client.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     model.FeeConfigDocumentID,
			Message: "Fee configuration not found",
		}
	}
	return nil
}
