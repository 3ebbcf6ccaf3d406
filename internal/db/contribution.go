package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/remitflow/escrow-api-service/internal/db/model"
	"github.com/remitflow/escrow-api-service/internal/types"
)

// RecordContribution adds amount to the remittance pool and to the
// contributor's cumulative ledger entry. The remittance update is conditional
// on the record still being active, so a contribution can never land on a
// finalized remittance. First-time contributors are appended to the
// contributors list; $addToSet keeps the list deduplicated while preserving
// insertion order. Both writes must run inside one session transaction.
func (db *Database) RecordContribution(
	ctx context.Context, id uint64, contributor string, amount uint64,
) (*model.RemittanceDocument, error) {
	remittances := db.Client.Database(db.DbName).Collection(model.RemittanceCollection)

	filter := bson.M{"_id": id, "state": types.Active}
	update := bson.M{
		"$inc":      bson.M{"current_amount": amount},
		"$addToSet": bson.M{"contributors": contributor},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var remittance model.RemittanceDocument
	if err := remittances.FindOneAndUpdate(ctx, filter, update, opts).Decode(&remittance); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     fmt.Sprintf("%d", id),
				Message: "Remittance not found or no longer accepting contributions",
			}
		}
		return nil, err
	}

	contributions := db.Client.Database(db.DbName).Collection(model.ContributionCollection)

	ledgerFilter := bson.M{"remittance_id": id, "contributor": contributor}
	ledgerUpdate := bson.M{
		"$inc": bson.M{"amount": amount},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	if _, err := contributions.UpdateOne(ctx, ledgerFilter, ledgerUpdate, options.Update().SetUpsert(true)); err != nil {
		return nil, err
	}

	return &remittance, nil
}

func (db *Database) FindContribution(ctx context.Context, id uint64, contributor string) (*model.ContributionDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.ContributionCollection)

	filter := bson.M{"remittance_id": id, "contributor": contributor}
	var contribution model.ContributionDocument
	err := client.FindOne(ctx, filter).Decode(&contribution)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     fmt.Sprintf("%d/%s", id, contributor),
				Message: "Contribution not found",
			}
		}
		return nil, err
	}
	return &contribution, nil
}

func (db *Database) FindContributionsByRemittance(ctx context.Context, id uint64) ([]model.ContributionDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.ContributionCollection)

	cursor, err := client.Find(ctx, bson.M{"remittance_id": id})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var contributions []model.ContributionDocument
	if err = cursor.All(ctx, &contributions); err != nil {
		return nil, err
	}
	return contributions, nil
}

// ZeroContributions resets every ledger entry of a cancelled remittance after
// the refunds have been issued. The historical contributors list on the
// remittance document is kept for audit.
func (db *Database) ZeroContributions(ctx context.Context, id uint64) error {
	client := db.Client.Database(db.DbName).Collection(model.ContributionCollection)

	filter := bson.M{"remittance_id": id}
	update := bson.M{
		"$set": bson.M{"amount": uint64(0), "updated_at": time.Now().UTC()},
	}
	_, err := client.UpdateMany(ctx, filter, update)
	return err
}
