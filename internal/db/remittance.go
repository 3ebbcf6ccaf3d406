package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/remitflow/escrow-api-service/internal/db/model"
	"github.com/remitflow/escrow-api-service/internal/types"
)

// NextRemittanceID allocates the next zero-based remittance sequence number.
// The counter document is upserted, so the first allocation returns 0.
func (db *Database) NextRemittanceID(ctx context.Context) (uint64, error) {
	client := db.Client.Database(db.DbName).Collection(model.CounterCollection)

	filter := bson.M{"_id": model.RemittanceCounterID}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter model.CounterDocument
	if err := client.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return 0, err
	}
	// Sequence now holds the count of ids handed out, the allocated id is one less.
	return counter.Sequence - 1, nil
}

func (db *Database) SaveRemittance(ctx context.Context, document *model.RemittanceDocument) error {
	client := db.Client.Database(db.DbName).Collection(model.RemittanceCollection)

	_, err := client.InsertOne(ctx, document)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					// Return the custom error type so that we can return 4xx errors to client
					return &DuplicateKeyError{
						Key:     fmt.Sprintf("%d", document.ID),
						Message: "Remittance already exists",
					}
				}
			}
		}
		return err
	}
	return nil
}

func (db *Database) FindRemittanceByID(ctx context.Context, id uint64) (*model.RemittanceDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.RemittanceCollection)

	filter := bson.M{"_id": id}
	var remittance model.RemittanceDocument
	err := client.FindOne(ctx, filter).Decode(&remittance)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     fmt.Sprintf("%d", id),
				Message: "Remittance not found",
			}
		}
		return nil, err
	}
	return &remittance, nil
}

// FindRemittancesByCreator returns the remittances created by the given
// identity in creation order, which is the order of the creator's
// append-only secondary index.
func (db *Database) FindRemittancesByCreator(ctx context.Context, creator string) ([]model.RemittanceDocument, error) {
	return db.findRemittancesByRole(ctx, bson.M{"creator": creator})
}

// FindRemittancesByRecipient returns the remittances naming the given
// identity as recipient in creation order.
func (db *Database) FindRemittancesByRecipient(ctx context.Context, recipient string) ([]model.RemittanceDocument, error) {
	return db.findRemittancesByRole(ctx, bson.M{"recipient": recipient})
}

func (db *Database) findRemittancesByRole(ctx context.Context, filter bson.M) ([]model.RemittanceDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.RemittanceCollection)

	opts := options.Find().SetSort(bson.M{"_id": 1}) // ids are assigned in creation order
	cursor, err := client.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var remittances []model.RemittanceDocument
	if err = cursor.All(ctx, &remittances); err != nil {
		return nil, err
	}
	return remittances, nil
}

func (db *Database) CountRemittances(ctx context.Context) (uint64, error) {
	client := db.Client.Database(db.DbName).Collection(model.CounterCollection)

	var counter model.CounterDocument
	err := client.FindOne(ctx, bson.M{"_id": model.RemittanceCounterID}).Decode(&counter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// No remittance has ever been created.
			return 0, nil
		}
		return 0, err
	}
	return counter.Sequence, nil
}

// TransitionRemittanceState updates the state of a remittance to a new state.
// It returns a NotFoundError if the remittance is not found or not in an
// eligible state to transition, so a concurrent finalization can never apply
// twice.
func (db *Database) TransitionRemittanceState(
	ctx context.Context, id uint64, newState types.RemittanceState, eligiblePreviousStates []types.RemittanceState,
) error {
	client := db.Client.Database(db.DbName).Collection(model.RemittanceCollection)

	filter := bson.M{"_id": id, "state": bson.M{"$in": eligiblePreviousStates}}
	update := bson.M{"$set": bson.M{"state": newState}}
	result, err := client.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     fmt.Sprintf("%d", id),
			Message: "Remittance not found or not in eligible state to transition",
		}
	}
	return nil
}
