package db

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// DuplicateKeyError is an error type for duplicate key errors
type DuplicateKeyError struct {
	Key     string
	Message string
}

func (e *DuplicateKeyError) Error() string {
	return e.Message
}

func IsDuplicateKeyError(err error) bool {
	var duplicateKeyError *DuplicateKeyError
	return errors.As(err, &duplicateKeyError)
}

// Not found Error
type NotFoundError struct {
	Key     string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	return errors.As(err, &notFoundError)
}

// Error code references: https://www.mongodb.com/docs/manual/reference/error-codes/
func IsWriteConflictError(err error) bool {
	if err == nil {
		return false
	}

	var cmdErr *mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr != nil && cmdErr.Code == 112
	}

	return false
}

func IsTransactionAbortedError(err error) bool {
	if err == nil {
		return false
	}

	var cmdErr *mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr != nil && cmdErr.Code == 251
	}

	return false
}
