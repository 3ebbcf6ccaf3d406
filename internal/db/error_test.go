package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsNotFoundError(t *testing.T) {
	notFound := &NotFoundError{Key: "1", Message: "remittance not found"}
	assert.True(t, IsNotFoundError(notFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup failed: %w", notFound)))
	assert.False(t, IsNotFoundError(errors.New("something else")))
	assert.False(t, IsNotFoundError(nil))
}

func TestIsWriteConflictError(t *testing.T) {
	conflict := &mongo.CommandError{Code: 112, Name: "WriteConflict", Message: "write conflict"}
	assert.True(t, IsWriteConflictError(conflict))
	assert.False(t, IsWriteConflictError(&mongo.CommandError{Code: 11000}))
	assert.False(t, IsWriteConflictError(nil))
}

func TestIsTransactionAbortedError(t *testing.T) {
	aborted := &mongo.CommandError{Code: 251, Name: "NoSuchTransaction"}
	assert.True(t, IsTransactionAbortedError(aborted))
	assert.False(t, IsTransactionAbortedError(&mongo.CommandError{Code: 112}))
	assert.False(t, IsTransactionAbortedError(nil))
}

func TestShouldRetry(t *testing.T) {
	assert.True(t, shouldRetry(&mongo.CommandError{Code: 112}))
	assert.True(t, shouldRetry(&mongo.CommandError{Code: 251}))
	assert.False(t, shouldRetry(&NotFoundError{Key: "1", Message: "not found"}))
	assert.False(t, shouldRetry(&DuplicateKeyError{Key: "1", Message: "duplicate"}))
}
