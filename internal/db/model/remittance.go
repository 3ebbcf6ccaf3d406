package model

import (
	"time"

	"github.com/remitflow/escrow-api-service/internal/types"
)

const RemittanceCollection = "remittances"

// RemittanceDocument is the authoritative record of a pooled-funding
// campaign. The identity fields (creator, recipient, target_amount, purpose,
// created_at) are immutable after insertion; current_amount, state and
// contributors are only mutated through the escrow protocol while the record
// is active.
type RemittanceDocument struct {
	ID            uint64                `bson:"_id"` // zero-based sequence number, primary key
	Creator       string                `bson:"creator"`
	Recipient     string                `bson:"recipient"`
	TargetAmount  uint64                `bson:"target_amount"`
	CurrentAmount uint64                `bson:"current_amount"`
	Purpose       string                `bson:"purpose"`
	State         types.RemittanceState `bson:"state"`
	Contributors  []string              `bson:"contributors"` // distinct identities in insertion order
	CreatedAt     time.Time             `bson:"created_at"`
}
