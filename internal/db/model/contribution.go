package model

import "time"

const ContributionCollection = "contributions"

// ContributionDocument is the per-contributor ledger entry. The amount
// accumulates across repeated contributions from the same identity and never
// resets while the remittance is active. Keyed by the unique compound index
// (remittance_id, contributor).
type ContributionDocument struct {
	RemittanceID uint64    `bson:"remittance_id"`
	Contributor  string    `bson:"contributor"`
	Amount       uint64    `bson:"amount"`
	UpdatedAt    time.Time `bson:"updated_at"`
}
