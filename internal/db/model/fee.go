package model

import "time"

const FeeConfigCollection = "fee_config"

// FeeConfigDocumentID is the primary key of the singleton fee configuration document.
const FeeConfigDocumentID = "platform_fee"

type FeeConfigDocument struct {
	ID           string    `bson:"_id"`
	FeeBps       uint64    `bson:"fee_bps"`
	FeeCollector string    `bson:"fee_collector"`
	UpdatedAt    time.Time `bson:"updated_at"`
}
