package model

const CounterCollection = "counters"

// RemittanceCounterID is the primary key of the remittance id sequence document.
const RemittanceCounterID = "remittance_id"

// CounterDocument allocates monotonically increasing sequence numbers.
// Sequence holds the count of ids handed out so far, so the next allocated id
// is Sequence before the increment (ids are zero-based).
type CounterDocument struct {
	ID       string `bson:"_id"`
	Sequence uint64 `bson:"seq"`
}
