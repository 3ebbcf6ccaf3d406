package client

type EventType int

const (
	RemittanceCreatedEventType   EventType = 1
	ContributionMadeEventType    EventType = 2
	FundsReleasedEventType       EventType = 3
	RemittanceCancelledEventType EventType = 4
)

type RemittanceCreatedEvent struct {
	EventType    EventType `json:"event_type"` // always 1
	RemittanceID uint64    `json:"remittance_id"`
	Creator      string    `json:"creator"`
	Recipient    string    `json:"recipient"`
	TargetAmount uint64    `json:"target_amount"`
	Purpose      string    `json:"purpose"`
}

func NewRemittanceCreatedEvent(id uint64, creator, recipient string, targetAmount uint64, purpose string) RemittanceCreatedEvent {
	return RemittanceCreatedEvent{
		EventType:    RemittanceCreatedEventType,
		RemittanceID: id,
		Creator:      creator,
		Recipient:    recipient,
		TargetAmount: targetAmount,
		Purpose:      purpose,
	}
}

type ContributionMadeEvent struct {
	EventType    EventType `json:"event_type"` // always 2
	RemittanceID uint64    `json:"remittance_id"`
	Contributor  string    `json:"contributor"`
	Amount       uint64    `json:"amount"`
	NewTotal     uint64    `json:"new_total"` // cumulative pool after this contribution
}

func NewContributionMadeEvent(id uint64, contributor string, amount, newTotal uint64) ContributionMadeEvent {
	return ContributionMadeEvent{
		EventType:    ContributionMadeEventType,
		RemittanceID: id,
		Contributor:  contributor,
		Amount:       amount,
		NewTotal:     newTotal,
	}
}

type FundsReleasedEvent struct {
	EventType    EventType `json:"event_type"` // always 3
	RemittanceID uint64    `json:"remittance_id"`
	Recipient    string    `json:"recipient"`
	Amount       uint64    `json:"amount"` // net amount paid to the recipient
	PlatformFee  uint64    `json:"platform_fee"`
}

func NewFundsReleasedEvent(id uint64, recipient string, amount, platformFee uint64) FundsReleasedEvent {
	return FundsReleasedEvent{
		EventType:    FundsReleasedEventType,
		RemittanceID: id,
		Recipient:    recipient,
		Amount:       amount,
		PlatformFee:  platformFee,
	}
}

type RemittanceCancelledEvent struct {
	EventType      EventType `json:"event_type"` // always 4
	RemittanceID   uint64    `json:"remittance_id"`
	Creator        string    `json:"creator"`
	RefundedAmount uint64    `json:"refunded_amount"` // sum of all refunds issued
}

func NewRemittanceCancelledEvent(id uint64, creator string, refundedAmount uint64) RemittanceCancelledEvent {
	return RemittanceCancelledEvent{
		EventType:      RemittanceCancelledEventType,
		RemittanceID:   id,
		Creator:        creator,
		RefundedAmount: refundedAmount,
	}
}
