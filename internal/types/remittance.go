package types

import "fmt"

type RemittanceState string

const (
	Active    RemittanceState = "active"
	Released  RemittanceState = "released"
	Cancelled RemittanceState = "cancelled"
)

func (s RemittanceState) ToString() string {
	return string(s)
}

// IsTerminal reports whether no further mutation is permitted in this state.
func (s RemittanceState) IsTerminal() bool {
	return s == Released || s == Cancelled
}

func FromStringToRemittanceState(s string) (RemittanceState, error) {
	switch s {
	case "active":
		return Active, nil
	case "released":
		return Released, nil
	case "cancelled":
		return Cancelled, nil
	default:
		return "", fmt.Errorf("invalid remittance state: %s", s)
	}
}
