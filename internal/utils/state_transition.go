package utils

import (
	"github.com/remitflow/escrow-api-service/internal/types"
)

// QualifiedStatesToReleased returns the qualified existing states to transition to "released"
func QualifiedStatesToReleased() []types.RemittanceState {
	return []types.RemittanceState{types.Active}
}

// QualifiedStatesToCancelled returns the qualified existing states to transition to "cancelled"
func QualifiedStatesToCancelled() []types.RemittanceState {
	return []types.RemittanceState{types.Active}
}

// QualifiedStatesForContribution returns the states in which a remittance still accepts contributions
func QualifiedStatesForContribution() []types.RemittanceState {
	return []types.RemittanceState{types.Active}
}
