package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	for _, status := range VehicleStatuses {
		assert.True(t, IsValidStatus(status), status)
	}

	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("Vendido"))
	assert.False(t, IsValidStatus("sold"))
}

func TestCanTransition(t *testing.T) {
	nonTerminal := []string{StatusAwaitingPrep, StatusAvailable, StatusInMaintenance, StatusReserved}

	t.Run("non-terminal statuses are freely inter-transitionable", func(t *testing.T) {
		for _, from := range nonTerminal {
			for _, to := range nonTerminal {
				assert.True(t, CanTransition(from, to), "%s -> %s", from, to)
			}
		}
	})

	t.Run("nothing transitions into Sold", func(t *testing.T) {
		for _, from := range nonTerminal {
			assert.False(t, CanTransition(from, StatusSold), "%s -> Sold", from)
		}
		assert.False(t, CanTransition(StatusSold, StatusSold))
	})

	t.Run("nothing transitions out of Sold", func(t *testing.T) {
		for _, to := range nonTerminal {
			assert.False(t, CanTransition(StatusSold, to), "Sold -> %s", to)
		}
	})

	t.Run("unknown statuses are rejected", func(t *testing.T) {
		assert.False(t, CanTransition("Unknown", StatusAvailable))
		assert.False(t, CanTransition(StatusAvailable, "Unknown"))
	})
}

func TestIsValidPersonType(t *testing.T) {
	assert.True(t, IsValidPersonType(PersonTypeOwner))
	assert.True(t, IsValidPersonType(PersonTypeClient))
	assert.False(t, IsValidPersonType("Buyer"))
}

func TestIsValidStoreExpenseCategory(t *testing.T) {
	assert.True(t, IsValidStoreExpenseCategory(CategoryRent))
	assert.True(t, IsValidStoreExpenseCategory(CategoryOther))
	assert.False(t, IsValidStoreExpenseCategory("Misc"))
}
