package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransaction_Creation(t *testing.T) {
	tx := NewTransaction("o1", 250)

	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, "o1", tx.OrderID)
	assert.Equal(t, 250.0, tx.Amount)
	assert.Equal(t, TransactionStatusPending, tx.Status)
}

func TestTransaction_Process_ApprovesAtThreshold(t *testing.T) {
	tx := NewTransaction("o1", 100)
	tx.Process()

	assert.Equal(t, TransactionStatusApproved, tx.Status)
}

func TestTransaction_Process_ApprovesAboveThreshold(t *testing.T) {
	tx := NewTransaction("o1", 300)
	tx.Process()

	assert.Equal(t, TransactionStatusApproved, tx.Status)
}

func TestTransaction_Process_DeclinesBelowThreshold(t *testing.T) {
	tx := NewTransaction("o1", 99.99)
	tx.Process()

	assert.Equal(t, TransactionStatusDeclined, tx.Status)
}
