package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	TransactionStatusPending  = "pending"
	TransactionStatusApproved = "approved"
	TransactionStatusDeclined = "declined"
)

type Transaction struct {
	ID        string
	OrderID   string
	Amount    float64
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewTransaction(orderID string, amount float64) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:        uuid.New().String(),
		OrderID:   orderID,
		Amount:    amount,
		Status:    TransactionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Process settles the transaction. Amounts of 100 or more are approved,
// anything below is declined.
func (t *Transaction) Process() {
	if t.Amount >= 100 {
		t.Status = TransactionStatusApproved
	} else {
		t.Status = TransactionStatusDeclined
	}
	t.UpdatedAt = time.Now().UTC()
}
