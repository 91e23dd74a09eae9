package database

import (
	"fmt"
	"math"
)

// RewardSender is the sender used for the transaction that pays a miner for
// forging a block.
const RewardSender = "0"

// =============================================================================

// Tx is the transactional information between two parties. A Tx is a value
// and is never changed once it has been submitted.
type Tx struct {
	Sender    string  `json:"sender" yaml:"sender"`       // Identifier of the party sending value.
	Recipient string  `json:"recipient" yaml:"recipient"` // Identifier of the party receiving value.
	Amount    float64 `json:"amount" yaml:"amount"`       // Value being transferred.
}

// NewTx constructs a new transaction.
func NewTx(sender string, recipient string, amount float64) Tx {
	return Tx{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
	}
}

// NewRewardTx constructs the transaction that pays the miner of a block.
func NewRewardTx(recipient string, amount float64) Tx {
	return NewTx(RewardSender, recipient, amount)
}

// Validate checks the amount can be encoded and hashed. NaN and infinite
// amounts have no JSON form.
func (tx Tx) Validate() error {
	if math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) {
		return fmt.Errorf("amount %v is not a finite number", tx.Amount)
	}
	return nil
}

// String implements the fmt.Stringer interface for logging.
func (tx Tx) String() string {
	return fmt.Sprintf("%s->%s:%v", tx.Sender, tx.Recipient, tx.Amount)
}
