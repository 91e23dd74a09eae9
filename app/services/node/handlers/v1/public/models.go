package public

import (
	"github.com/ardanlabs/ledger/foundation/blockchain/database"
)

// newTx is the payload for submitting a transaction. The amount is a pointer
// so a missing amount can be told apart from an amount of zero.
type newTx struct {
	Sender    string   `json:"sender" validate:"required"`
	Recipient string   `json:"recipient" validate:"required"`
	Amount    *float64 `json:"amount" validate:"required"`
}

func (ntx newTx) toTx() database.Tx {
	return database.NewTx(ntx.Sender, ntx.Recipient, *ntx.Amount)
}

type submitted struct {
	Message string `json:"message"`
	Index   uint64 `json:"index"`
}

// =============================================================================

type forged struct {
	Message      string          `json:"message"`
	Index        uint64          `json:"index"`
	Transactions []database.Tx   `json:"transactions"`
	Proof        uint64          `json:"proof"`
	PrevHash     database.Digest `json:"previous_hash"`
}

func toForged(block database.Block) forged {
	return forged{
		Message:      "New block forged",
		Index:        block.Index,
		Transactions: block.Transactions,
		Proof:        block.Proof,
		PrevHash:     block.PrevHash,
	}
}

// =============================================================================

type registerNodes struct {
	Nodes []string `json:"nodes" validate:"required,min=1,dive,required"`
}

type registered struct {
	Message    string   `json:"message"`
	TotalNodes []string `json:"total_nodes"`
}

type nodes struct {
	Nodes []string `json:"nodes"`
}

// =============================================================================

type resolved struct {
	Status  string           `json:"status"`
	Message string           `json:"message"`
	Chain   []database.Block `json:"chain"`
}
