package state

import (
	"fmt"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
)

// SubmitTransaction adds a transaction to the mempool and returns the index
// of the block it will land in, which is the next block to be forged. No
// accounting checks are performed on the transaction, but the amount must be
// a finite number.
func (s *State) SubmitTransaction(tx database.Tx) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.chain) == 0 {
		return 0, ErrChainNotInitialized
	}

	if err := tx.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}

	n := s.mempool.Add(tx)
	index := uint64(len(s.chain)) + 1

	s.event("state: SubmitTransaction: tx[%s]: blk[%d]: pending[%d]", tx, index, n)

	return index, nil
}
