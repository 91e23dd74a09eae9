// Package database holds the value types that make up the ledger along with
// the rules for hashing and validating a chain of blocks.
package database

import (
	"errors"
	"fmt"

	"github.com/ardanlabs/ledger/foundation/blockchain/pow"
)

// ErrEmptyChain is returned when a chain with no blocks is validated.
var ErrEmptyChain = errors.New("chain has no blocks")

// ValidationError reports the first block in a chain that broke a rule.
type ValidationError struct {
	Index  uint64
	Reason string
}

// Error implements the error interface.
func (ve *ValidationError) Error() string {
	return fmt.Sprintf("block %d: %s", ve.Index, ve.Reason)
}

// =============================================================================

// ChainData is the wire form of a node's ledger: the committed blocks and
// the transactions waiting to be forged.
type ChainData struct {
	Chain               []Block `json:"chain" yaml:"chain"`
	CurrentTransactions []Tx    `json:"current_transactions" yaml:"current_transactions"`
	Length              int     `json:"length" yaml:"length"`
}

// =============================================================================

// ValidateChain walks the chain from the second block onward and checks that
// each block holds only finite amounts, links to the hash of its parent and
// carries a proof that solves the puzzle relative to its parent's proof. The
// walk stops at the first failure.
//
// The first block is only checked for the genesis shape. Its digest is not
// pinned since every node stamps its own genesis with its own start time.
func ValidateChain(blocks []Block, difficulty uint, evHandler func(v string, args ...any)) error {
	if evHandler == nil {
		evHandler = func(string, ...any) {}
	}

	if len(blocks) == 0 {
		return ErrEmptyChain
	}

	if !blocks[0].IsGenesis() {
		return &ValidationError{Index: blocks[0].Index, Reason: "first block is not a genesis block"}
	}

	prev := blocks[0]
	for i := 1; i < len(blocks); i++ {
		blk := blocks[i]

		evHandler("database: ValidateChain: validate: blk[%d]: check: transactions can be encoded", blk.Index)

		for _, tx := range blk.Transactions {
			if err := tx.Validate(); err != nil {
				return &ValidationError{Index: blk.Index, Reason: fmt.Sprintf("transaction %s: %s", tx, err)}
			}
		}

		evHandler("database: ValidateChain: validate: blk[%d]: check: parent hash does match parent block", blk.Index)

		prevHash := Hash(prev)
		if blk.PrevHash != prevHash {
			return &ValidationError{
				Index:  blk.Index,
				Reason: fmt.Sprintf("parent block hash doesn't match, got %s, exp %s", blk.PrevHash, prevHash),
			}
		}

		evHandler("database: ValidateChain: validate: blk[%d]: check: proof solves the puzzle", blk.Index)

		if !pow.Satisfies(difficulty, prev.Proof, blk.Proof) {
			return &ValidationError{
				Index:  blk.Index,
				Reason: fmt.Sprintf("proof %d does not solve the puzzle for parent proof %d", blk.Proof, prev.Proof),
			}
		}

		prev = blk
	}

	return nil
}

// IsValid reports whether the chain passes ValidateChain.
func IsValid(blocks []Block, difficulty uint) bool {
	return ValidateChain(blocks, difficulty, nil) == nil
}
