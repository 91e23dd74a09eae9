// Package pow implements the proof of work puzzle that gates admission of
// new blocks into the chain.
package pow

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// DefaultDifficulty is the number of leading zero hex characters a solution
// must produce when no other difficulty is configured.
const DefaultDifficulty = 4

// reportEvery controls how often Solve checks for cancellation.
const reportEvery = 1 << 16

// =============================================================================

// Satisfies reports whether the candidate proof solves the puzzle relative to
// the last proof. The decimal text of both values is concatenated, hashed, and
// the hex form of the digest must start with difficulty zeros.
//
// This is the only implementation of the puzzle rule. Mining and chain
// validation both call it.
func Satisfies(difficulty uint, lastProof uint64, candidate uint64) bool {
	guess := make([]byte, 0, 40)
	guess = strconv.AppendUint(guess, lastProof, 10)
	guess = strconv.AppendUint(guess, candidate, 10)

	sum := sha256.Sum256(guess)
	hash := hex.EncodeToString(sum[:])

	return isHashSolved(difficulty, hash)
}

// Solve searches for the first candidate, starting at zero, that satisfies the
// puzzle for the last proof. The search has no upper bound. The context only
// allows the process to stop a search in flight during shutdown.
func Solve(ctx context.Context, difficulty uint, lastProof uint64) (uint64, error) {
	var candidate uint64
	for {
		if candidate%reportEvery == 0 && ctx.Err() != nil {
			return 0, ctx.Err()
		}

		if Satisfies(difficulty, lastProof, candidate) {
			return candidate, nil
		}

		candidate++
	}
}

// isHashSolved checks the hash to make sure it complies with
// the POW rules. We need to match a difficulty number of 0's.
func isHashSolved(difficulty uint, hash string) bool {
	if difficulty > uint(len(hash)) {
		return false
	}

	for i := uint(0); i < difficulty; i++ {
		if hash[i] != '0' {
			return false
		}
	}

	return true
}
