package state

import (
	"context"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
)

// Resolve asks every known peer for its chain and adopts the longest valid
// chain that is strictly longer than the local one. It reports true when the
// local chain was replaced. A peer that can't be reached or that serves an
// invalid chain is skipped. The mempool is not touched.
func (s *State) Resolve(ctx context.Context) (bool, error) {
	if s.QueryChainLength() == 0 {
		return false, ErrChainNotInitialized
	}

	s.event("state: Resolve: started")
	defer s.event("state: Resolve: completed")

	maxLength := s.QueryChainLength()
	var winner []database.Block

	for _, pr := range s.RetrieveKnownPeers() {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		candidate, err := s.NetRequestPeerChain(ctx, pr)
		if err != nil {
			s.event("state: Resolve: peer[%s]: WARNING: %s", pr, err)
			continue
		}

		if len(candidate) <= maxLength {
			s.event("state: Resolve: peer[%s]: length[%d]: not longer than [%d]", pr, len(candidate), maxLength)
			continue
		}

		if err := database.ValidateChain(candidate, s.genesis.Difficulty, s.event); err != nil {
			s.event("state: Resolve: peer[%s]: WARNING: invalid chain: %s", pr, err)
			continue
		}

		s.event("state: Resolve: peer[%s]: length[%d]: new candidate", pr, len(candidate))

		maxLength = len(candidate)
		winner = candidate
	}

	if winner == nil {
		return false, nil
	}

	return s.replaceChain(winner), nil
}

// replaceChain swaps in the specified chain if it is still strictly longer
// than the local chain.
func (s *State) replaceChain(chain []database.Block) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(chain) <= len(s.chain) {
		s.event("state: replaceChain: local chain grew to [%d], keep it", len(s.chain))
		return false
	}

	s.chain = copyChain(chain)

	s.event("state: replaceChain: chain replaced: length[%d]", len(s.chain))

	return true
}
