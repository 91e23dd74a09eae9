package state

import (
	"context"
	"errors"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/pow"
)

// MineNewBlock solves the proof of work puzzle against the last block and
// forges a new block that pays this node the mining reward.
//
// The puzzle is solved without holding the lock. If the chain changed while
// solving, the solution is thrown away and the puzzle is solved again against
// the new last block.
func (s *State) MineNewBlock(ctx context.Context) (database.Block, error) {
	if s.QueryChainLength() == 0 {
		return database.Block{}, ErrChainNotInitialized
	}

	s.event("state: MineNewBlock: MINING: started")
	defer s.event("state: MineNewBlock: MINING: completed")

	for attempt := 1; ; attempt++ {
		last, ok := s.LastBlock()
		if !ok {
			return database.Block{}, ErrChainNotInitialized
		}
		prevHash := last.Hash()

		s.event("state: MineNewBlock: MINING: perform POW: attempt[%d]: prevBlk[%d]: lastProof[%d]", attempt, last.Index, last.Proof)

		t := time.Now()
		proof, err := pow.Solve(ctx, s.genesis.Difficulty, last.Proof)
		if err != nil {
			s.event("state: MineNewBlock: MINING: CANCELLED")
			return database.Block{}, err
		}

		s.event("state: MineNewBlock: MINING: SOLVED: proof[%d]: duration[%v]", proof, time.Since(t))

		block, err := s.forgeRewardBlock(proof, prevHash)
		if err != nil {
			if errors.Is(err, ErrStaleForge) {
				s.event("state: MineNewBlock: MINING: WARNING: chain changed while solving, retry")
				continue
			}
			return database.Block{}, err
		}

		s.blockEvent(block)

		return block, nil
	}
}

// forgeRewardBlock appends the mining reward as the last pending transaction
// and forges the block in one critical section, so the reward is always the
// last transaction of the block and is never added to a stale attempt.
func (s *State) forgeRewardBlock(proof uint64, prevHash database.Digest) (database.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkTail(prevHash); err != nil {
		return database.Block{}, err
	}

	s.mempool.Add(database.NewRewardTx(s.nodeID, s.genesis.MiningReward))

	return s.forgeBlock(proof, prevHash), nil
}
