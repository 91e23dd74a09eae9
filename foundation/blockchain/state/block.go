package state

import (
	"encoding/json"
	"fmt"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
)

// ForgeBlock appends a new block carrying every pending transaction and then
// clears the mempool. The previous hash must still be the hash of the last
// block in the chain, otherwise ErrStaleForge is returned and nothing changes.
func (s *State) ForgeBlock(proof uint64, prevHash database.Digest) (database.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkTail(prevHash); err != nil {
		return database.Block{}, err
	}

	block := s.forgeBlock(proof, prevHash)
	s.blockEvent(block)

	return block, nil
}

// LastBlock returns the last block in the chain. The boolean is false only
// when the chain has no blocks.
func (s *State) LastBlock() (database.Block, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.chain) == 0 {
		return database.Block{}, false
	}

	return copyBlock(s.chain[len(s.chain)-1]), true
}

// HashBlock returns the digest of the specified block.
func (s *State) HashBlock(block database.Block) database.Digest {
	return database.Hash(block)
}

// =============================================================================

// checkTail validates the chain is initialized and the previous hash still
// matches the last block. The caller must hold the lock.
func (s *State) checkTail(prevHash database.Digest) error {
	if len(s.chain) == 0 {
		return ErrChainNotInitialized
	}

	if last := s.chain[len(s.chain)-1]; last.Hash() != prevHash {
		return ErrStaleForge
	}

	return nil
}

// forgeBlock builds the next block from the mempool, appends it and clears
// the mempool. The caller must hold the lock and have called checkTail.
func (s *State) forgeBlock(proof uint64, prevHash database.Digest) database.Block {
	index := uint64(len(s.chain)) + 1
	block := database.NewBlock(index, s.mempool.Snapshot(), proof, prevHash)

	s.chain = append(s.chain, block)
	s.mempool.Clear()

	s.event("state: forgeBlock: blk[%d]: proof[%d]: trans[%d]: hash[%s]", block.Index, block.Proof, len(block.Transactions), block.Hash())

	return copyBlock(block)
}

// blockEvent provides a specific event about a new block in the chain for
// application specific support.
func (s *State) blockEvent(block database.Block) {
	blockJSON, err := json.Marshal(block)
	if err != nil {
		blockJSON = []byte(fmt.Sprintf("%q", err.Error()))
	}

	s.event(`viewer: block: {"hash":%q,"block":%s}`, block.Hash(), string(blockJSON))
}

// copyBlock returns a block that shares no memory with the original.
func copyBlock(block database.Block) database.Block {
	if block.Transactions != nil {
		trans := make([]database.Tx, len(block.Transactions))
		copy(trans, block.Transactions)
		block.Transactions = trans
	}

	return block
}

// copyChain returns a chain that shares no memory with the original.
func copyChain(chain []database.Block) []database.Block {
	out := make([]database.Block, len(chain))
	for i, block := range chain {
		out[i] = copyBlock(block)
	}

	return out
}
