package state

import (
	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
	"github.com/ardanlabs/ledger/foundation/blockchain/peer"
)

// RetrieveLedger returns a read only snapshot of the chain and the mempool.
func (s *State) RetrieveLedger() database.ChainData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return database.ChainData{
		Chain:               copyChain(s.chain),
		CurrentTransactions: s.mempool.Snapshot(),
		Length:              len(s.chain),
	}
}

// RetrieveChain returns a copy of the blocks in the chain.
func (s *State) RetrieveChain() []database.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyChain(s.chain)
}

// RetrieveMempool returns a copy of the mempool.
func (s *State) RetrieveMempool() []database.Tx {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.mempool.Snapshot()
}

// RetrieveGenesis returns a copy of the genesis settings.
func (s *State) RetrieveGenesis() genesis.Genesis {
	return s.genesis
}

// RetrieveNodeID returns the identity that receives mining rewards.
func (s *State) RetrieveNodeID() string {
	return s.nodeID
}

// RetrieveHost returns a copy of host information.
func (s *State) RetrieveHost() string {
	return s.host
}

// RetrieveKnownPeers retrieves a copy of the known peer list.
func (s *State) RetrieveKnownPeers() []peer.Peer {
	if s.knownPeers == nil {
		return nil
	}
	return s.knownPeers.Copy(s.host)
}

// =============================================================================

// AddKnownPeers adds the peers to the known peer list and asks the worker to
// resolve against them. It returns the number of peers that were new.
func (s *State) AddKnownPeers(peers []peer.Peer) int {
	var added int
	for _, pr := range peers {
		if pr.Match(s.host) {
			continue
		}

		if s.knownPeers.Add(pr) {
			s.event("state: AddKnownPeers: adding peer-node %s", pr)
			added++
		}
	}

	if added > 0 && s.Worker != nil {
		s.Worker.SignalResolve()
	}

	return added
}
