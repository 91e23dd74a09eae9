package state

// QueryChainLength returns the number of blocks in the chain.
func (s *State) QueryChainLength() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.chain)
}

// QueryMempoolLength returns the current length of the mempool.
func (s *State) QueryMempoolLength() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.mempool.Count()
}

// QueryKnownPeersCount returns the number of known peers.
func (s *State) QueryKnownPeersCount() int {
	if s.knownPeers == nil {
		return 0
	}
	return s.knownPeers.Count()
}
