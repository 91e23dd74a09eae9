// Package state is the core API for the blockchain and implements all the
// business rules and processing.
package state

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
	"github.com/ardanlabs/ledger/foundation/blockchain/mempool"
	"github.com/ardanlabs/ledger/foundation/blockchain/peer"
)

// Set of error variables for the ledger.
var (
	ErrChainNotInitialized = errors.New("chain not initialized")
	ErrStaleForge          = errors.New("last block changed, forge rejected")
	ErrInvalidTransaction  = errors.New("invalid transaction")
)

// defaultMaxPeerResponse bounds the size of a chain read from a peer when
// none is configured.
const defaultMaxPeerResponse = 64 << 20

// defaultPeerTimeout bounds a single peer request when none is configured.
const defaultPeerTimeout = 5 * time.Second

// =============================================================================

// EventHandler defines a function that is called when events
// occur in the processing of the ledger.
type EventHandler func(v string, args ...any)

// Worker interface represents the behavior required to be implemented by any
// package providing background support for consensus resolution.
type Worker interface {
	Shutdown()
	SignalResolve()
}

// =============================================================================

// Config represents the configuration required to start
// the blockchain node.
type Config struct {
	NodeID      string
	Host        string
	Genesis     genesis.Genesis
	KnownPeers  *peer.PeerSet
	PeerTimeout time.Duration
	MaxPeerResp int64
	EvHandler   EventHandler
}

// State manages the ledger: the chain of blocks and the pool of pending
// transactions. A single mutex serializes every change to either of them.
type State struct {
	nodeID      string
	host        string
	genesis     genesis.Genesis
	peerTimeout time.Duration
	maxPeerResp int64
	evHandler   EventHandler
	knownPeers  *peer.PeerSet
	client      *http.Client

	mu      sync.RWMutex
	chain   []database.Block
	mempool *mempool.Mempool

	Worker Worker
}

// New constructs a new ledger and forges its genesis block.
func New(cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	if cfg.NodeID == "" {
		return nil, errors.New("node id is required")
	}

	if err := cfg.Genesis.Validate(); err != nil {
		return nil, err
	}

	knownPeers := cfg.KnownPeers
	if knownPeers == nil {
		knownPeers = peer.NewPeerSet()
	}

	peerTimeout := cfg.PeerTimeout
	if peerTimeout <= 0 {
		peerTimeout = defaultPeerTimeout
	}

	maxPeerResp := cfg.MaxPeerResp
	if maxPeerResp <= 0 {
		maxPeerResp = defaultMaxPeerResponse
	}

	// Create the State to provide support for managing the blockchain.
	state := State{
		nodeID:      cfg.NodeID,
		host:        cfg.Host,
		genesis:     cfg.Genesis,
		peerTimeout: peerTimeout,
		maxPeerResp: maxPeerResp,
		evHandler:   ev,
		knownPeers:  knownPeers,
		client:      &http.Client{},
		mempool:     mempool.New(),
	}

	// The genesis block must be the first block of every chain.
	state.appendGenesis()

	// The Worker is not set here. The call to worker.Run will assign itself
	// and start everything up and running for the node.

	return &state, nil
}

// Shutdown cleanly brings the node down.
func (s *State) Shutdown() error {
	s.event("state: shutdown: started")
	defer s.event("state: shutdown: completed")

	// Stop all background consensus activity.
	if s.Worker != nil {
		s.Worker.Shutdown()
	}

	return nil
}

// =============================================================================

// appendGenesis forges the fixed genesis block onto an empty chain.
func (s *State) appendGenesis() {
	s.mu.Lock()
	defer s.mu.Unlock()

	gen := database.NewGenesisBlock()
	s.chain = append(s.chain, gen)

	s.evHandler("state: appendGenesis: blk[%d]: hash[%s]", gen.Index, gen.Hash())
}

// event sends the event to the handler. A State that was not built by New
// has no handler.
func (s *State) event(v string, args ...any) {
	if s.evHandler != nil {
		s.evHandler(v, args...)
	}
}
