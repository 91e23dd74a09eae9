package database

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// GenesisProof is the proof seeded into the genesis block.
const GenesisProof uint64 = 100

// Digest is the fixed length hash of a block's canonical content. It encodes
// as 0x prefixed hex text on the wire.
type Digest = common.Hash

// ZeroHash is the previous hash sentinel of the genesis block.
var ZeroHash Digest

// =============================================================================

// Block represents a group of transactions batched together. The field order
// of this struct is the canonical order used for hashing and must not change.
type Block struct {
	Index        uint64 `json:"index" yaml:"index"`                 // Position in the chain, starting at 1.
	TimeStamp    int64  `json:"timestamp" yaml:"timestamp"`         // Unix seconds when the block was forged.
	Transactions []Tx   `json:"transactions" yaml:"transactions"`   // Transactions in submission order, reward last.
	Proof        uint64 `json:"proof" yaml:"proof"`                 // Value that solved the proof of work puzzle.
	PrevHash     Digest `json:"previous_hash" yaml:"previous_hash"` // Hash of the preceding block.
}

// NewBlock constructs a block stamped with the current time. The transactions
// are copied so the block owns its own sequence.
func NewBlock(index uint64, trans []Tx, proof uint64, prevHash Digest) Block {
	txs := make([]Tx, len(trans))
	copy(txs, trans)

	return Block{
		Index:        index,
		TimeStamp:    time.Now().UTC().Unix(),
		Transactions: txs,
		Proof:        proof,
		PrevHash:     prevHash,
	}
}

// NewGenesisBlock constructs the fixed first block of every chain.
func NewGenesisBlock() Block {
	return NewBlock(1, nil, GenesisProof, ZeroHash)
}

// Hash returns the unique hash for the Block.
func (b Block) Hash() Digest {
	return Hash(b)
}

// IsGenesis reports whether the block has the shape of a genesis block.
func (b Block) IsGenesis() bool {
	return b.Index == 1 &&
		b.PrevHash == ZeroHash &&
		b.Proof == GenesisProof &&
		len(b.Transactions) == 0
}

// =============================================================================

// Hash returns the sha256 digest of the block's canonical JSON form. The
// producer of a block and every validator must agree on this byte for byte.
func Hash(b Block) Digest {

	// A nil transaction list and an empty one must hash the same.
	if b.Transactions == nil {
		b.Transactions = []Tx{}
	}

	data, err := json.Marshal(b)
	if err != nil {

		// Only a non-finite amount fails to marshal. Such a block still gets a
		// digest of its own content and is rejected by ValidateChain.
		data = fmt.Appendf(nil, "%+v", b)
	}

	return sha256.Sum256(data)
}
