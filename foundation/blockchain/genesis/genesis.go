// Package genesis maintains the fixed settings every node of a network must
// share, such as the puzzle difficulty and the mining reward.
package genesis

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/ardanlabs/ledger/foundation/blockchain/pow"
)

// Genesis represents the genesis file.
type Genesis struct {
	Difficulty   uint    `json:"difficulty"`    // Number of leading zeros a proof digest needs.
	MiningReward float64 `json:"mining_reward"` // Reward for mining a block.
}

// Default returns the settings used when no genesis file is provided.
func Default() Genesis {
	return Genesis{
		Difficulty:   pow.DefaultDifficulty,
		MiningReward: 1,
	}
}

// =============================================================================

// Load opens and consumes the genesis file. Values missing from the file keep
// their defaults.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, err
	}

	genesis := Default()
	if err := json.Unmarshal(content, &genesis); err != nil {
		return Genesis{}, fmt.Errorf("decoding genesis file: %w", err)
	}

	if err := genesis.Validate(); err != nil {
		return Genesis{}, err
	}

	return genesis, nil
}

// Validate checks the settings can produce a working chain.
func (g Genesis) Validate() error {
	if g.Difficulty == 0 {
		return errors.New("difficulty must be greater than zero")
	}

	if g.Difficulty > 64 {
		return fmt.Errorf("difficulty %d exceeds the digest length", g.Difficulty)
	}

	if math.IsNaN(g.MiningReward) || math.IsInf(g.MiningReward, 0) {
		return fmt.Errorf("mining reward %v is not a finite number", g.MiningReward)
	}

	if g.MiningReward < 0 {
		return errors.New("mining reward can't be negative")
	}

	return nil
}
