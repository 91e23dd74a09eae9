package genesis_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Load(t *testing.T) {
	type table struct {
		name    string
		content string
		exp     genesis.Genesis
		fail    bool
	}

	tt := []table{
		{name: "full", content: `{"difficulty":5,"mining_reward":2.5}`, exp: genesis.Genesis{Difficulty: 5, MiningReward: 2.5}},
		{name: "partial", content: `{"difficulty":3}`, exp: genesis.Genesis{Difficulty: 3, MiningReward: 1}},
		{name: "zero-difficulty", content: `{"difficulty":0}`, fail: true},
		{name: "bad-json", content: `{"difficulty":`, fail: true},
	}

	t.Log("Given the need to load the genesis file.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling a %s file.", testID, tst.name)
			{
				f := func(t *testing.T) {
					path := filepath.Join(t.TempDir(), "genesis.json")
					if err := os.WriteFile(path, []byte(tst.content), 0600); err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould be able to write the file: %v", failed, testID, err)
					}

					gen, err := genesis.Load(path)
					if tst.fail {
						if err == nil {
							t.Fatalf("\t%s\tTest %d:\tShould reject the file.", failed, testID)
						}
						t.Logf("\t%s\tTest %d:\tShould reject the file.", success, testID)
						return
					}

					if err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould be able to load the file: %v", failed, testID, err)
					}

					if gen != tst.exp {
						t.Logf("\t%s\tTest %d:\tgot: %+v", failed, testID, gen)
						t.Logf("\t%s\tTest %d:\texp: %+v", failed, testID, tst.exp)
						t.Fatalf("\t%s\tTest %d:\tShould get back the settings.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould get back the settings.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}
}

func Test_Validate(t *testing.T) {
	type table struct {
		name  string
		gen   genesis.Genesis
		valid bool
	}

	tt := []table{
		{name: "default", gen: genesis.Default(), valid: true},
		{name: "zero-reward", gen: genesis.Genesis{Difficulty: 4}, valid: true},
		{name: "too-hard", gen: genesis.Genesis{Difficulty: 65, MiningReward: 1}},
		{name: "negative-reward", gen: genesis.Genesis{Difficulty: 4, MiningReward: -1}},
		{name: "nan-reward", gen: genesis.Genesis{Difficulty: 4, MiningReward: math.NaN()}},
		{name: "inf-reward", gen: genesis.Genesis{Difficulty: 4, MiningReward: math.Inf(1)}},
		{name: "neg-inf-reward", gen: genesis.Genesis{Difficulty: 4, MiningReward: math.Inf(-1)}},
	}

	t.Log("Given the need to validate genesis settings.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling %s settings.", testID, tst.name)
			{
				f := func(t *testing.T) {
					err := tst.gen.Validate()
					if (err == nil) != tst.valid {
						t.Fatalf("\t%s\tTest %d:\tShould report valid %v, got %v.", failed, testID, tst.valid, err)
					}
					t.Logf("\t%s\tTest %d:\tShould report valid %v.", success, testID, tst.valid)
				}

				t.Run(tst.name, f)
			}
		}
	}
}
