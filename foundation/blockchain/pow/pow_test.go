package pow_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/pow"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Solve(t *testing.T) {
	type table struct {
		name       string
		difficulty uint
		lastProof  uint64
	}

	tt := []table{
		{name: "genesis-seed", difficulty: pow.DefaultDifficulty, lastProof: 100},
		{name: "zero", difficulty: 3, lastProof: 0},
		{name: "large", difficulty: 3, lastProof: 18446744073709551615},
		{name: "easy", difficulty: 1, lastProof: 35293},
	}

	t.Log("Given the need to solve the proof of work puzzle.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling last proof %d at difficulty %d.", testID, tst.lastProof, tst.difficulty)
			{
				f := func(t *testing.T) {
					proof, err := pow.Solve(context.Background(), tst.difficulty, tst.lastProof)
					if err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould be able to solve the puzzle: %v", failed, testID, err)
					}
					t.Logf("\t%s\tTest %d:\tShould be able to solve the puzzle.", success, testID)

					if !pow.Satisfies(tst.difficulty, tst.lastProof, proof) {
						t.Fatalf("\t%s\tTest %d:\tShould satisfy the puzzle with proof %d.", failed, testID, proof)
					}
					t.Logf("\t%s\tTest %d:\tShould satisfy the puzzle with proof %d.", success, testID, proof)

					guess := fmt.Sprintf("%d%d", tst.lastProof, proof)
					sum := sha256.Sum256([]byte(guess))
					hash := hex.EncodeToString(sum[:])
					if !strings.HasPrefix(hash, strings.Repeat("0", int(tst.difficulty))) {
						t.Logf("\t%s\tTest %d:\tgot: %s", failed, testID, hash)
						t.Fatalf("\t%s\tTest %d:\tShould produce a digest with leading zeros.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould produce a digest with leading zeros.", success, testID)

					for candidate := uint64(0); candidate < proof; candidate++ {
						if pow.Satisfies(tst.difficulty, tst.lastProof, candidate) {
							t.Fatalf("\t%s\tTest %d:\tShould return the first solution, %d also solves.", failed, testID, candidate)
						}
					}
					t.Logf("\t%s\tTest %d:\tShould return the first solution.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}
}

func Test_Satisfies(t *testing.T) {
	t.Log("Given the need to check candidate proofs.")
	{
		t.Logf("\tTest 0:\tWhen difficulty is zero.")
		{
			if !pow.Satisfies(0, 100, 1) {
				t.Fatalf("\t%s\tTest 0:\tShould accept any candidate.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould accept any candidate.", success)
		}

		t.Logf("\tTest 1:\tWhen difficulty exceeds the digest length.")
		{
			if pow.Satisfies(65, 100, 1) {
				t.Fatalf("\t%s\tTest 1:\tShould reject every candidate.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould reject every candidate.", success)
		}

		t.Logf("\tTest 2:\tWhen checking the same pair twice.")
		{
			a := pow.Satisfies(2, 7, 11)
			b := pow.Satisfies(2, 7, 11)
			if a != b {
				t.Fatalf("\t%s\tTest 2:\tShould be deterministic.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould be deterministic.", success)
		}
	}
}

func Test_SolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	t.Log("Given the need to stop a search during shutdown.")
	{
		if _, err := pow.Solve(ctx, 64, 1); err == nil {
			t.Fatalf("\t%s\tShould return an error for a cancelled context.", failed)
		}
		t.Logf("\t%s\tShould return an error for a cancelled context.", success)
	}
}
