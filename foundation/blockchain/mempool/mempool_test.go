package mempool_test

import (
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/mempool"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestCRUD(t *testing.T) {
	type table struct {
		name string
		txs  []database.Tx
	}

	tt := []table{
		{
			name: "basic",
			txs: []database.Tx{
				{Sender: "Alice", Recipient: "Bob", Amount: 50},
				{Sender: "Bob", Recipient: "Carol", Amount: 10},
				{Sender: "Carol", Recipient: "Alice", Amount: 2.5},
			},
		},
		{
			name: "duplicates",
			txs: []database.Tx{
				{Sender: "Alice", Recipient: "Bob", Amount: 1},
				{Sender: "Alice", Recipient: "Bob", Amount: 1},
			},
		},
	}

	t.Log("Given the need to validate mempool api.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling a set of transaction.", testID)
			{
				f := func(t *testing.T) {
					mp := mempool.New()

					for i, tx := range tst.txs {
						if n := mp.Add(tx); n != i+1 {
							t.Fatalf("\t%s\tTest %d:\tShould be able to add new transaction, got count %d.", failed, testID, n)
						}
						t.Logf("\t%s\tTest %d:\tShould be able to add new transaction: %s", success, testID, tx)
					}

					snap := mp.Snapshot()
					if len(snap) != len(tst.txs) {
						t.Fatalf("\t%s\tTest %d:\tShould get back every transaction, got %d.", failed, testID, len(snap))
					}
					for i, tx := range snap {
						if tx != tst.txs[i] {
							t.Logf("\t%s\tTest %d:\tgot: %s", failed, testID, tx)
							t.Logf("\t%s\tTest %d:\texp: %s", failed, testID, tst.txs[i])
							t.Fatalf("\t%s\tTest %d:\tShould keep submission order.", failed, testID)
						}
					}
					t.Logf("\t%s\tTest %d:\tShould keep submission order.", success, testID)

					snap[0].Amount = -1
					if mp.Snapshot()[0] != tst.txs[0] {
						t.Fatalf("\t%s\tTest %d:\tShould return a copy from Snapshot.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould return a copy from Snapshot.", success, testID)

					mp.Clear()
					if mp.Count() != 0 || len(mp.Snapshot()) != 0 {
						t.Fatalf("\t%s\tTest %d:\tShould be able to clear the mempool.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould be able to clear the mempool.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}
}
