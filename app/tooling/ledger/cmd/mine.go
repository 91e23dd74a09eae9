package cmd

import (
	"net/http"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/spf13/cobra"
)

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Ask the node to mine the next block",
	RunE:  mineRun,
}

func init() {
	rootCmd.AddCommand(mineCmd)
}

func mineRun(cmd *cobra.Command, args []string) error {
	var resp struct {
		Message      string          `json:"message"`
		Index        uint64          `json:"index"`
		Transactions []database.Tx   `json:"transactions"`
		Proof        uint64          `json:"proof"`
		PrevHash     database.Digest `json:"previous_hash"`
	}
	if err := call(cmd.Context(), http.MethodGet, "/mine", nil, &resp); err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), resp)
}
