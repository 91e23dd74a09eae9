package cmd

import (
	"fmt"
	"net/http"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var output string

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Print the node's chain and pending transactions",
	RunE:  chainRun,
}

func init() {
	rootCmd.AddCommand(chainCmd)
	chainCmd.Flags().StringVarP(&output, "output", "o", "json", "Output format: json or yaml.")
}

func chainRun(cmd *cobra.Command, args []string) error {
	var data database.ChainData
	if err := call(cmd.Context(), http.MethodGet, "/chain", nil, &data); err != nil {
		return err
	}

	switch output {
	case "json":
		return printJSON(cmd.OutOrStdout(), data)

	case "yaml":
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(toYAML(data))

	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}

// yamlBlock renders the previous hash as hex text since yaml has no
// knowledge of the digest's text form.
type yamlBlock struct {
	Index        uint64        `yaml:"index"`
	TimeStamp    int64         `yaml:"timestamp"`
	Transactions []database.Tx `yaml:"transactions"`
	Proof        uint64        `yaml:"proof"`
	PrevHash     string        `yaml:"previous_hash"`
}

type yamlChain struct {
	Chain               []yamlBlock   `yaml:"chain"`
	CurrentTransactions []database.Tx `yaml:"current_transactions"`
	Length              int           `yaml:"length"`
}

func toYAML(data database.ChainData) yamlChain {
	blocks := make([]yamlBlock, len(data.Chain))
	for i, blk := range data.Chain {
		blocks[i] = yamlBlock{
			Index:        blk.Index,
			TimeStamp:    blk.TimeStamp,
			Transactions: blk.Transactions,
			Proof:        blk.Proof,
			PrevHash:     blk.PrevHash.Hex(),
		}
	}

	return yamlChain{
		Chain:               blocks,
		CurrentTransactions: data.CurrentTransactions,
		Length:              data.Length,
	}
}
