package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	sender    string
	recipient string
	amount    float64
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Submit a transaction to the node's mempool",
	RunE:  sendRun,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&sender, "sender", "s", "", "Identifier of the sender.")
	sendCmd.Flags().StringVarP(&recipient, "recipient", "r", "", "Identifier of the recipient.")
	sendCmd.Flags().Float64VarP(&amount, "amount", "a", 0, "Amount to send.")
	sendCmd.MarkFlagRequired("sender")
	sendCmd.MarkFlagRequired("recipient")
	sendCmd.MarkFlagRequired("amount")
}

func sendRun(cmd *cobra.Command, args []string) error {
	tx := struct {
		Sender    string  `json:"sender"`
		Recipient string  `json:"recipient"`
		Amount    float64 `json:"amount"`
	}{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := call(cmd.Context(), http.MethodPost, "/transactions/new", tx, &resp); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.Message)

	return nil
}
