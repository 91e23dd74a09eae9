package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
)

var keyPath string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a miner key file for a node",
	Long:  "Generate a miner key file. A node started with this key file is credited with its address.",
	RunE:  generateRun,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&keyPath, "key", "k", "miner.ecdsa", "Path of the key file to write.")
}

func generateRun(cmd *cobra.Command, args []string) error {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return err
	}

	if err := crypto.SaveECDSA(keyPath, privateKey); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), crypto.PubkeyToAddress(privateKey.PublicKey).Hex())

	return nil
}
