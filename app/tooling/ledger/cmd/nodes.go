package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "Manage the node's peers",
}

var nodesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the node's known peers",
	RunE:  nodesListRun,
}

var nodesRegisterCmd = &cobra.Command{
	Use:   "register address...",
	Short: "Register peers with the node",
	Args:  cobra.MinimumNArgs(1),
	RunE:  nodesRegisterRun,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Ask the node to resolve conflicts with its peers",
	RunE:  resolveRun,
}

func init() {
	rootCmd.AddCommand(nodesCmd)
	rootCmd.AddCommand(resolveCmd)
	nodesCmd.AddCommand(nodesListCmd)
	nodesCmd.AddCommand(nodesRegisterCmd)
}

func nodesListRun(cmd *cobra.Command, args []string) error {
	var resp struct {
		Nodes []string `json:"nodes"`
	}
	if err := call(cmd.Context(), http.MethodGet, "/nodes", nil, &resp); err != nil {
		return err
	}

	for _, node := range resp.Nodes {
		fmt.Fprintln(cmd.OutOrStdout(), node)
	}

	return nil
}

func nodesRegisterRun(cmd *cobra.Command, args []string) error {
	req := struct {
		Nodes []string `json:"nodes"`
	}{
		Nodes: args,
	}

	var resp struct {
		Message    string   `json:"message"`
		TotalNodes []string `json:"total_nodes"`
	}
	if err := call(cmd.Context(), http.MethodPost, "/nodes/register", req, &resp); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d known\n", resp.Message, len(resp.TotalNodes))

	return nil
}

func resolveRun(cmd *cobra.Command, args []string) error {
	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := call(cmd.Context(), http.MethodGet, "/nodes/resolve", nil, &resp); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.Message)

	return nil
}
