package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexos-labs/nexos-go/domain"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available models",
	RunE:  runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	resp, err := client.Models.Request().
		Prepare(domain.ModelsListRequest{}).
		Send(cmd.Context())
	if err != nil {
		return err
	}
	if resp.Total == 0 && client.Models.Request().LastError() != nil {
		return client.Models.Request().LastError()
	}

	if jsonOutput {
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	for _, m := range resp.Data {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m.ID, m.OwnedBy)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "total: %d\n", resp.Total)
	return nil
}
