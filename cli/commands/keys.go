package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexos-labs/nexos-go/core"
	"github.com/nexos-labs/nexos-go/domain"
	"github.com/nexos-labs/nexos-go/endpoints/teamkeys"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage team API keys",
	Long:  `Create, list, rename, revoke, and regenerate the team's API keys.`,
}

var keysCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new team API key",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeysCreate,
}

var keysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the team's API keys",
	Long:  `List the team's API keys. Key IDs and names are shown, never secret values.`,
	RunE:  runKeysList,
}

var keysRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a team API key",
	Args:  cobra.ExactArgs(2),
	RunE:  runKeysRename,
}

var keysDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Revoke a team API key",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeysDelete,
}

var keysRegenerateCmd = &cobra.Command{
	Use:   "regenerate <id>",
	Short: "Rotate a team API key's secret",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeysRegenerate,
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.AddCommand(keysCreateCmd)
	keysCmd.AddCommand(keysListCmd)
	keysCmd.AddCommand(keysRenameCmd)
	keysCmd.AddCommand(keysDeleteCmd)
	keysCmd.AddCommand(keysRegenerateCmd)
}

func runKeysCreate(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	resp, err := client.TeamKeyCreate.Request().
		Prepare(domain.TeamKeyCreateRequest{Name: args[0]}).
		Send(cmd.Context())
	if err != nil {
		return err
	}
	if resp.ID == "" {
		if lastErr := client.TeamKeyCreate.Request().LastError(); lastErr != nil {
			return lastErr
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created key %s (%s)\n", resp.ID, resp.Name)
	// The secret is printed exactly once; it cannot be fetched again.
	fmt.Fprintf(cmd.OutOrStdout(), "secret: %s\n", resp.APIKey)
	return nil
}

func runKeysList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	resp, err := client.TeamKeyList.Request().
		Prepare(domain.TeamKeyListRequest{}).
		Send(cmd.Context())
	if err != nil {
		return err
	}

	for _, key := range resp.Keys {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", key.ID, key.Name)
	}
	return nil
}

func runKeysRename(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	controller, err := client.TeamKeyUpdate(args[0])
	if err != nil {
		return err
	}
	resp, err := controller.Request().
		Prepare(domain.TeamKeyUpdateRequest{Name: args[1]}).
		Apply(teamkeys.OpWithName, core.Args{"name": args[1]}).
		Send(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "renamed key %s to %q\n", args[0], resp.Name)
	return nil
}

func runKeysDelete(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	controller, err := client.TeamKeyDelete(args[0])
	if err != nil {
		return err
	}
	if _, err := controller.Request().
		Prepare(domain.TeamKeyDeleteRequest{}).
		Send(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "revoked key %s\n", args[0])
	return nil
}

func runKeysRegenerate(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	controller, err := client.TeamKeyRegenerate(args[0])
	if err != nil {
		return err
	}
	resp, err := controller.Request().
		Prepare(domain.TeamKeyRegenerateRequest{}).
		Send(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "regenerated key %s\n", args[0])
	fmt.Fprintf(cmd.OutOrStdout(), "secret: %s\n", resp.APIKey)
	return nil
}
