package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/nexos-labs/nexos-go/core"
)

// Version information set at build time via ldflags.
// Example: go build -ldflags "-X github.com/nexos-labs/nexos-go/cli/commands.Version=v1.0.0"
var (
	// Version is the semantic version of the CLI.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if jsonOutput {
			fmt.Fprintf(cmd.OutOrStdout(), `{"version":"%s","commit":"%s","sdk":"%s","goVersion":"%s","platform":"%s/%s"}`+"\n",
				Version, Commit, core.SDKVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return
		}

		fmt.Fprintf(cmd.OutOrStdout(), "nexos %s\n", Version)
		fmt.Fprintf(cmd.OutOrStdout(), "  commit:     %s\n", Commit)
		fmt.Fprintf(cmd.OutOrStdout(), "  sdk:        %s\n", core.SDKVersion)
		fmt.Fprintf(cmd.OutOrStdout(), "  go version: %s\n", runtime.Version())
		fmt.Fprintf(cmd.OutOrStdout(), "  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
