package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "seo-codex",
		Short:         "Show catalog validator and page server",
		Long:          "SEO Codex validates stage-show records before publication and serves the show page loaders.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// run executes the root command with args and returns the process status.
func run(args []string) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
	}
	return ExitCodeFromError(err)
}
