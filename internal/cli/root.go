package cli

import (
	"github.com/spf13/cobra"
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:          "jeeprep",
		Short:        "JEE practice backend: problems, answer checking and progress stats",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&addr, "addr", "", "listen address, overrides ADDR")
	cmd.AddCommand(NewServeCmd(&addr))
	cmd.AddCommand(NewSeedCmd())
	return cmd
}
