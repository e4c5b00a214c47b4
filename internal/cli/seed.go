package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSeedCmd builds the subcommand that imports a problem bank into the configured store.
func NewSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file>",
		Short: "Import problems from a JSON or YAML file",
		Long: "Import problems from a JSON or YAML file into the configured store.\n" +
			"Problems whose id is already stored are left untouched.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			store, err := openStore(cfg, log)
			if err != nil {
				return err
			}
			defer store.Close()

			added, err := seed(cmd.Context(), store, args[0], cfg.DefaultUserID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d new problems from %s\n", added, args[0])
			return nil
		},
	}
}
