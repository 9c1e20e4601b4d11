package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List the registered analysis engines",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, reg, err := setup(cmd)
		if err != nil {
			return err
		}
		for _, name := range reg.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enginesCmd)
}
