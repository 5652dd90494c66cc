package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Decode compact schema bytes and describe them",
	Long: `Decode a compact-encoded schema from a file or stdin and print a
diagnostic description of its structure.

Example:
  shapewire dump schema.bin`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := readSchemaArg(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
