package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// hashCmd represents the hash command
var hashCmd = &cobra.Command{
	Use:   "hash [file]",
	Short: "Print the canonical fingerprint of a schema",
	Long: `Decode a compact-encoded schema and print the SHA-256 fingerprint
of its canonical (longform) encoding. Structurally equal schemas always
print the same fingerprint.

Example:
  shapewire hash schema.bin`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := readSchemaArg(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.Fingerprint())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
}
