package cmd

import (
	"github.com/spf13/cobra"
)

// longformCmd represents the longform command
var longformCmd = &cobra.Command{
	Use:   "longform [file]",
	Short: "Re-encode a schema canonically to stdout",
	Long: `Decode a compact-encoded schema and write its canonical alias-free
encoding to stdout. The output bytes are the schema's stable identity form.

Example:
  shapewire longform schema.bin > schema.canonical.bin`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := readSchemaArg(cmd, args)
		if err != nil {
			return err
		}
		_, err = s.WriteLongform(cmd.OutOrStdout())
		return err
	},
}

func init() {
	rootCmd.AddCommand(longformCmd)
}
