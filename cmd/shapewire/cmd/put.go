package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shapewire/shapewire/registry"
)

// putCmd represents the put command
var putCmd = &cobra.Command{
	Use:   "put [file]",
	Short: "Store a schema in the registry",
	Long: `Decode a compact-encoded schema, store it in the registry keyed by
its canonical fingerprint, and print the fingerprint.

Example:
  shapewire put schema.bin`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := readSchemaArg(cmd, args)
		if err != nil {
			return err
		}
		dataDir, _ := cmd.Flags().GetString("data-dir")
		reg, err := registry.Open(dataDir, registry.Options{})
		if err != nil {
			return err
		}
		defer reg.Close()

		fp, err := reg.Put(s)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), fp)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(putCmd)
}
