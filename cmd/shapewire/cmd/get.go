package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shapewire/shapewire/registry"
	"github.com/shapewire/shapewire/spec"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <fingerprint>",
	Short: "Load a schema from the registry",
	Long: `Load the schema stored under a fingerprint and write its compact
encoding to stdout. Use --describe to print the diagnostic form instead.

Example:
  shapewire get 9f86d081884c7d65... > schema.bin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fp, ok := spec.ParseFingerprint(args[0])
		if !ok {
			return fmt.Errorf("invalid fingerprint %q", args[0])
		}
		dataDir, _ := cmd.Flags().GetString("data-dir")
		reg, err := registry.Open(dataDir, registry.Options{ReadOnly: true})
		if err != nil {
			return err
		}
		defer reg.Close()

		s, err := reg.Get(fp)
		if err != nil {
			return err
		}
		if describe, _ := cmd.Flags().GetBool("describe"); describe {
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		}
		_, err = s.WriteBytes(cmd.OutOrStdout())
		return err
	},
}

func init() {
	getCmd.Flags().Bool("describe", false, "Print the diagnostic description instead of bytes")
	rootCmd.AddCommand(getCmd)
}
