package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shapewire/shapewire/spec"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shapewire",
	Short: "shapewire - binary schema codec tool",
	Long: `shapewire inspects, canonicalizes, and stores binary-encoded data
shape schemas.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("data-dir", "d", "./schemas", "Registry directory")
	rootCmd.PersistentFlags().Int("max-depth", 512, "Maximum schema nesting depth accepted on input (0 = unlimited)")
}

// readSchemaArg decodes a schema from the file named by args[0], or stdin
// when no argument is given.
func readSchemaArg(cmd *cobra.Command, args []string) (*spec.Spec, error) {
	var in io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	maxDepth, _ := cmd.Flags().GetInt("max-depth")
	d := spec.Decoder{MaxDepth: maxDepth}
	return d.Decode(in)
}
