package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "classver",
	Short: "Classver - class-shape snapshots for C/C++ codebases",
	Long: `Classver extracts a reflection database from a C/C++ codebase: every
class, struct, and union together with its direct non-static data members.
The snapshot is serialized as deterministic nested text for downstream code
generators and class-versioning checkers.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags. The config file is read by the loader so an explicit
	// --config path and the default .classver/config.yml go through the
	// same defaults, env overrides, and validation.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .classver/config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
