// Package cli wires the cobra command tree the ammpoolctl binary
// exposes: init-pool, deposit, withdraw, swap and claim, each a thin
// wrapper around an internal/pooltx.Adapter built from the loaded
// internal/poolconfig.Config.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ammpoolctl",
	Short: "ammpoolctl - constant-function stable-swap pool CLI",
	Long: `ammpoolctl drives a stable-swap (StableSwap-style) constant-function
AMM pool engine from the command line: initializing a pool, depositing
and withdrawing liquidity, swapping between its two tokens, and
claiming accrued LP rewards.`,
	Version: "0.1.0-dev",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "pool configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}
