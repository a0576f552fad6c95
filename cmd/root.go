package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set during build using ldflags
var Version = "dev"

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "depwatch",
	Short:   "Audits project dependencies against a watch-list",
	Long:    `Depwatch is a CLI tool that compares the dependency versions an npm project actually resolves against a watch-list of package specifiers, and reports watched packages that are still at or below the version you are waiting on.`,
	Version: Version,

	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
