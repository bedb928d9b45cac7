// Package cmd implements the tccompile command-line interface: a thin
// cobra-based front end over pkg/loader and pkg/model, with a rootCmd
// carrying persistent flags and subcommands registered from init().
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is empty unless set at link time (e.g. with -ldflags -X); when it
// is empty, --version falls back to the module version in the build info.
var Version string

var rootCmd = &cobra.Command{
	Use:   "tccompile",
	Short: "A compilation front-end for timed automata systems.",
	Long:  "Type-checks, statically validates and compiles the invariants, guards and statements of a timed automata system to bytecode.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("tccompile ")

			if Version != "" {
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s", info.Main.Version)
			} else {
				fmt.Printf("(unknown version)")
			}

			fmt.Println()
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "report version of this executable")
	rootCmd.PersistentFlags().Bool("strict", false, "run the static validation rules (no validation runs without it)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}
