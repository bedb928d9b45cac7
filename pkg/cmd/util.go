package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// GetFlag returns the named boolean flag, or terminates the process if it
// does not exist.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// readFile reads filename or terminates the process, reporting the error.
func readFile(filename string) []byte {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return bytes
}
