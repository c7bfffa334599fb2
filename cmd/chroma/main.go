// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chroma",
	Short: "ChromaBags - color harmony and bag design for a handmade bag workshop",
	Long: `ChromaBags picks harmonious colors for handmade bags, draws the three bag
archetypes (single, two-tone and freeform) as SVG and keeps a catalog of the
combinations the workshop produces.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// exitOnError prints err the way every command reports failures and exits
func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
