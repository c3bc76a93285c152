package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "serenata",
		Short: "PHP source analysis for editors",
	}

	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newChainCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newIndexCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
