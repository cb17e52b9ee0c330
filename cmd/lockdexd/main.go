package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lockdexd",
		Short: "lockdex swap-lock AMM and route-swap toolkit",
	}
	rootCmd.AddCommand(demoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
