package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/GildedRose_Go/internal/handler"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "gildedrose",
		Short:   "Gilded Rose inventory aging",
		Version: handler.GetVersion(),
		Long: `gildedrose ages the Gilded Rose stock one business day at a time.

Run the nightly update from the command line with "simulate", or expose it
over HTTP with "serve".`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(SimulateCmd())
	rootCmd.AddCommand(ServeCmd())

	return rootCmd
}
