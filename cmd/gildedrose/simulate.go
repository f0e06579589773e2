package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/osse101/GildedRose_Go/internal/catalog"
	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/metrics"
	"github.com/osse101/GildedRose_Go/internal/simulation"
)

// simulateOptions are the resolved flags of the simulate command
type simulateOptions struct {
	Days    int
	File    string
	Color   bool
	Headers bool
}

// SimulateCmd returns the command that prints the stock after each day
func SimulateCmd() *cobra.Command {
	var (
		days    int
		file    string
		noColor bool
		headers bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Age the stock and print it after each day",
		Long: `Age the stock by one business day at a time and print every item.

Without --file the shop's default stock is used.

Examples:
  gildedrose simulate                          # one day, default stock
  gildedrose simulate --days 30 --headers      # a month, with day headers
  gildedrose simulate --file configs/inventory.json --no-color`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger.InitLoggerWithWriter(loggerConfig(cfg), os.Stderr)

			opts := simulateOptions{
				Days:    cfg.SimDays,
				File:    cfg.InventoryFile,
				Color:   !noColor && !color.NoColor,
				Headers: headers,
			}
			if cmd.Flags().Changed("days") {
				opts.Days = days
			}
			if cmd.Flags().Changed("file") {
				opts.File = file
			}

			return runSimulate(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", config.DefaultSimDays, "number of days to simulate")
	cmd.Flags().StringVarP(&file, "file", "f", "", "inventory JSON file")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&headers, "headers", false, "print a header before each day")

	return cmd
}

func runSimulate(ctx context.Context, out io.Writer, opts simulateOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	items, err := loadStock(opts.File)
	if err != nil {
		return err
	}

	svc := simulation.NewService(inventory.NewEngine(), metrics.NewInventoryRecorder())
	snapshots, err := svc.Run(ctx, items, opts.Days)
	if err != nil {
		return err
	}

	return simulation.WriteReport(out, snapshots, simulation.ReportOptions{
		Color:      opts.Color,
		DayHeaders: opts.Headers,
	})
}

// loadStock reads the inventory file, or returns the default stock when path is empty
func loadStock(path string) ([]domain.Item, error) {
	if path == "" {
		return inventory.DefaultStock(), nil
	}
	items, err := catalog.LoadItems(catalog.NewLoader(), path)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	return items, nil
}
