package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fpga-tools/arcpart/config"
	"github.com/fpga-tools/arcpart/griddevice"
	"github.com/fpga-tools/arcpart/partition"
)

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "arcpart",
		Short: "Partition a synthetic FPGA arc set into four balanced quadrants",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSynthetic(cmd.Context(), configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	return cmd
}

func runSynthetic(ctx context.Context, configPath string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("arcpart: building logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	fc, err := loadFileConfig(configPath)
	if err != nil {
		return err
	}

	grid, pips, err := griddevice.Generate(fc.GridDimX, fc.GridDimY, fc.Density, fc.Seed)
	if err != nil {
		return fmt.Errorf("arcpart: generating grid: %w", err)
	}
	arcs := griddevice.GenerateArcs(grid, fc.ArcCount, fc.Seed)

	if err := config.Validate(0, fc.GridDimX, 0, fc.GridDimY, fc.GridDimX, fc.GridDimY, len(arcs)); err != nil {
		return fmt.Errorf("arcpart: invalid configuration: %w", err)
	}

	cfg := config.New(fc.options()...)

	res, err := partition.FindPartitionPoint(ctx, grid, cfg, pips, arcs, 0, fc.GridDimX, 0, fc.GridDimY)
	if err != nil {
		return fmt.Errorf("arcpart: partitioning: %w", err)
	}

	res.Log(logger)
	return nil
}
