package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-ranker/internal/engine"
	"github.com/jonathan/candidate-ranker/internal/snapshot"
	"github.com/jonathan/candidate-ranker/internal/types"
)

var rankAllCmd = &cobra.Command{
	Use:   "rank-all",
	Short: "Rank every snapshot in a directory",
	Long:  "Loads every *.json snapshot in a directory and ranks them concurrently, writing one result file per snapshot. Results are independent; a bad snapshot fails the whole batch.",
	RunE:  runRankAll,
}

var (
	rankAllDir     string
	rankAllOutDir  string
	rankAllLimit   int
	rankAllMaxHops int
	rankAllConfig  string
)

func init() {
	rankAllCmd.Flags().StringVarP(&rankAllDir, "snapshots", "s", "", "Directory of snapshot JSON files (required)")
	rankAllCmd.Flags().StringVarP(&rankAllOutDir, "out", "o", "", "Output directory for result JSON files (required)")
	rankAllCmd.Flags().IntVarP(&rankAllLimit, "limit", "l", 0, "Maximum number of ranked candidates per snapshot")
	rankAllCmd.Flags().IntVar(&rankAllMaxHops, "max-hops", 0, "Equivalence traversal bound (1 or 2)")
	rankAllCmd.Flags().StringVarP(&rankAllConfig, "config", "c", "", "Path to config JSON file")

	if err := rankAllCmd.MarkFlagRequired("snapshots"); err != nil {
		panic(fmt.Sprintf("failed to mark snapshots flag as required: %v", err))
	}
	if err := rankAllCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(rankAllCmd)
}

func runRankAll(cmd *cobra.Command, _ []string) error {
	opts, _, err := buildOptions(rankAllConfig, rankAllLimit, rankAllMaxHops)
	if err != nil {
		return err
	}

	paths, err := filepath.Glob(filepath.Join(rankAllDir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to list snapshot directory %s: %w", rankAllDir, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no snapshot files found in %s", rankAllDir)
	}
	sort.Strings(paths)

	snapshots := make([]*types.Snapshot, 0, len(paths))
	for _, path := range paths {
		snap, err := snapshot.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load snapshot %s: %w", path, err)
		}
		snapshot.Normalize(snap)
		snapshots = append(snapshots, snap)
	}

	results, err := engine.New(opts).RankAll(cmd.Context(), snapshots)
	if err != nil {
		return fmt.Errorf("failed to rank snapshots: %w", err)
	}

	if err := os.MkdirAll(rankAllOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", rankAllOutDir, err)
	}

	for i, result := range results {
		jsonOutput, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result to JSON: %w", err)
		}

		base := filepath.Base(paths[i])
		outPath := filepath.Join(rankAllOutDir, base[:len(base)-len(".json")]+".result.json")
		if err := os.WriteFile(outPath, jsonOutput, 0644); err != nil {
			return fmt.Errorf("failed to write result file %s: %w", outPath, err)
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d snapshots to %s\n", len(results), rankAllOutDir)
	return nil
}
