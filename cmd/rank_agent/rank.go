package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-ranker/internal/engine"
	"github.com/jonathan/candidate-ranker/internal/graph"
	"github.com/jonathan/candidate-ranker/internal/observability"
	"github.com/jonathan/candidate-ranker/internal/requirements"
	"github.com/jonathan/candidate-ranker/internal/snapshot"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidates against a job posting",
	Long:  "Deterministically scores the candidates of a snapshot file against its job posting, producing a ranked list with per-match explain traces sorted by total score.",
	RunE:  runRank,
}

var (
	rankSnapshot string
	rankOutput   string
	rankLimit    int
	rankMaxHops  int
	rankConfig   string
	rankVerbose  bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankSnapshot, "snapshot", "s", "", "Path to input snapshot JSON file (required)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	rankCmd.Flags().IntVarP(&rankLimit, "limit", "l", 0, "Maximum number of ranked candidates to emit")
	rankCmd.Flags().IntVar(&rankMaxHops, "max-hops", 0, "Equivalence traversal bound (1 or 2)")
	rankCmd.Flags().StringVarP(&rankConfig, "config", "c", "", "Path to config JSON file")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print boxed summaries of each stage")

	if err := rankCmd.MarkFlagRequired("snapshot"); err != nil {
		panic(fmt.Sprintf("failed to mark snapshot flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	opts, _, err := buildOptions(rankConfig, rankLimit, rankMaxHops)
	if err != nil {
		return err
	}

	// 1. Load and normalize the snapshot
	snap, err := snapshot.Load(rankSnapshot)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	report := snapshot.Normalize(snap)

	printer := observability.NewPrinter(os.Stdout)
	if rankVerbose {
		printer.PrintJobPosting(snap.Posting)
		g := graph.New(snap.Edges)
		reqs, _ := requirements.Collect(snap.Posting, g, opts.MaxHops)
		printer.PrintRequirements(reqs)
	}

	// 2. Rank
	result, err := engine.New(opts).Rank(snap)
	if err != nil {
		return fmt.Errorf("failed to rank candidates: %w", err)
	}
	result.Report.SkippedEntities += report.SkippedEntities
	result.Report.ClampedYears += report.ClampedYears

	if rankVerbose {
		printer.PrintRankedCandidates(result)
		printer.PrintRunReport(&result.Report)
	}

	// 3. Emit JSON
	jsonOutput, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result to JSON: %w", err)
	}

	if rankOutput == "" {
		fmt.Println(string(jsonOutput))
		return nil
	}

	outputDir := filepath.Dir(rankOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(rankOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write result to output file %s: %w", rankOutput, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d candidates to %s\n", len(result.Ranked), rankOutput)
	return nil
}
