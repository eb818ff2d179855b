package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-ranker/internal/graph"
	"github.com/jonathan/candidate-ranker/internal/snapshot"
	"github.com/jonathan/candidate-ranker/internal/types"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show the viable set of one entity",
	Long:  "Resolves a single entity against a snapshot's equivalence edges and prints every name that would satisfy it, for debugging equivalence data.",
	RunE:  runResolve,
}

var (
	resolveSnapshot string
	resolveKind     string
	resolveName     string
	resolveMaxHops  int
)

func init() {
	resolveCmd.Flags().StringVarP(&resolveSnapshot, "snapshot", "s", "", "Path to snapshot JSON file with equivalence edges (required)")
	resolveCmd.Flags().StringVarP(&resolveKind, "kind", "k", "skill", "Entity kind (skill, experience, field_of_study)")
	resolveCmd.Flags().StringVarP(&resolveName, "name", "n", "", "Entity name (required)")
	resolveCmd.Flags().IntVar(&resolveMaxHops, "max-hops", graph.DefaultMaxHops, "Equivalence traversal bound (1 or 2)")

	if err := resolveCmd.MarkFlagRequired("snapshot"); err != nil {
		panic(fmt.Sprintf("failed to mark snapshot flag as required: %v", err))
	}
	if err := resolveCmd.MarkFlagRequired("name"); err != nil {
		panic(fmt.Sprintf("failed to mark name flag as required: %v", err))
	}

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(_ *cobra.Command, _ []string) error {
	kind := types.Kind(resolveKind)
	if !kind.Valid() {
		return fmt.Errorf("unknown entity kind %q", resolveKind)
	}

	snap, err := snapshot.Load(resolveSnapshot)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	g := graph.New(snap.Edges)
	viable := g.ViableSet(kind, resolveName, resolveMaxHops)

	names := make([]string, 0, len(viable))
	for name := range viable {
		names = append(names, name)
	}
	sort.Strings(names)

	output := map[string]any{
		"kind":     kind,
		"name":     types.CanonicalName(kind, resolveName),
		"max_hops": resolveMaxHops,
		"viable":   names,
	}
	jsonOutput, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal viable set to JSON: %w", err)
	}

	_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
	return nil
}
