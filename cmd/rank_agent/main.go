// Package main provides the entry point for the candidate ranker CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rank_agent",
	Short: "Candidate ranking engine",
	Long:  "Deterministically scores and ranks candidates against a job posting's requirements, honoring equivalence relationships between skills, experiences, and fields of study.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
