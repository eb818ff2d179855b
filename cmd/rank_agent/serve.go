package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-ranker/internal/server"
)

var (
	servePort    int
	serveConfig  string
	serveAuth    bool
	serveLimit   int
	serveMaxHops int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for ranking candidates against stored or inline job postings.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "Path to config JSON file")
	serveCmd.Flags().BoolVar(&serveAuth, "auth", false, "Require bearer tokens on ranking endpoints (needs JWT_SECRET)")
	serveCmd.Flags().IntVarP(&serveLimit, "limit", "l", 0, "Default maximum number of ranked candidates")
	serveCmd.Flags().IntVar(&serveMaxHops, "max-hops", 0, "Default equivalence traversal bound (1 or 2)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	opts, cfg, err := buildOptions(serveConfig, serveLimit, serveMaxHops)
	if err != nil {
		return err
	}

	// Database URL: environment wins, config file is the fallback
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" && cfg != nil {
		databaseURL = cfg.DatabaseURL
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	port := servePort
	if cfg != nil && cfg.Port != 0 && port == 8080 {
		port = cfg.Port
	}

	srv, err := server.New(server.Config{
		Port:        port,
		DatabaseURL: databaseURL,
		Engine:      opts,
		RequireAuth: serveAuth,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
