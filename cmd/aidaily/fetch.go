// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yubraaj11/AIDaily/internal/logging"
	"github.com/yubraaj11/AIDaily/internal/service"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch and store one paper from the next category in rotation",
	Long: `Fetch advances the category rotation, queries the feed for recent papers
in the chosen category, picks one at random, and stores it unless its
identifier is already indexed.`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := logging.New(cfg.Server.LogLevel)

	svc, cleanup, err := buildService(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	outcome, err := svc.FetchAndStore(context.Background())
	if err != nil {
		return err
	}

	p := outcome.Paper
	switch outcome.Status {
	case service.StatusExists:
		fmt.Printf("exists: %s (%s)\n", p.ID, p.Title)
	default:
		fmt.Printf("stored: %s -> %s\n", p.ID, outcome.File)
		fmt.Printf("  title:   %s\n", p.Title)
		fmt.Printf("  authors: %s\n", strings.Join(p.Authors, ", "))
	}
	return nil
}
