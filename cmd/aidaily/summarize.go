// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yubraaj11/AIDaily/internal/logging"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [id]",
	Short: "Attach a generated summary to a stored paper",
	Long: `Summarize downloads the paper's PDF, extracts its text, and generates a
structured summary through the Gemini API, rewriting the stored record in
place. A paper that already has a summary is returned unchanged.

The API key comes from --api-key or the .secrets/gemini-api-key file.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().String("api-key", "", "Gemini API key (default: .secrets/gemini-api-key)")

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := logging.New(cfg.Server.LogLevel)

	svc, cleanup, err := buildService(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	apiKey, _ := cmd.Flags().GetString("api-key")

	p, err := svc.Summarize(context.Background(), args[0], apiKey)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n\n%s\n", p.ID, p.Title, p.SummarizedText)
	return nil
}
