// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yubraaj11/AIDaily/internal/logging"
	"github.com/yubraaj11/AIDaily/pkg/types"
)

var papersCmd = &cobra.Command{
	Use:   "papers [id]",
	Short: "List stored papers or show one record",
	Long: `Papers lists what has been stored. Without arguments it shows today's
papers; --range shows history grouped by date (7, 30, or all days).
With an identifier argument it prints that record.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPapers,
}

func init() {
	papersCmd.Flags().String("range", "", "history window: 7, 30, or all")

	rootCmd.AddCommand(papersCmd)
}

func runPapers(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := logging.New("warn")

	svc, cleanup, err := buildService(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()

	if len(args) == 1 {
		p, err := svc.Paper(ctx, args[0])
		if err != nil {
			return err
		}
		printPaper(p)
		return nil
	}

	window, _ := cmd.Flags().GetString("range")
	if window == "" {
		date, papers, err := svc.Today(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d paper(s)\n", date, len(papers))
		for _, p := range papers {
			fmt.Printf("  %s  %s\n", p.ID, p.Title)
		}
		return nil
	}

	days := 0
	switch window {
	case "7":
		days = 7
	case "30":
		days = 30
	case "all":
	default:
		return fmt.Errorf("invalid --range %q: use 7, 30, or all", window)
	}

	groups, err := svc.History(ctx, days)
	if err != nil {
		return err
	}
	for _, g := range groups {
		fmt.Println(g.Date)
		for _, p := range g.Papers {
			fmt.Printf("  %s  %s\n", p.ID, p.Title)
		}
	}
	return nil
}

func printPaper(p *types.Paper) {
	fmt.Printf("id:        %s\n", p.ID)
	fmt.Printf("title:     %s\n", p.Title)
	fmt.Printf("authors:   %s\n", strings.Join(p.Authors, ", "))
	fmt.Printf("published: %s\n", p.Published)
	fmt.Printf("url:       %s\n", p.URL)
	if p.DOI != "" {
		fmt.Printf("doi:       %s\n", p.DOI)
	}
	if p.PDFURL != "" {
		fmt.Printf("pdf:       %s\n", p.PDFURL)
	}
	if p.Summarized() {
		fmt.Printf("\n%s\n", p.SummarizedText)
	}
}
