// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yubraaj11/AIDaily/internal/catalog"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write a YAML snapshot of the stored-paper catalog",
	Long: `Export writes every cataloged paper (identifier, title, stored date,
record file, summarization state) to a YAML file for inspection or
backup. The default output is export.yaml in the data directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	out := filepath.Join(cfg.Storage.DataDir, "export.yaml")
	if len(args) == 1 {
		out = args[0]
	}

	cat, err := catalog.Open(filepath.Join(cfg.Storage.DataDir, catalogFile))
	if err != nil {
		return err
	}
	defer cat.Close()

	if err := cat.ExportYAML(cmd.Context(), out); err != nil {
		return err
	}
	fmt.Println("Exported catalog to", out)
	return nil
}
