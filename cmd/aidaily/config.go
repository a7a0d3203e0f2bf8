// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/yubraaj11/AIDaily/internal/catalog"
	"github.com/yubraaj11/AIDaily/internal/feed"
	"github.com/yubraaj11/AIDaily/internal/fetcher"
	"github.com/yubraaj11/AIDaily/internal/httputil"
	"github.com/yubraaj11/AIDaily/internal/index"
	"github.com/yubraaj11/AIDaily/internal/rotation"
	"github.com/yubraaj11/AIDaily/internal/secrets"
	"github.com/yubraaj11/AIDaily/internal/service"
	"github.com/yubraaj11/AIDaily/internal/store"
	"github.com/yubraaj11/AIDaily/internal/summary"
	"github.com/yubraaj11/AIDaily/pkg/types"
)

const (
	defaultUserAgent = "aidaily/0.1"

	papersSubdir = "papers"
	indexFile    = "index.json"
	rotationFile = "rotation.txt"
	catalogFile  = "catalog.db"
)

// defaultCategories is the fixed rotation order. Changing it invalidates
// the persisted cursor.
var defaultCategories = []string{
	"cat:cs.AI", // Artificial Intelligence
	"cat:cs.LG", // Machine Learning
	"cat:cs.CL", // Natural Language Processing
	"cat:cs.CV", // Computer Vision
}

// loadConfig builds the application config from viper with defaults
// applied.
func loadConfig() types.Config {
	viper.SetDefault("categories", defaultCategories)
	viper.SetDefault("storage.data_dir", "./data")
	viper.SetDefault("feed.max_results", 5)
	viper.SetDefault("feed.timeout", 30*time.Second)
	viper.SetDefault("feed.user_agent", defaultUserAgent)
	viper.SetDefault("summary.model", "gemini-2.5-pro")
	viper.SetDefault("summary.max_chars", 8000)
	viper.SetDefault("summary.timeout", 60*time.Second)
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.fetch_hour", 8)
	viper.SetDefault("server.log_level", "info")

	return types.Config{
		Categories: viper.GetStringSlice("categories"),
		Feed: types.FeedConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("feed.timeout"),
				UserAgent: viper.GetString("feed.user_agent"),
			},
			MaxResults: viper.GetInt("feed.max_results"),
		},
		Storage: types.StorageConfig{
			DataDir: viper.GetString("storage.data_dir"),
		},
		Summary: types.SummaryConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("summary.timeout"),
				UserAgent: viper.GetString("feed.user_agent"),
			},
			Model:    viper.GetString("summary.model"),
			MaxChars: viper.GetInt("summary.max_chars"),
		},
		Server: types.ServerConfig{
			Addr:      viper.GetString("server.addr"),
			FetchHour: viper.GetInt("server.fetch_hour"),
			LogLevel:  viper.GetString("server.log_level"),
		},
	}
}

// buildService wires the full application from config. The returned
// cleanup closes the catalog.
func buildService(cfg types.Config, log *slog.Logger) (*service.Service, func() error, error) {
	dataDir := cfg.Storage.DataDir
	papersDir := filepath.Join(dataDir, papersSubdir)
	for _, dir := range []string{dataDir, papersDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	cat, err := catalog.Open(filepath.Join(dataDir, catalogFile))
	if err != nil {
		return nil, nil, err
	}

	st := &store.Store{
		PapersDir: papersDir,
		Index:     &index.FileStore{Path: filepath.Join(dataDir, indexFile)},
		Catalog:   cat,
	}

	f := &fetcher.Fetcher{
		Selector: &rotation.Selector{
			Categories: cfg.Categories,
			Cursor:     &rotation.FileCursor{Path: filepath.Join(dataDir, rotationFile), Log: log},
		},
		Source: &feed.ArxivSource{
			Client:    httputil.NewClient(cfg.Feed.Timeout),
			UserAgent: cfg.Feed.UserAgent,
		},
		MaxResults: cfg.Feed.MaxResults,
		Log:        log,
	}

	svc := &service.Service{
		Fetcher: f,
		Store:   st,
		Summarizer: &summary.GeminiClient{
			Client:   httputil.NewClient(cfg.Summary.Timeout),
			Model:    cfg.Summary.Model,
			MaxChars: cfg.Summary.MaxChars,
		},
		PDFClient:      httputil.NewClient(cfg.Summary.Timeout),
		UserAgent:      cfg.Feed.UserAgent,
		FallbackAPIKey: loadedSecrets[secrets.GeminiAPIKey],
		Log:            log,
	}
	return svc, cat.Close, nil
}
