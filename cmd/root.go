// Package cmd implements the costsite CLI using Cobra.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"costsite/pkg/config"
	"costsite/pkg/markdown"
	"costsite/pkg/models"
	"costsite/pkg/services"
	"costsite/pkg/site"

	"github.com/spf13/cobra"
)

var (
	flagJSONLogs bool
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:   "costsite",
	Short: "costsite builds and previews the cloud cost content site",
	Long: `costsite reads markdown articles from the content directory and renders
the static site: article pages, calculator pages, RSS feed and sitemap.

Usage:
  costsite build [flags]
  costsite serve [flags]
  costsite new <slug> [flags]`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLog()
		config.Init()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSONLogs, "json-logs", os.Getenv("JSON_LOGS") == "true", "Turn on JSON logs")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "dbg", os.Getenv("DEBUG") == "true", "Turn on debug mode")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLog() {
	handler := &slog.HandlerOptions{Level: slog.LevelInfo}
	if flagDebug {
		handler.Level = slog.LevelDebug
		handler.AddSource = true
	}

	if flagJSONLogs {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, handler)))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, handler)))
}

// newBuilder assembles a site builder from the loaded configuration.
func newBuilder(siteCfg models.SiteConfig, outputDir string) *site.Builder {
	lg := slog.Default()
	return &site.Builder{
		Site:        siteCfg,
		Repo:        services.NewFileRepository(config.ContentPath, lg.With(slog.String("prefix", "repository"))),
		Markdown:    markdown.New(config.MarkdownEngine),
		OutputDir:   outputDir,
		StaticDir:   config.StaticPath,
		Concurrency: config.BuildConcurrency,
		Log:         lg.With(slog.String("prefix", "builder")),
	}
}
