package cmd

import (
	"fmt"

	"costsite/pkg/config"

	"github.com/spf13/cobra"
)

var (
	flagOutputDir string
	flagClean     bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the static site into the output directory",
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: $OUTPUT_PATH or ./dist)")
	buildCmd.Flags().BoolVar(&flagClean, "clean", false, "Remove the output directory before building")
}

func runBuild(cmd *cobra.Command, args []string) error {
	siteCfg, err := config.LoadSite(config.RepoPath)
	if err != nil {
		return fmt.Errorf("load site config: %w", err)
	}

	outputDir := config.OutputPath
	if flagOutputDir != "" {
		outputDir = flagOutputDir
	}

	b := newBuilder(siteCfg, outputDir)
	b.Clean = flagClean

	rep, err := b.Build(cmd.Context())
	if err != nil {
		return fmt.Errorf("build site: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "built %d articles, %d calculators, %d assets into %s\n",
		rep.Articles, rep.Calculators, rep.Assets, outputDir)
	return nil
}
