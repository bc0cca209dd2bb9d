package cmd

import (
	"fmt"
	"time"

	"costsite/pkg/config"
	"costsite/pkg/services"

	"github.com/spf13/cobra"
)

var flagFormat string

var newCmd = &cobra.Command{
	Use:   "new <slug>",
	Short: "Scaffold a new article in the content directory",
	Long: `New writes <slug>.md into the content directory with an empty front matter
block dated today.

Examples:
  costsite new nat-gateway-costs
  costsite new s3-lifecycle-rules --format toml`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Front matter format: yaml, toml or json")
}

func runNew(cmd *cobra.Command, args []string) error {
	path, err := services.CreateArticle(config.ContentPath, args[0], flagFormat, time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
	return nil
}
