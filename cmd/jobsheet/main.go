package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rsilvagit/jobsheet/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "jobsheet",
	Short:         "Scrape job listings into a spreadsheet",
	Long:          "Fetches a bounded range of job listing pages, extracts title, location, experience, salary, link and a short description from every job card, and saves them to an .xlsx file.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := applyFlags(cmd, cfg); err != nil {
			return err
		}

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		err := runScrape(cmd.Context(), cfg, zap.L())
		if err != nil {
			zap.L().Error("scrape failed", zap.Error(err))
		}
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	f := rootCmd.Flags()
	f.Int("pages", 0, "number of listing pages to scrape (overrides site.max_pages)")
	f.String("start-url", "", "first listing page (overrides site.start_url)")
	f.StringP("output", "o", "", "spreadsheet to write (overrides output.path)")
	f.Bool("print", false, "also print a summary table to stdout")

	rootCmd.AddCommand(inspectCmd)
}

// applyFlags lays explicitly set command-line flags over the loaded config.
func applyFlags(cmd *cobra.Command, c *config.Config) error {
	f := cmd.Flags()
	if f.Lookup("pages") == nil {
		return nil
	}
	if f.Changed("pages") {
		n, _ := f.GetInt("pages")
		c.Site.MaxPages = n
	}
	if f.Changed("start-url") {
		c.Site.StartURL, _ = f.GetString("start-url")
	}
	if f.Changed("output") {
		c.Output.Path, _ = f.GetString("output")
	}
	if f.Changed("print") {
		c.Output.Print, _ = f.GetBool("print")
	}
	return c.Validate()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
