package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/margru/togglbill/internal/billing"
	"github.com/margru/togglbill/internal/config"
	"github.com/margru/togglbill/internal/render"
	"github.com/margru/togglbill/internal/toggl"
)

var (
	reportFormat    string
	reportUntilYear int
)

var reportCmd = &cobra.Command{
	Use:   "report <client>",
	Short: "Build the billing report for a configured client",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "table", "Output format: table, csv, json")
	reportCmd.Flags().IntVar(&reportUntilYear, "until-year", 0, "Last year to fetch (default: current year)")
}

// newLogger builds the CLI logger; --verbose enables per-page fetch logging.
func newLogger() zerolog.Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if verbose {
		return logger.Level(zerolog.DebugLevel)
	}
	return logger.Level(zerolog.InfoLevel)
}

func runReport(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	// A local .env may provide TOGGL_API_TOKEN; its absence is fine.
	_ = godotenv.Load()

	path, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if cfg.WorkspaceID == "" {
		return fmt.Errorf("workspace_id is not set in %s", path)
	}

	client, err := cfg.ClientByName(args[0])
	if err != nil {
		return err
	}

	token := os.Getenv("TOGGL_API_TOKEN")
	if token == "" {
		return fmt.Errorf("TOGGL_API_TOKEN is not set")
	}

	api := toggl.New(token, cfg.WorkspaceID, logger)

	entries, err := api.FetchAllEntries(context.Background(), client.ID, cfg.StartOfTime, reportUntilYear)
	if err != nil {
		return err
	}

	summary, err := billing.BuildSummary(entries)
	if err != nil {
		return err
	}

	report := billing.BuildReport(summary, client)

	switch reportFormat {
	case "csv":
		fmt.Print(render.CSV(report))
	case "json":
		out, err := render.JSON(report)
		if err != nil {
			return err
		}
		fmt.Println(out)
	default: // table
		fmt.Print(render.Table(report))
	}

	return nil
}
