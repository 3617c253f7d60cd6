package commands

import (
	"fmt"
	"time"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"cf-insight/internal/config"
	"cf-insight/internal/report"
	"cf-insight/internal/snapshot"
	"cf-insight/internal/stats"
)

var (
	fromFlag string
	toFlag   string
	outFlag  string
	openFlag bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the reporting window as a PDF, one page per roster member",
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := parseWindow(fromFlag, toFlag)
		if err != nil {
			return err
		}

		roster, err := config.LoadRoster(cfg.RosterPath)
		if err != nil {
			return err
		}
		store, err := snapshot.NewStore(cfg.SnapshotDir)
		if err != nil {
			return err
		}

		reports, err := report.BuildAll(cmd.Context(), store, roster.Members, window)
		if err != nil {
			return err
		}

		out := outFlag
		if out == "" {
			out = fmt.Sprintf("codeforces_report_%s_%s.pdf", fromFlag, toFlag)
		}
		if err := report.WritePDF(reports, window, out); err != nil {
			return err
		}

		if openFlag {
			if err := browser.OpenFile(out); err != nil {
				log.Warn().Err(err).Msg("Failed to open the report")
			}
		}
		return nil
	},
}

// parseWindow turns DDMMYYYY start/end dates into a half-open window covering
// those calendar days in the reporting timezone.
func parseWindow(from, to string) (stats.Window, error) {
	const dateLayout = "02012006"

	first, err := time.ParseInLocation(dateLayout, from, cfg.ReportLocation)
	if err != nil {
		return stats.Window{}, fmt.Errorf("invalid --from date %q, want DDMMYYYY: %w", from, err)
	}
	last, err := time.ParseInLocation(dateLayout, to, cfg.ReportLocation)
	if err != nil {
		return stats.Window{}, fmt.Errorf("invalid --to date %q, want DDMMYYYY: %w", to, err)
	}
	if last.Before(first) {
		return stats.Window{}, fmt.Errorf("--from %s is after --to %s", from, to)
	}
	return stats.DayWindow(first, last, cfg.ReportLocation), nil
}

func init() {
	reportCmd.Flags().StringVar(&fromFlag, "from", "", "start date, DDMMYYYY (required)")
	reportCmd.Flags().StringVar(&toFlag, "to", "", "end date inclusive, DDMMYYYY (required)")
	reportCmd.Flags().StringVar(&outFlag, "out", "", "output PDF path")
	reportCmd.Flags().BoolVar(&openFlag, "open", false, "open the PDF after generation")
	_ = reportCmd.MarkFlagRequired("from")
	_ = reportCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(reportCmd)
}
