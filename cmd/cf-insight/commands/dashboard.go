package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cf-insight/internal/config"
	"cf-insight/internal/dashboard"
	"cf-insight/internal/report"
	"cf-insight/internal/snapshot"
)

var (
	dashFromFlag string
	dashToFlag   string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Browse the reporting window interactively in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := parseWindow(dashFromFlag, dashToFlag)
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

		program := tea.NewProgram(dashboard.New(reports, window), tea.WithAltScreen())
		_, err = program.Run()
		return err
	},
}

func init() {
	dashboardCmd.Flags().StringVar(&dashFromFlag, "from", "", "start date, DDMMYYYY (required)")
	dashboardCmd.Flags().StringVar(&dashToFlag, "to", "", "end date inclusive, DDMMYYYY (required)")
	_ = dashboardCmd.MarkFlagRequired("from")
	_ = dashboardCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(dashboardCmd)
}
