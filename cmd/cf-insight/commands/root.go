package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"cf-insight/internal/config"
	"cf-insight/internal/logging"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "cf-insight",
	Short: "cf-insight collects Codeforces activity and renders per-user reports",
	Long: `A reporting tool for Codeforces study groups: it snapshots each roster member's
submission and rating history locally, aggregates per-user statistics over a
date window, and renders them as a PDF report or an interactive dashboard.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("cf-insight starting")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
