package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"cf-insight/internal/codeforces"
	"cf-insight/internal/config"
	"cf-insight/internal/snapshot"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Refresh the contest directory and every roster member's snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		roster, err := config.LoadRoster(cfg.RosterPath)
		if err != nil {
			return err
		}

		store, err := snapshot.NewStore(cfg.SnapshotDir)
		if err != nil {
			return err
		}

		client := codeforces.NewClient(cfg.API)
		syncer := snapshot.NewSyncer(client, store)

		ctx := cmd.Context()
		if err := syncer.SyncContests(ctx); err != nil {
			return err
		}

		// Handles are synced sequentially; the client throttles requests to
		// stay under the API rate limit, so fanning out buys nothing here.
		failed := 0
		for _, member := range roster.Members {
			if err := syncer.SyncUser(ctx, member.Handle); err != nil {
				log.Error().Err(err).Str("handle", member.Handle).Msg("Sync failed")
				failed++
			}
		}

		log.Info().
			Int("members", len(roster.Members)).
			Int("failed", failed).
			Msg("Collection finished")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(collectCmd)
}
