package snapshot

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"cf-insight/internal/codeforces"
)

// Syncer keeps local snapshots up to date against the remote API.
type Syncer struct {
	client codeforces.Client
	store  *Store
}

// NewSyncer binds a client and a store.
func NewSyncer(client codeforces.Client, store *Store) *Syncer {
	return &Syncer{client: client, store: store}
}

// SyncContests refreshes the full contest directory snapshot.
func (sy *Syncer) SyncContests(ctx context.Context) error {
	contests, err := sy.client.ContestList(ctx)
	if err != nil {
		return fmt.Errorf("contest directory sync failed: %w", err)
	}
	return sy.store.SaveContests(contests)
}

// SyncUser refreshes one handle's submission and rating snapshots.
//
// Submissions are synced incrementally: the API returns history newest-first
// starting at a 1-based index, so the size of the existing snapshot is the
// next index to fetch from. New pages are appended to the snapshot. Rating
// history is small and is overwritten wholesale.
func (sy *Syncer) SyncUser(ctx context.Context, handle string) error {
	existing, err := sy.store.LoadSubmissions(handle)
	if err != nil {
		return err
	}

	from := len(existing) + 1
	fresh, err := sy.client.UserStatus(ctx, handle, from, 0)
	if err != nil {
		return fmt.Errorf("submission sync for %s failed: %w", handle, err)
	}

	if len(fresh) > 0 {
		if err := sy.store.SaveSubmissions(handle, append(existing, fresh...)); err != nil {
			return err
		}
	}
	log.Info().Str("handle", handle).Int("existing", len(existing)).Int("new", len(fresh)).Msg("Submissions synced")

	changes, err := sy.client.UserRating(ctx, handle)
	if err != nil {
		return fmt.Errorf("rating sync for %s failed: %w", handle, err)
	}
	return sy.store.SaveRating(handle, changes)
}
