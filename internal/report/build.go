package report

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"cf-insight/internal/config"
	"cf-insight/internal/snapshot"
	"cf-insight/internal/stats"
)

// UserReport binds one roster member to their aggregated statistics for the
// reporting window. Renderers consume it read-only.
type UserReport struct {
	Name   string
	Handle string
	Stats  stats.UserStats
}

// buildConcurrency bounds the aggregation fan-out. Aggregation is pure CPU
// over independently loaded snapshots, so invocations never share state.
const buildConcurrency = 4

// BuildAll aggregates the window for every roster member.
//
// Failures are isolated per user: a member with a corrupt snapshot or a stale
// contest-directory entry (ErrContestNotFound) is logged and skipped, never
// aborting the rest of the report. An error is returned only when no member
// could be processed at all.
func BuildAll(ctx context.Context, store *snapshot.Store, members []config.Member, window stats.Window) ([]UserReport, error) {
	contests, err := store.LoadContests()
	if err != nil {
		return nil, err
	}
	index := stats.NewContestIndex(contests)

	results := make([]*UserReport, len(members))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(buildConcurrency)
	for i, member := range members {
		i, member := i, member
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := buildOne(store, member, index, window)
			if err != nil {
				log.Warn().Err(err).Str("handle", member.Handle).Msg("Skipping user")
				return nil
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reports := make([]UserReport, 0, len(members))
	for _, r := range results {
		if r != nil {
			reports = append(reports, *r)
		}
	}
	if len(reports) == 0 && len(members) > 0 {
		return nil, errors.New("no roster member could be processed")
	}
	return reports, nil
}

// buildOne runs the full pipeline for a single member: load snapshots,
// normalize, window-filter, aggregate.
func buildOne(store *snapshot.Store, member config.Member, index *stats.ContestIndex, window stats.Window) (*UserReport, error) {
	rawSubs, err := store.LoadSubmissions(member.Handle)
	if err != nil {
		return nil, err
	}
	rawRating, err := store.LoadRating(member.Handle)
	if err != nil {
		return nil, err
	}

	subs := stats.FilterSubmissions(stats.NormalizeSubmissions(rawSubs), window)

	parts, err := stats.NormalizeParticipations(rawRating, index)
	if err != nil {
		// Stale contest directory; refresh upstream rather than defaulting
		// the timestamp and corrupting the trajectory.
		return nil, fmt.Errorf("resolving contest timestamps for %s: %w", member.Handle, err)
	}
	parts = stats.FilterParticipations(parts, window)

	s := stats.Aggregate(subs, parts, window.Loc)
	return &UserReport{Name: member.Name, Handle: member.Handle, Stats: s}, nil
}

// TagCount is one row of a sorted tag-frequency view.
type TagCount struct {
	Tag   string
	Count int
}

// TopTags re-keys a tag-frequency table into its top-n rows, count descending,
// ties broken by tag name for deterministic output.
func TopTags(freq map[string]int, n int) []TagCount {
	rows := make([]TagCount, 0, len(freq))
	for tag, count := range freq {
		rows = append(rows, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Tag < rows[j].Tag
	})
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// DayCount is one row of a chronologically sorted daily-activity view.
type DayCount struct {
	Day   string
	Count int
}

// SortedDays re-keys a daily-solve table into chronologically sorted rows.
func SortedDays(daily map[string]int) []DayCount {
	days := make([]string, 0, len(daily))
	for d := range daily {
		days = append(days, d)
	}
	sort.Strings(days)

	rows := make([]DayCount, 0, len(days))
	for _, d := range days {
		rows = append(rows, DayCount{Day: d, Count: daily[d]})
	}
	return rows
}
