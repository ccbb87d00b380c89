package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"seichi.click/gamedata-translator/internal/model"
	"seichi.click/gamedata-translator/internal/pkg/observability"
)

// PlayerStats assembles the per-player statistics set served on each scrape.
// It holds no state between requests: every call fetches fresh data from the
// game data server.
type PlayerStats struct {
	Source model.PlayerDataRepository
}

func NewPlayerStats(source model.PlayerDataRepository) *PlayerStats {
	return &PlayerStats{
		Source: source,
	}
}

// GetAllKnownPlayerData fetches the four statistics collections concurrently.
// All four either arrive or the first failure cancels the remaining fetches
// and is returned; there are no partial results and no retries.
func (s *PlayerStats) GetAllKnownPlayerData(ctx context.Context) (*model.KnownPlayerData, error) {
	var data model.KnownPlayerData

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(timed(ctx, "break_counts", func(ctx context.Context) (err error) {
		data.BreakCounts, err = s.Source.GetAllBreakCounts(ctx)
		return errors.Wrap(err, "fetching break counts")
	}))
	eg.Go(timed(ctx, "build_counts", func(ctx context.Context) (err error) {
		data.BuildCounts, err = s.Source.GetAllBuildCounts(ctx)
		return errors.Wrap(err, "fetching build counts")
	}))
	eg.Go(timed(ctx, "play_ticks", func(ctx context.Context) (err error) {
		data.PlayTicks, err = s.Source.GetAllPlayTicks(ctx)
		return errors.Wrap(err, "fetching play ticks")
	}))
	eg.Go(timed(ctx, "vote_counts", func(ctx context.Context) (err error) {
		data.VoteCounts, err = s.Source.GetAllVoteCounts(ctx)
		return errors.Wrap(err, "fetching vote counts")
	}))
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &data, nil
}

// Aggregate runs one full fetch-and-fold cycle: all collections are fetched
// from the game data server and folded into one record per player.
func (s *PlayerStats) Aggregate(ctx context.Context) (*model.StatisticsSet, error) {
	start := time.Now()

	data, err := s.GetAllKnownPlayerData(ctx)
	if err != nil {
		return nil, err
	}

	set, err := data.Aggregate()
	if err != nil {
		return nil, err
	}

	observability.AggregateDuration.Observe(time.Since(start).Seconds())
	observability.KnownPlayers.Set(float64(set.Len()))

	zerolog.Ctx(ctx).Trace().
		Str("evt.name", "playerstats.aggregate").
		Int("players", set.Len()).
		Dur("duration", time.Since(start)).
		Msg("aggregated player statistics")

	return set, nil
}

// timed adapts a fetch closure into an errgroup task that reports its
// duration to the upstream fetch histogram.
func timed(ctx context.Context, collection string, f func(ctx context.Context) error) func() error {
	return func() error {
		start := time.Now()
		err := f(ctx)
		observability.UpstreamFetchDuration.
			WithLabelValues(collection).
			Observe(time.Since(start).Seconds())
		return err
	}
}
