package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seichi.click/gamedata-translator/internal/model"
)

const (
	uuidAlice = "11111111-1111-1111-1111-111111111111"
	uuidBob   = "22222222-2222-2222-2222-222222222222"
)

// fakePlayerData is an in-memory model.PlayerDataRepository with per-call
// overrides for failure injection.
type fakePlayerData struct {
	breakCounts func(ctx context.Context) ([]model.PlayerBreakCount, error)
	buildCounts func(ctx context.Context) ([]model.PlayerBuildCount, error)
	playTicks   func(ctx context.Context) ([]model.PlayerPlayTicks, error)
	voteCounts  func(ctx context.Context) ([]model.PlayerVoteCount, error)
}

func (f *fakePlayerData) GetAllBreakCounts(ctx context.Context) ([]model.PlayerBreakCount, error) {
	if f.breakCounts != nil {
		return f.breakCounts(ctx)
	}
	return nil, nil
}

func (f *fakePlayerData) GetAllBuildCounts(ctx context.Context) ([]model.PlayerBuildCount, error) {
	if f.buildCounts != nil {
		return f.buildCounts(ctx)
	}
	return nil, nil
}

func (f *fakePlayerData) GetAllPlayTicks(ctx context.Context) ([]model.PlayerPlayTicks, error) {
	if f.playTicks != nil {
		return f.playTicks(ctx)
	}
	return nil, nil
}

func (f *fakePlayerData) GetAllVoteCounts(ctx context.Context) ([]model.PlayerVoteCount, error) {
	if f.voteCounts != nil {
		return f.voteCounts(ctx)
	}
	return nil, nil
}

func TestAggregateMergesAllFourCollections(t *testing.T) {
	source := &fakePlayerData{
		breakCounts: func(ctx context.Context) ([]model.PlayerBreakCount, error) {
			return []model.PlayerBreakCount{
				{Player: model.Player{UUID: uuidAlice}, BreakCount: 5},
				{Player: model.Player{UUID: uuidBob}, BreakCount: 8},
			}, nil
		},
		buildCounts: func(ctx context.Context) ([]model.PlayerBuildCount, error) {
			return []model.PlayerBuildCount{
				{Player: model.Player{UUID: uuidAlice}, BuildCount: 2},
			}, nil
		},
		voteCounts: func(ctx context.Context) ([]model.PlayerVoteCount, error) {
			return []model.PlayerVoteCount{
				{Player: model.Player{UUID: uuidBob}, VoteCount: 1},
			}, nil
		},
	}

	set, err := NewPlayerStats(source).Aggregate(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, set.Len())

	alice, err := model.ParsePlayerUUID(uuidAlice)
	require.NoError(t, err)
	bob, err := model.ParsePlayerUUID(uuidBob)
	require.NoError(t, err)

	assert.Equal(t, &model.PlayerStatistics{BreakCount: 5, BuildCount: 2}, set.Stats(alice))
	assert.Equal(t, &model.PlayerStatistics{BreakCount: 8, VoteCount: 1}, set.Stats(bob))
}

func TestAggregateFailsOnAnyFetchError(t *testing.T) {
	injected := errors.New("upstream is on fire")

	type testCase struct {
		name   string
		source *fakePlayerData
	}

	testCases := []testCase{
		{
			name: "break counts fetch fails",
			source: &fakePlayerData{
				breakCounts: func(ctx context.Context) ([]model.PlayerBreakCount, error) {
					return nil, injected
				},
			},
		},
		{
			name: "play ticks fetch fails",
			source: &fakePlayerData{
				playTicks: func(ctx context.Context) ([]model.PlayerPlayTicks, error) {
					return nil, injected
				},
			},
		},
		{
			name: "vote counts fetch fails while others succeed",
			source: &fakePlayerData{
				breakCounts: func(ctx context.Context) ([]model.PlayerBreakCount, error) {
					return []model.PlayerBreakCount{
						{Player: model.Player{UUID: uuidAlice}, BreakCount: 5},
					}, nil
				},
				voteCounts: func(ctx context.Context) ([]model.PlayerVoteCount, error) {
					return nil, injected
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			set, err := NewPlayerStats(tc.source).Aggregate(context.Background())
			assert.Nil(t, set, "a failed fetch must not yield a partial set")
			assert.True(t, errors.Is(err, injected), "the injected error must surface unmasked")
		})
	}
}

func TestAggregateFailsOnInvalidUpstreamUUID(t *testing.T) {
	source := &fakePlayerData{
		buildCounts: func(ctx context.Context) ([]model.PlayerBuildCount, error) {
			return []model.PlayerBuildCount{
				{Player: model.Player{UUID: "way-too-short"}, BuildCount: 1},
			}, nil
		},
	}

	set, err := NewPlayerStats(source).Aggregate(context.Background())
	assert.Nil(t, set)
	assert.True(t, errors.Is(err, model.ErrUUIDLength))
}

func TestAggregateCancelsSiblingsOnFailure(t *testing.T) {
	injected := errors.New("no break counts today")

	var buildSawCancel bool
	source := &fakePlayerData{
		breakCounts: func(ctx context.Context) ([]model.PlayerBreakCount, error) {
			return nil, injected
		},
		buildCounts: func(ctx context.Context) ([]model.PlayerBuildCount, error) {
			<-ctx.Done()
			buildSawCancel = true
			return nil, ctx.Err()
		},
	}

	_, err := NewPlayerStats(source).Aggregate(context.Background())
	assert.True(t, errors.Is(err, injected))
	assert.True(t, buildSawCancel, "in-flight fetches must observe cancellation once a sibling fails")
}
