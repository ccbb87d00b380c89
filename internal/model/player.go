package model

import (
	"context"

	"github.com/pkg/errors"
)

// Player is an upstream player reference as received from the game data
// server, before identity validation has happened.
type Player struct {
	UUID          string
	LastKnownName string
}

// PlayerBreakCount is the cumulative number of blocks a player has broken.
type PlayerBreakCount struct {
	Player     Player
	BreakCount uint64
}

// PlayerBuildCount is the cumulative number of blocks a player has placed.
type PlayerBuildCount struct {
	Player     Player
	BuildCount uint64
}

// PlayerPlayTicks is the cumulative number of game ticks a player has been online.
type PlayerPlayTicks struct {
	Player    Player
	PlayTicks uint64
}

// PlayerVoteCount is the cumulative number of votes a player has cast for the server.
type PlayerVoteCount struct {
	Player    Player
	VoteCount uint64
}

// PlayerDataRepository is the read surface of the upstream game data server.
// Each call fetches one complete statistics collection.
type PlayerDataRepository interface {
	GetAllBreakCounts(ctx context.Context) ([]PlayerBreakCount, error)
	GetAllBuildCounts(ctx context.Context) ([]PlayerBuildCount, error)
	GetAllPlayTicks(ctx context.Context) ([]PlayerPlayTicks, error)
	GetAllVoteCounts(ctx context.Context) ([]PlayerVoteCount, error)
}

// KnownPlayerData carries the four statistics collections of one fetch cycle,
// each in the order the game data server returned it.
type KnownPlayerData struct {
	BreakCounts []PlayerBreakCount
	BuildCounts []PlayerBuildCount
	PlayTicks   []PlayerPlayTicks
	VoteCounts  []PlayerVoteCount
}

// Aggregate merges the four collections into one record per player. The
// collections are folded in a fixed order (break, build, play ticks, vote),
// each in upstream order, so for duplicated players within a collection the
// later record wins. A player absent from a collection keeps zero for that
// field. The first invalid UUID aborts the whole fold.
func (d *KnownPlayerData) Aggregate() (*StatisticsSet, error) {
	set := NewStatisticsSet(len(d.BreakCounts))

	for i, c := range d.BreakCounts {
		uuid, err := ParsePlayerUUID(c.Player.UUID)
		if err != nil {
			return nil, errors.Wrapf(err, "break counts: record %d", i)
		}
		set.Stats(uuid).BreakCount = c.BreakCount
	}
	for i, c := range d.BuildCounts {
		uuid, err := ParsePlayerUUID(c.Player.UUID)
		if err != nil {
			return nil, errors.Wrapf(err, "build counts: record %d", i)
		}
		set.Stats(uuid).BuildCount = c.BuildCount
	}
	for i, c := range d.PlayTicks {
		uuid, err := ParsePlayerUUID(c.Player.UUID)
		if err != nil {
			return nil, errors.Wrapf(err, "play ticks: record %d", i)
		}
		set.Stats(uuid).PlayTicks = c.PlayTicks
	}
	for i, c := range d.VoteCounts {
		uuid, err := ParsePlayerUUID(c.Player.UUID)
		if err != nil {
			return nil, errors.Wrapf(err, "vote counts: record %d", i)
		}
		set.Stats(uuid).VoteCount = c.VoteCount
	}

	return set, nil
}
