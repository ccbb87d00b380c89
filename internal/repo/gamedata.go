package repo

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/emptypb"

	"seichi.click/gamedata-translator/internal/model"
	"seichi.click/gamedata-translator/internal/model/pb"
)

// ErrMissingPlayer is returned when an upstream record carries no player reference.
var ErrMissingPlayer = errors.New("upstream record is missing its player")

// GameData reads the four statistics collections from the game data server's
// ReadService. It is the production implementation of model.PlayerDataRepository.
type GameData struct {
	client pb.ReadServiceClient
}

func NewGameData(client pb.ReadServiceClient) model.PlayerDataRepository {
	return &GameData{
		client: client,
	}
}

func (r *GameData) GetAllBreakCounts(ctx context.Context) ([]model.PlayerBreakCount, error) {
	resp, err := r.client.BreakCounts(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, errors.Wrap(err, "gamedata: fetching break counts")
	}

	results := make([]model.PlayerBreakCount, 0, len(resp.GetResults()))
	for i, record := range resp.GetResults() {
		player, err := extractPlayer(record.GetPlayer())
		if err != nil {
			return nil, errors.Wrapf(err, "gamedata: break counts: record %d", i)
		}
		results = append(results, model.PlayerBreakCount{
			Player:     player,
			BreakCount: record.GetBreakCount(),
		})
	}

	return results, nil
}

func (r *GameData) GetAllBuildCounts(ctx context.Context) ([]model.PlayerBuildCount, error) {
	resp, err := r.client.BuildCounts(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, errors.Wrap(err, "gamedata: fetching build counts")
	}

	results := make([]model.PlayerBuildCount, 0, len(resp.GetResults()))
	for i, record := range resp.GetResults() {
		player, err := extractPlayer(record.GetPlayer())
		if err != nil {
			return nil, errors.Wrapf(err, "gamedata: build counts: record %d", i)
		}
		results = append(results, model.PlayerBuildCount{
			Player:     player,
			BuildCount: record.GetBuildCount(),
		})
	}

	return results, nil
}

func (r *GameData) GetAllPlayTicks(ctx context.Context) ([]model.PlayerPlayTicks, error) {
	resp, err := r.client.PlayTicks(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, errors.Wrap(err, "gamedata: fetching play ticks")
	}

	results := make([]model.PlayerPlayTicks, 0, len(resp.GetResults()))
	for i, record := range resp.GetResults() {
		player, err := extractPlayer(record.GetPlayer())
		if err != nil {
			return nil, errors.Wrapf(err, "gamedata: play ticks: record %d", i)
		}
		results = append(results, model.PlayerPlayTicks{
			Player:    player,
			PlayTicks: record.GetPlayTicks(),
		})
	}

	return results, nil
}

func (r *GameData) GetAllVoteCounts(ctx context.Context) ([]model.PlayerVoteCount, error) {
	resp, err := r.client.VoteCounts(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, errors.Wrap(err, "gamedata: fetching vote counts")
	}

	results := make([]model.PlayerVoteCount, 0, len(resp.GetResults()))
	for i, record := range resp.GetResults() {
		player, err := extractPlayer(record.GetPlayer())
		if err != nil {
			return nil, errors.Wrapf(err, "gamedata: vote counts: record %d", i)
		}
		results = append(results, model.PlayerVoteCount{
			Player:    player,
			VoteCount: record.GetVoteCount(),
		})
	}

	return results, nil
}

// extractPlayer converts the upstream player reference. The field is optional
// on the wire, so a record may arrive without one; that is a protocol
// violation the caller must surface rather than skip.
func extractPlayer(p *pb.Player) (model.Player, error) {
	if p == nil {
		return model.Player{}, ErrMissingPlayer
	}
	return model.Player{
		UUID:          p.GetUuid(),
		LastKnownName: p.GetLastKnownName(),
	}, nil
}
