package repo

import (
	"context"
	"net"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"seichi.click/gamedata-translator/internal/model"
	"seichi.click/gamedata-translator/internal/model/pb"
)

// stubReadService serves canned collection responses over a real in-process
// gRPC server, so conversions are tested against the actual wire round-trip.
type stubReadService struct {
	pb.UnimplementedReadServiceServer

	breakCounts *pb.BreakCountsResponse
	buildCounts *pb.BuildCountsResponse
	playTicks   *pb.PlayTicksResponse
	voteCounts  *pb.VoteCountsResponse

	err error
}

func (s *stubReadService) BreakCounts(ctx context.Context, _ *emptypb.Empty) (*pb.BreakCountsResponse, error) {
	return s.breakCounts, s.err
}

func (s *stubReadService) BuildCounts(ctx context.Context, _ *emptypb.Empty) (*pb.BuildCountsResponse, error) {
	return s.buildCounts, s.err
}

func (s *stubReadService) PlayTicks(ctx context.Context, _ *emptypb.Empty) (*pb.PlayTicksResponse, error) {
	return s.playTicks, s.err
}

func (s *stubReadService) VoteCounts(ctx context.Context, _ *emptypb.Empty) (*pb.VoteCountsResponse, error) {
	return s.voteCounts, s.err
}

func startReadService(t *testing.T, stub *stubReadService) model.PlayerDataRepository {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer()
	pb.RegisterReadServiceServer(srv, stub)
	go func() {
		_ = srv.Serve(ln)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.Dial(ln.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return NewGameData(pb.NewReadServiceClient(conn))
}

func TestGameDataConvertsAllCollections(t *testing.T) {
	source := startReadService(t, &stubReadService{
		breakCounts: &pb.BreakCountsResponse{
			Results: []*pb.PlayerBreakCount{
				{Player: &pb.Player{Uuid: "11111111-1111-1111-1111-111111111111", LastKnownName: "alice"}, BreakCount: 100},
				{Player: &pb.Player{Uuid: "22222222-2222-2222-2222-222222222222", LastKnownName: "bob"}, BreakCount: 200},
			},
		},
		buildCounts: &pb.BuildCountsResponse{
			Results: []*pb.PlayerBuildCount{
				{Player: &pb.Player{Uuid: "11111111-1111-1111-1111-111111111111"}, BuildCount: 10},
			},
		},
		playTicks: &pb.PlayTicksResponse{
			Results: []*pb.PlayerPlayTicks{
				{Player: &pb.Player{Uuid: "11111111-1111-1111-1111-111111111111"}, PlayTicks: 72000},
			},
		},
		voteCounts: &pb.VoteCountsResponse{},
	})

	ctx := context.Background()

	breakCounts, err := source.GetAllBreakCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.PlayerBreakCount{
		{Player: model.Player{UUID: "11111111-1111-1111-1111-111111111111", LastKnownName: "alice"}, BreakCount: 100},
		{Player: model.Player{UUID: "22222222-2222-2222-2222-222222222222", LastKnownName: "bob"}, BreakCount: 200},
	}, breakCounts)

	buildCounts, err := source.GetAllBuildCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.PlayerBuildCount{
		{Player: model.Player{UUID: "11111111-1111-1111-1111-111111111111"}, BuildCount: 10},
	}, buildCounts)

	playTicks, err := source.GetAllPlayTicks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.PlayerPlayTicks{
		{Player: model.Player{UUID: "11111111-1111-1111-1111-111111111111"}, PlayTicks: 72000},
	}, playTicks)

	voteCounts, err := source.GetAllVoteCounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, voteCounts)
}

func TestGameDataMissingPlayerReference(t *testing.T) {
	source := startReadService(t, &stubReadService{
		breakCounts: &pb.BreakCountsResponse{
			Results: []*pb.PlayerBreakCount{
				{Player: &pb.Player{Uuid: "11111111-1111-1111-1111-111111111111"}, BreakCount: 1},
				{BreakCount: 2},
			},
		},
	})

	records, err := source.GetAllBreakCounts(context.Background())
	assert.Nil(t, records, "a collection with a playerless record must not be partially returned")
	assert.True(t, errors.Is(err, ErrMissingPlayer))
	assert.ErrorContains(t, err, "record 1")
}

func TestGameDataTransportErrors(t *testing.T) {
	source := startReadService(t, &stubReadService{
		err: status.Error(codes.Unavailable, "backend is restarting"),
	})

	_, err := source.GetAllVoteCounts(context.Background())
	require.Error(t, err)
	assert.Equal(t, codes.Unavailable, status.Code(errors.Cause(err)))
}

func TestGameDataCancelledContext(t *testing.T) {
	source := startReadService(t, &stubReadService{
		voteCounts: &pb.VoteCountsResponse{},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.GetAllVoteCounts(ctx)
	require.Error(t, err)
	assert.Equal(t, codes.Canceled, status.Code(errors.Cause(err)))
}
