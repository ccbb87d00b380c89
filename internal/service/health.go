package service

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
)

var ErrGameDataNotReachable = errors.New("game data server not reachable")

type Health struct {
	Conn *grpc.ClientConn
}

func NewHealth(conn *grpc.ClientConn) *Health {
	return &Health{
		Conn: conn,
	}
}

// Ping reports the state of the upstream connection without issuing an RPC,
// so health probes put no load on the game data server. An Idle connection is
// healthy: grpc-go drops back to Idle after a while without traffic.
func (s *Health) Ping(ctx context.Context) error {
	state := s.Conn.GetState()
	if state != connectivity.Ready && state != connectivity.Idle {
		return errors.Wrap(ErrGameDataNotReachable, state.String())
	}

	return nil
}
