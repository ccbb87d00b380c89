package infra

import (
	"context"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"seichi.click/gamedata-translator/internal/app/appconfig"
	"seichi.click/gamedata-translator/internal/model/pb"
)

// GameData dials the game data server's gRPC endpoint. The dial blocks until
// the connection is up, so a bad endpoint fails the process at startup rather
// than on the first scrape; a few fixed-delay retries cover boot ordering
// when both services come up together.
func GameData(conf *appconfig.Config) (*grpc.ClientConn, error) {
	target := dialTarget(conf.GameDataServerGrpcEndpointURL)

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	}
	if conf.TracingEnabled {
		opts = append(opts,
			grpc.WithUnaryInterceptor(otelgrpc.UnaryClientInterceptor()),
			grpc.WithStreamInterceptor(otelgrpc.StreamClientInterceptor()),
		)
	}

	conn, err := retry.DoWithData(func() (*grpc.ClientConn, error) {
		ctx, cancel := context.WithTimeout(context.Background(), conf.GameDataDialTimeout)
		defer cancel()
		return grpc.DialContext(ctx, target, opts...)
	},
		retry.Attempts(4),
		retry.Delay(time.Second*2),
		retry.DelayType(retry.FixedDelay),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().
				Str("evt.name", "infra.gamedata").
				Uint("attempt", n).
				Err(err).
				Msg("failed to connect to game data server. retrying...")
		}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "infra: gamedata: dialing %s", target)
	}

	log.Info().
		Str("evt.name", "infra.gamedata").
		Str("target", target).
		Msg("connected to game data server")

	return conn, nil
}

// GameDataClient exposes the typed ReadService client over the shared
// connection.
func GameDataClient(conn *grpc.ClientConn) pb.ReadServiceClient {
	return pb.NewReadServiceClient(conn)
}

// dialTarget strips the scheme off the configured endpoint URL. The endpoint
// historically carries an http:// prefix in deployment manifests, which
// grpc-go does not accept as a dial target.
func dialTarget(endpoint string) string {
	for _, scheme := range []string{"http://", "https://"} {
		if strings.HasPrefix(endpoint, scheme) {
			return strings.TrimPrefix(endpoint, scheme)
		}
	}
	return endpoint
}
