package monitoring

import (
	"context"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// UnaryInterceptor returns a gRPC server interceptor that tags every call
// with a ULID request id, logs it, and records RPC metrics. Broker
// failures travel as status codes inside replies, so the transport-level
// status recorded here is almost always "ok".
func UnaryInterceptor(metrics *Metrics, log *zap.Logger) grpc.UnaryServerInterceptor {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)

	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler) (interface{}, error) {

		start := time.Now()
		requestID := ulid.MustNew(ulid.Timestamp(start), entropy).String()

		resp, err := handler(ctx, req)

		duration := time.Since(start)
		transportStatus := "ok"
		if err != nil {
			transportStatus = "error"
		}
		metrics.RecordRPC(info.FullMethod, transportStatus, duration)

		log.Debug("rpc handled",
			zap.String("request_id", requestID),
			zap.String("method", info.FullMethod),
			zap.Duration("duration", duration),
			zap.Error(err))
		return resp, err
	}
}
