package server

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/oggyb/golf-buddy/internal/logger"
	"github.com/oggyb/golf-buddy/internal/metrics"
)

// RequestIDKey is the metadata key carrying the request id both ways.
const RequestIDKey = "x-request-id"

// RequestLogger attaches a request-scoped logger (request_id, method) to the
// context and logs each call's outcome at debug level.
// An incoming x-request-id is reused, otherwise a new UUID is generated.
func RequestLogger(base *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		reqID := incomingRequestID(ctx)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDKey, reqID))

		log := base.With("request_id", reqID, "method", info.FullMethod)
		ctx = logger.WithContext(ctx, log)

		start := time.Now()
		resp, err := handler(ctx, req)
		log.Debug("rpc finished",
			"code", status.Code(err).String(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return resp, err
	}
}

// Metrics records count and latency per method and status code.
func Metrics() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		metrics.RecordRPC(info.FullMethod, status.Code(err).String(), time.Since(start))
		return resp, err
	}
}

// Recovery turns a handler panic into codes.Internal.
func Recovery(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic in handler", "method", info.FullMethod, "panic", r, "stack", string(debug.Stack()))
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}

func incomingRequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if vals := md.Get(RequestIDKey); len(vals) > 0 {
		return vals[0]
	}
	return ""
}
