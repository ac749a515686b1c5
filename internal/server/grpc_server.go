package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/oggyb/golf-buddy/internal/config"
)

// NewGRPCServer builds a gRPC server with the request interceptors and
// registers all provided services plus the standard health and reflection
// services.
func NewGRPCServer(log *slog.Logger, registrars ...Registrar) *grpc.Server {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			Recovery(log),
			RequestLogger(log),
			Metrics(),
		),
	)

	// register all services
	for _, r := range registrars {
		r.Register(grpcServer)
	}

	hs := health.NewServer()
	for name := range grpcServer.GetServiceInfo() {
		hs.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}
	healthpb.RegisterHealthServer(grpcServer, hs)

	// Reflection lists services (grpcurl list). Messages travel as JSON with
	// no registered file descriptors, so describe and invoke-by-name do not work.
	reflection.Register(grpcServer)

	return grpcServer
}

// StartGRPCServer listens on the configured address and serves until ctx is
// canceled, then stops gracefully.
func StartGRPCServer(ctx context.Context, cfg *config.Config, log *slog.Logger, registrars ...Registrar) error {
	addr := fmt.Sprintf("%s:%s", cfg.GRPC.Host, cfg.GRPC.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return Serve(ctx, lis, NewGRPCServer(log, registrars...))
}

// Serve runs grpcServer on lis until ctx is done.
func Serve(ctx context.Context, lis net.Listener, grpcServer *grpc.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		grpcServer.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}
