package server

import (
	"context"
	"net"

	"github.com/openkcm/common-sdk/pkg/commongrpc"
	"github.com/samber/oops"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/reflection"

	slogctx "github.com/veqryn/slog-context"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/openkcm/interview-manager/internal/config"
)

// InterviewServiceName is the health service name reported for the
// interview API next to the overall server status.
const InterviewServiceName = "interview-manager.Interview"

// StartGRPCServer starts the internal gRPC server. It only exposes the
// health and reflection services.
func StartGRPCServer(ctx context.Context, cfg *config.Config) error {
	grpcServer := commongrpc.NewServer(ctx, &cfg.GRPC.GRPCServer)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(InterviewServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	listener, err := new(net.ListenConfig).Listen(ctx, "tcp", cfg.GRPC.Address)
	if err != nil {
		return oops.In("gRPC Server").
			WithContext(ctx).
			Wrapf(err, "creating listener")
	}

	go func() {
		slogctx.Info(ctx, "Starting GRPC server", "address", listener.Addr().String())

		if err := grpcServer.Serve(listener); err != nil {
			slogctx.Error(ctx, "Failed to serve gRPC endpoint", "error", err)
		}

		slogctx.Info(ctx, "Stopped gRPC server")
	}()

	<-ctx.Done()

	// Report NOT_SERVING so that clients stop sending traffic while draining.
	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.GRPC.ShutdownTimeout)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		slogctx.Info(shutdownCtx, "Completed graceful shutdown of gRPC server")
	case <-shutdownCtx.Done():
		grpcServer.Stop()
		slogctx.Warn(shutdownCtx, "Forced shutdown of gRPC server after timeout")
	}

	return nil
}
