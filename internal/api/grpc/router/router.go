package router

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/dtroode/storefront-server/internal/api/grpc/middleware"
	"github.com/dtroode/storefront-server/internal/logger"
)

// Router builds the internal gRPC server exposing health and reflection.
type Router struct {
	healthServer *health.Server
	logger       *logger.Logger
}

// New creates a new gRPC Router.
func New(healthServer *health.Server, logger *logger.Logger) *Router {
	return &Router{
		healthServer: healthServer,
		logger:       logger,
	}
}

// Register creates the gRPC server with logging and recovery interceptors
// and registers its services.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recoverer := middleware.NewRecover(r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.UnaryServerInterceptor(),
			recoverer.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			logging.StreamServerInterceptor(),
			recoverer.StreamServerInterceptor(),
		),
	)
	healthpb.RegisterHealthServer(s, r.healthServer)
	reflection.Register(s)

	return s
}
