package server

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/dtroode/storefront-server/internal/model"
)

// GRPCServer wraps a gRPC server with address and lifecycle methods.
type GRPCServer struct {
	server *grpc.Server
	addr   string
	// onStop runs before the server stops accepting calls.
	onStop func()
}

// NewGRPCServer creates a GRPCServer with given server and address. onStop
// may be nil.
func NewGRPCServer(server *grpc.Server, addr string, onStop func()) *GRPCServer {
	return &GRPCServer{server: server, addr: addr, onStop: onStop}
}

// Start starts serving on the configured address using the provided security layer.
func (s *GRPCServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return s.server.Serve(listener)
}

// Stop drains in-flight calls, forcing a hard stop once ctx is done.
func (s *GRPCServer) Stop(ctx context.Context) error {
	if s.onStop != nil {
		s.onStop()
	}

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.server.Stop()
		return ctx.Err()
	}
}

// Address returns the configured listen address.
func (s *GRPCServer) Address() string {
	return s.addr
}
