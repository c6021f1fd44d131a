package middleware

import (
	"context"
	"log/slog"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/storefront-server/internal/logger"
)

// Logging binds go-grpc-middleware's request logging to the application logger.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Log forwards a logging event at the matching slog level.
func (l *Logging) Log(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
	l.logger.Log(ctx, slog.Level(lvl), "gRPC "+msg, fields...)
}

// UnaryServerInterceptor logs method, code and duration of each finished call.
func (l *Logging) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return logging.UnaryServerInterceptor(logging.LoggerFunc(l.Log), logging.WithLogOnEvents(logging.FinishCall))
}

// StreamServerInterceptor is the streaming counterpart of UnaryServerInterceptor.
func (l *Logging) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return logging.StreamServerInterceptor(logging.LoggerFunc(l.Log), logging.WithLogOnEvents(logging.FinishCall))
}

// Recover turns handler panics into codes.Internal.
type Recover struct {
	logger *logger.Logger
}

// NewRecover creates a new Recover middleware.
func NewRecover(logger *logger.Logger) *Recover {
	return &Recover{logger: logger}
}

// Handle is a recovery.RecoveryHandlerFunc.
func (r *Recover) Handle(p any) error {
	r.logger.Error("gRPC handler panicked",
		"panic", p)
	return status.Error(codes.Internal, "internal server error")
}

func (r *Recover) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return recovery.UnaryServerInterceptor(recovery.WithRecoveryHandler(r.Handle))
}

func (r *Recover) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return recovery.StreamServerInterceptor(recovery.WithRecoveryHandler(r.Handle))
}
