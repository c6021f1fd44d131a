package health

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/storefront-server/internal/logger"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Probe keeps the overall health status in line with the database.
type Probe struct {
	server   *health.Server
	pinger   Pinger
	interval time.Duration
	logger   *logger.Logger
}

// NewProbe creates a Probe publishing to server.
func NewProbe(server *health.Server, pinger Pinger, interval time.Duration, logger *logger.Logger) *Probe {
	return &Probe{
		server:   server,
		pinger:   pinger,
		interval: interval,
		logger:   logger,
	}
}

// Run checks the pinger immediately and then every interval until ctx is done.
func (p *Probe) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.check(ctx)
		}
	}
}

func (p *Probe) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := p.pinger.Ping(pingCtx); err != nil {
		p.logger.Error("Health probe: database ping failed",
			"error", err.Error())
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	p.server.SetServingStatus("", status)
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (p *Probe) Shutdown() {
	p.server.Shutdown()
}
