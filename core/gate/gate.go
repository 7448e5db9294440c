package gate

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// Config holds configuration for the store gate.
type Config struct {
	// TimeoutSeconds bounds how long an operation waits for the gate
	// before proceeding without it.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// Gate serializes access to the record store. Every read and write acquires
// the gate before touching the store. The wait is bounded: once the timeout
// elapses the operation proceeds unlocked, trading a small window of weak
// consistency for availability.
type Gate struct {
	sem     *semaphore.Weighted
	timeout time.Duration
	logger  *zap.Logger
}

// New creates a gate with the configured acquisition timeout.
func New(cfg Config, logger *zap.Logger) *Gate {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	return &Gate{
		sem:     semaphore.NewWeighted(1),
		timeout: time.Duration(timeout) * time.Second,
		logger:  logger,
	}
}

// Acquire blocks until the gate is held or the bounded wait elapses.
// It returns a release function, which is safe to call on every exit path,
// and whether the gate was actually held. A timed-out acquisition is logged
// as a degraded-consistency warning rather than failing the operation.
func (g *Gate) Acquire(ctx context.Context) (release func(), held bool) {
	waitCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := g.sem.Acquire(waitCtx, 1); err != nil {
		g.logger.Warn("Gate acquisition timed out, proceeding unlocked",
			zap.Duration("timeout", g.timeout),
			zap.Error(err),
		)
		return func() {}, false
	}

	return func() { g.sem.Release(1) }, true
}
