package usecase

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper periodically runs the expiration sweep. It runs once immediately on
// Start so a restart does not leave stale rows waiting a full interval.
type Sweeper struct {
	uc       *Usecase
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func NewSweeper(uc *Usecase, interval time.Duration) *Sweeper {
	return &Sweeper{
		uc:       uc,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the sweep loop in its own goroutine.
func (sw *Sweeper) Start(ctx context.Context) {
	go sw.run(ctx)
}

func (sw *Sweeper) run(ctx context.Context) {
	defer close(sw.doneCh)

	slog.InfoContext(ctx, "starting otp expiration sweeper", "interval", sw.interval)

	sw.sweep(ctx)

	ticker := time.NewTicker(sw.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sw.sweep(ctx)
		case <-sw.stopCh:
			slog.InfoContext(ctx, "stopping otp expiration sweeper")
			return
		case <-ctx.Done():
			slog.InfoContext(ctx, "context cancelled, stopping otp expiration sweeper")
			return
		}
	}
}

func (sw *Sweeper) sweep(ctx context.Context) {
	if err := sw.uc.MarkExpired(ctx); err != nil {
		slog.ErrorContext(ctx, "otp expiration sweep failed", "error", err)
	}
}

// Stop signals the loop to exit and waits until it has.
func (sw *Sweeper) Stop() {
	close(sw.stopCh)
	<-sw.doneCh
}
