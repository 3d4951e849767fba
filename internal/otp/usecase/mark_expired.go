package usecase

import (
	"context"
	"log/slog"

	"github.com/otpgate/otpgate/internal/pkg/goerror"
)

// MarkExpired flips every ACTIVE row older than the current TTL to EXPIRED
// in one statement.
func (s *Usecase) MarkExpired(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "MarkExpired")
	defer span.End()

	cfg, err := s.repoDB.GetConfig(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get otp config", "error", err)
		return goerror.NewServer(err)
	}

	cutoff := s.clock.Now().Add(-cfg.TTL())

	n, err := s.repoDB.ExpireStale(ctx, cutoff)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo expire stale otps", "error", err)
		return goerror.NewServer(err)
	}

	if n > 0 {
		slog.InfoContext(ctx, "expired stale otps", "count", n)
	}

	return nil
}
