package retry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"trend_sentinel/internal/config"
	"trend_sentinel/internal/domain"
)

// Do runs fn until it succeeds, the attempt limit is reached, or the
// error is not retryable. Backoff doubles per attempt up to the
// configured maximum; a rate-limit retry-after hint overrides the
// computed backoff and counts against the same attempt limit.
func Do(ctx context.Context, cfg config.RetryConfig, logger *slog.Logger, op string, fn func(ctx context.Context) error) error {
	var err error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}

		if !domain.IsRetryable(err) {
			return err
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		backoff := calculateBackoff(cfg, attempt)
		if hint, ok := domain.RetryAfterHint(err); ok {
			backoff = hint
			if backoff > cfg.MaxBackoff {
				backoff = cfg.MaxBackoff
			}
		}

		logger.Warn("call failed, retrying",
			"op", op,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("after %d attempts: %w", cfg.MaxAttempts, err)
}

func calculateBackoff(cfg config.RetryConfig, attempt int) time.Duration {
	backoff := cfg.InitialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > cfg.MaxBackoff {
		backoff = cfg.MaxBackoff
	}
	return backoff
}
