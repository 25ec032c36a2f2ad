package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"

	"staymarket/internal/infra"
	"staymarket/internal/pkg/errs"
)

// RetryConfig bounds the optimistic-concurrency retry loop shared by all
// coordinator operations.
type RetryConfig struct {
	MaxRetries int
	BaseWait   time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{MaxRetries: 3, BaseWait: 100 * time.Millisecond}
}

// WithConflictRetry runs fn, retrying on conditional-write conflicts with
// exponential backoff. fn must re-read its records on every attempt so guard
// conditions are re-evaluated against current state. Exhausted retries
// surface as ErrSettlementConflict; every other error returns immediately.
func WithConflictRetry[T any](ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	for attempt := 0; ; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}

		if !infra.IsKind(err, infra.KindConflict) {
			return zero, err
		}

		if attempt >= cfg.MaxRetries {
			slog.Error("settlement operation failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return zero, errs.Mark(err, errs.ErrSettlementConflict)
		}

		waitTime := calculateBackoff(attempt, cfg.BaseWait)
		slog.Warn("retrying settlement operation after write conflict",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds())

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- positive after masking the sign bit
	return int64(uval) % n
}
