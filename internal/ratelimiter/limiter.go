package ratelimiter

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/relaykit/relay/internal/domain"
)

// MediumLimiters holds one token bucket limiter per delivery medium.
// Each limiter enforces a steady-state rate (e.g. 100 tokens/sec).
// Burst is set equal to the rate so no extra burst capacity is allowed
// beyond the configured per-second maximum.
type MediumLimiters struct {
	limiters map[domain.Medium]*rate.Limiter
}

// New creates a MediumLimiters with ratePerSec tokens per second per medium.
func New(ratePerSec int) *MediumLimiters {
	r := rate.Limit(ratePerSec)
	burst := ratePerSec // burst == rate: prevents any "saved up" burst above the limit

	limiters := make(map[domain.Medium]*rate.Limiter, len(domain.Media()))
	for _, m := range domain.Media() {
		limiters[m] = rate.NewLimiter(r, burst)
	}
	return &MediumLimiters{limiters: limiters}
}

// Wait blocks until the medium's limiter grants a token.
// Called by the dispatcher immediately before transmitting.
// Returns a non-nil error only if ctx is cancelled while waiting.
func (ml *MediumLimiters) Wait(ctx context.Context, m domain.Medium) error {
	return ml.limiters[m].Wait(ctx)
}
