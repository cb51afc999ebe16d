package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/relaykit/relay/internal/channel"
	"github.com/relaykit/relay/internal/domain"
	"github.com/relaykit/relay/internal/message"
	"github.com/relaykit/relay/internal/ratelimiter"
)

// Hooks carries the metric callback functions injected by main.
// Using a struct keeps the dispatcher constructor signature clean.
type Hooks struct {
	OnSent   func(category domain.Category, medium domain.Medium, latency time.Duration)
	OnFailed func(medium domain.Medium)
}

// Dispatcher is the composition root of the message bridge: it selects the
// channel for the requested medium, constructs the message variant for the
// requested category, and sends. All wiring happens per call; no state
// survives a dispatch, so the same body always produces the same line.
type Dispatcher struct {
	channels *channel.Registry
	limiter  *ratelimiter.MediumLimiters
	logger   *zap.Logger

	// Hooks for metrics — injected so the dispatcher stays metrics-agnostic.
	onSent   func(domain.Category, domain.Medium, time.Duration)
	onFailed func(domain.Medium)
}

// New constructs a dispatcher. Hook fields are optional (nil = no-op).
func New(
	channels *channel.Registry,
	limiter *ratelimiter.MediumLimiters,
	logger *zap.Logger,
	hooks Hooks,
) *Dispatcher {
	if hooks.OnSent == nil {
		hooks.OnSent = func(domain.Category, domain.Medium, time.Duration) {}
	}
	if hooks.OnFailed == nil {
		hooks.OnFailed = func(domain.Medium) {}
	}
	return &Dispatcher{
		channels: channels,
		limiter:  limiter,
		logger:   logger,
		onSent:   hooks.OnSent,
		onFailed: hooks.OnFailed,
	}
}

// Dispatch validates the request, wires the (category, medium) pair, and
// sends the body. On success it returns a receipt echoing the line the
// channel emitted.
func (d *Dispatcher) Dispatch(ctx context.Context, req domain.DispatchRequest) (*domain.Delivery, error) {
	start := time.Now()
	log := d.logger.With(
		zap.String("category", string(req.Category)),
		zap.String("medium", string(req.Medium)),
	)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	ch, err := d.channels.For(req.Medium)
	if err != nil {
		return nil, err
	}

	msg, err := message.New(req.Category, ch)
	if err != nil {
		return nil, err
	}

	// Block here until the per-medium rate limiter grants a token.
	if err := d.limiter.Wait(ctx, req.Medium); err != nil {
		// ctx cancelled while waiting — nothing was transmitted.
		return nil, err
	}

	if err := msg.Send(ctx, req.Body); err != nil {
		log.Warn("channel transmit failed", zap.Error(err))
		d.onFailed(req.Medium)
		return nil, fmt.Errorf("send %s via %s: %w", req.Category, req.Medium, err)
	}

	elapsed := time.Since(start)
	d.onSent(req.Category, req.Medium, elapsed)

	delivery := &domain.Delivery{
		ID:           uuid.New().String(),
		Category:     req.Category,
		Medium:       req.Medium,
		Body:         req.Body,
		Line:         req.Medium.Label() + ": " + req.Category.Format(req.Body),
		DispatchedAt: time.Now().UTC(),
	}

	log.Info("message dispatched",
		zap.String("delivery_id", delivery.ID),
		zap.Duration("latency", elapsed),
	)
	return delivery, nil
}

// Catalog returns the valid values of both axes, for the catalog endpoint.
// Categories are closed by the domain; media reflect what is registered.
func (d *Dispatcher) Catalog() ([]domain.Category, []domain.Medium) {
	return domain.Categories(), d.channels.Media()
}
