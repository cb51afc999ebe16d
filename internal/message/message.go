// Package message holds the abstraction side of the dispatch bridge: a
// message category that formats a body, bound at construction to the
// delivery channel that transmits it. Swapping the channel never changes
// the formatting, and vice versa.
package message

import (
	"context"

	"github.com/relaykit/relay/internal/channel"
	"github.com/relaykit/relay/internal/domain"
)

// Message formats a raw body per its category and forwards the formatted
// text to its delivery channel. Implementations are stateless and safe to
// reuse across any number of Send calls.
type Message interface {
	Category() domain.Category

	// Send applies the category's formatting to body and transmits the
	// result unmodified. Any error from the channel propagates as-is.
	Send(ctx context.Context, body string) error
}

// New constructs the message variant for category, bound to ch.
func New(category domain.Category, ch channel.DeliveryChannel) (Message, error) {
	switch category {
	case domain.CategorySimple:
		return NewSimple(ch)
	case domain.CategoryUrgent:
		return NewUrgent(ch)
	}
	return nil, domain.ErrInvalidCategory
}

// Simple is an ordinary message: "Mensagem Simples: <body>".
type Simple struct {
	ch channel.DeliveryChannel
}

// NewSimple binds a Simple message to its channel. The channel is required:
// a message never exists without one.
func NewSimple(ch channel.DeliveryChannel) (*Simple, error) {
	if ch == nil {
		return nil, domain.ErrNilChannel
	}
	return &Simple{ch: ch}, nil
}

func (m *Simple) Category() domain.Category { return domain.CategorySimple }

func (m *Simple) Send(ctx context.Context, body string) error {
	return m.ch.Transmit(ctx, domain.CategorySimple.Format(body))
}

// Urgent is a priority message: "*** URGENTE *** <body>".
type Urgent struct {
	ch channel.DeliveryChannel
}

// NewUrgent binds an Urgent message to its channel.
func NewUrgent(ch channel.DeliveryChannel) (*Urgent, error) {
	if ch == nil {
		return nil, domain.ErrNilChannel
	}
	return &Urgent{ch: ch}, nil
}

func (m *Urgent) Category() domain.Category { return domain.CategoryUrgent }

func (m *Urgent) Send(ctx context.Context, body string) error {
	return m.ch.Transmit(ctx, domain.CategoryUrgent.Format(body))
}

// compile-time checks that both variants implement Message
var (
	_ Message = (*Simple)(nil)
	_ Message = (*Urgent)(nil)
)
