package channel

import (
	"context"
	"fmt"
	"io"

	"github.com/relaykit/relay/internal/domain"
)

// Email writes messages to its sink labeled as email traffic.
// The sink is injected so tests can capture output and main can use stdout.
type Email struct {
	sink io.Writer
}

func NewEmail(sink io.Writer) *Email {
	return &Email{sink: sink}
}

func (e *Email) Medium() domain.Medium { return domain.MediumEmail }

// Transmit emits one line of the form "Enviando email: <text>".
func (e *Email) Transmit(ctx context.Context, text string) error {
	return emit(ctx, e.sink, domain.MediumEmail, text)
}

// emit is the shared sink write for both channels: one line,
// "<label>: <text>". Context cancellation is honored before the write since
// io.Writer itself carries no deadline.
func emit(ctx context.Context, sink io.Writer, m domain.Medium, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(sink, "%s: %s\n", m.Label(), text); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailure, err)
	}
	return nil
}

// compile-time check that Email implements DeliveryChannel
var _ DeliveryChannel = (*Email)(nil)
