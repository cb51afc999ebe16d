package channel

import (
	"context"
	"io"

	"github.com/relaykit/relay/internal/domain"
)

// SMS writes messages to its sink labeled as SMS traffic.
type SMS struct {
	sink io.Writer
}

func NewSMS(sink io.Writer) *SMS {
	return &SMS{sink: sink}
}

func (s *SMS) Medium() domain.Medium { return domain.MediumSMS }

// Transmit emits one line of the form "Enviando SMS: <text>".
func (s *SMS) Transmit(ctx context.Context, text string) error {
	return emit(ctx, s.sink, domain.MediumSMS, text)
}

// compile-time check that SMS implements DeliveryChannel
var _ DeliveryChannel = (*SMS)(nil)
