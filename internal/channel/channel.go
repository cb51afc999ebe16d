package channel

import (
	"context"

	"github.com/relaykit/relay/internal/domain"
)

// DeliveryChannel abstracts the physical transmission of a finished message
// line. Implementations are stateless; the only observable effect of Transmit
// is one labeled line written to the channel's sink.
//
// Real transports are out of scope: both shipped channels write to an
// io.Writer standing in for the medium. Mocking this interface in tests gives
// full control over delivery behaviour.
type DeliveryChannel interface {
	// Medium identifies which delivery axis variant this channel serves.
	Medium() domain.Medium

	// Transmit emits text to the sink, prefixed with the medium's label.
	// A sink write error is reported as domain.ErrDeliveryFailure.
	Transmit(ctx context.Context, text string) error
}

// Registry resolves a DeliveryChannel by medium. It is populated once at
// startup and read-only afterwards, so no locking is needed.
type Registry struct {
	channels map[domain.Medium]DeliveryChannel
}

func NewRegistry(channels ...DeliveryChannel) *Registry {
	r := &Registry{channels: make(map[domain.Medium]DeliveryChannel, len(channels))}
	for _, ch := range channels {
		r.channels[ch.Medium()] = ch
	}
	return r
}

// For returns the channel registered for m, or domain.ErrUnknownMedium.
func (r *Registry) For(m domain.Medium) (DeliveryChannel, error) {
	ch, ok := r.channels[m]
	if !ok {
		return nil, domain.ErrUnknownMedium
	}
	return ch, nil
}

// Media returns the registered media in catalog order.
func (r *Registry) Media() []domain.Medium {
	media := make([]domain.Medium, 0, len(r.channels))
	for _, m := range domain.Media() {
		if _, ok := r.channels[m]; ok {
			media = append(media, m)
		}
	}
	return media
}
