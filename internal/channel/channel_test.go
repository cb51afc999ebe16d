package channel_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/relaykit/relay/internal/channel"
	"github.com/relaykit/relay/internal/domain"
)

// failingSink simulates an unavailable sink: every write fails.
type failingSink struct{}

func (failingSink) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestEmail_Transmit(t *testing.T) {
	var buf bytes.Buffer
	e := channel.NewEmail(&buf)

	if err := e.Transmit(context.Background(), "Mensagem Simples: Hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "Enviando email: Mensagem Simples: Hello\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestSMS_Transmit(t *testing.T) {
	var buf bytes.Buffer
	s := channel.NewSMS(&buf)

	if err := s.Transmit(context.Background(), "*** URGENTE *** Alert!"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "Enviando SMS: *** URGENTE *** Alert!\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestTransmit_EmptyText(t *testing.T) {
	var buf bytes.Buffer
	e := channel.NewEmail(&buf)

	if err := e.Transmit(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "Enviando email: \n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// A sink write failure surfaces as ErrDeliveryFailure, per the transmit contract.
func TestTransmit_SinkFailure(t *testing.T) {
	e := channel.NewEmail(failingSink{})

	err := e.Transmit(context.Background(), "Hello")
	if !errors.Is(err, domain.ErrDeliveryFailure) {
		t.Fatalf("expected ErrDeliveryFailure, got %v", err)
	}
}

func TestTransmit_CancelledContext(t *testing.T) {
	var buf bytes.Buffer
	s := channel.NewSMS(&buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Transmit(ctx, "Hello"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output after cancellation, got %q", buf.String())
	}
}

func TestRegistry(t *testing.T) {
	var buf bytes.Buffer
	reg := channel.NewRegistry(channel.NewEmail(&buf), channel.NewSMS(&buf))

	t.Run("resolves registered media", func(t *testing.T) {
		for _, m := range domain.Media() {
			ch, err := reg.For(m)
			if err != nil {
				t.Fatalf("medium %q: unexpected error: %v", m, err)
			}
			if ch.Medium() != m {
				t.Fatalf("medium %q: resolved channel reports %q", m, ch.Medium())
			}
		}
	})

	t.Run("unknown medium", func(t *testing.T) {
		partial := channel.NewRegistry(channel.NewEmail(&buf))
		if _, err := partial.For(domain.MediumSMS); !errors.Is(err, domain.ErrUnknownMedium) {
			t.Fatalf("expected ErrUnknownMedium, got %v", err)
		}
	})

	t.Run("media in catalog order", func(t *testing.T) {
		media := reg.Media()
		if len(media) != 2 || media[0] != domain.MediumEmail || media[1] != domain.MediumSMS {
			t.Fatalf("unexpected media: %v", media)
		}
	})
}
