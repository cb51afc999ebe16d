// Command send wires one (category, medium) pair and sends a single message
// to stdout. Selection comes from SEND_CATEGORY, SEND_MEDIUM and SEND_BODY.
//
// Example: SEND_CATEGORY=urgent SEND_MEDIUM=sms SEND_BODY='Alert!' send
// prints "Enviando SMS: *** URGENTE *** Alert!".
package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/relaykit/relay/internal/channel"
	"github.com/relaykit/relay/internal/config"
	"github.com/relaykit/relay/internal/domain"
	"github.com/relaykit/relay/internal/message"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync() //nolint:errcheck

	cfg := config.Load()

	category := domain.Category(cfg.SendCategory)
	medium := domain.Medium(cfg.SendMedium)
	if !category.IsValid() {
		logger.Fatal("invalid SEND_CATEGORY", zap.String("value", cfg.SendCategory))
	}
	if !medium.IsValid() {
		logger.Fatal("invalid SEND_MEDIUM", zap.String("value", cfg.SendMedium))
	}

	channels := channel.NewRegistry(
		channel.NewEmail(os.Stdout),
		channel.NewSMS(os.Stdout),
	)
	ch, err := channels.For(medium)
	if err != nil {
		logger.Fatal("resolve channel", zap.Error(err))
	}

	msg, err := message.New(category, ch)
	if err != nil {
		logger.Fatal("construct message", zap.Error(err))
	}

	if err := msg.Send(context.Background(), cfg.SendBody); err != nil {
		logger.Fatal("send failed", zap.Error(err))
	}
}
