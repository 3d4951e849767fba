// Package notify holds the delivery transports behind OTP dispatch. Each
// transport implements Sender; the Factory picks one per channel at runtime.
package notify

import (
	"context"
	"fmt"

	"github.com/otpgate/otpgate/internal/otp/entity"
)

// Sender delivers one code to one recipient over a concrete transport.
type Sender interface {
	SendCode(ctx context.Context, recipient, code string) error
}

// Factory routes a channel to its configured transport. The map is built once
// at startup and read-only afterwards.
type Factory struct {
	senders map[entity.Channel]Sender
}

func NewFactory(senders map[entity.Channel]Sender) *Factory {
	return &Factory{senders: senders}
}

// Send dispatches a code over the transport registered for the channel.
func (f *Factory) Send(ctx context.Context, channel entity.Channel, recipient, code string) error {
	sender, ok := f.senders[channel]
	if !ok {
		return fmt.Errorf("no transport configured for channel %s", channel)
	}

	return sender.SendCode(ctx, recipient, code)
}
