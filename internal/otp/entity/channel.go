package entity

import "errors"

// ErrUnknownChannel is returned when a channel string is not part of the enum.
var ErrUnknownChannel = errors.New("unknown channel")

// Channel selects the delivery transport for a code.
type Channel string

const (
	ChannelEmail    Channel = "EMAIL"
	ChannelSMS      Channel = "SMS"
	ChannelTelegram Channel = "TELEGRAM"
	ChannelFile     Channel = "FILE"
)

// ParseChannel converts a raw string into a Channel.
func ParseChannel(s string) (Channel, error) {
	switch Channel(s) {
	case ChannelEmail:
		return ChannelEmail, nil
	case ChannelSMS:
		return ChannelSMS, nil
	case ChannelTelegram:
		return ChannelTelegram, nil
	case ChannelFile:
		return ChannelFile, nil
	default:
		return "", ErrUnknownChannel
	}
}
