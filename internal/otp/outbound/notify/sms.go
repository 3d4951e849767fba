package notify

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/fiorix/go-smpp/smpp"
	"github.com/fiorix/go-smpp/smpp/pdu/pdufield"
	"github.com/fiorix/go-smpp/smpp/pdu/pdutext"
)

// SMSConfig carries the SMPP connection settings.
type SMSConfig struct {
	Host       string
	Port       int
	SystemID   string
	Password   string
	SystemType string
	SourceAddr string
}

// SMS delivers codes over an SMPP bind-transmitter session. The recipient is
// a phone number. A fresh bind is opened per send and unbound afterwards;
// volume is low enough that a long-lived session is not worth its failure
// modes.
type SMS struct {
	cfg SMSConfig
}

func NewSMS(cfg SMSConfig) *SMS {
	return &SMS{cfg: cfg}
}

func (s *SMS) SendCode(ctx context.Context, recipient, code string) error {
	tx := &smpp.Transmitter{
		Addr:       net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port)),
		User:       s.cfg.SystemID,
		Passwd:     s.cfg.Password,
		SystemType: s.cfg.SystemType,
	}

	conn := tx.Bind()
	defer tx.Close()

	select {
	case status := <-conn:
		if status.Error() != nil {
			return fmt.Errorf("smpp bind: %w", status.Error())
		}
		if status.Status() != smpp.Connected {
			return fmt.Errorf("smpp bind: unexpected status %v", status.Status())
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	_, err := tx.Submit(&smpp.ShortMessage{
		Src:      s.cfg.SourceAddr,
		Dst:      recipient,
		Text:     pdutext.Raw([]byte("Your OTP code: " + code)),
		Register: pdufield.NoDeliveryReceipt,
	})
	if err != nil {
		return fmt.Errorf("smpp submit: %w", err)
	}

	return nil
}
