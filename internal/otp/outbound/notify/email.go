package notify

import (
	"context"
	"fmt"

	"github.com/otpgate/otpgate/internal/pkg/mail"
)

// Email delivers codes over SMTP. The recipient is an email address.
type Email struct {
	mailer mail.Mail
}

func NewEmail(mailer mail.Mail) *Email {
	return &Email{mailer: mailer}
}

func (e *Email) SendCode(ctx context.Context, recipient, code string) error {
	msg := mail.Message{
		To:       []string{recipient},
		Subject:  "Your OTP Code",
		TextBody: "Your OTP code is: " + code,
	}

	if err := e.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send otp email: %w", err)
	}

	return nil
}
