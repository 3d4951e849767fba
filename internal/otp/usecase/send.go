package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/otpgate/otpgate/internal/otp/entity"
	"github.com/otpgate/otpgate/internal/pkg/goerror"
)

type SendInput struct {
	UserID      int64  `validate:"required"`
	OperationID *string
	Channel     string `validate:"required"`
}

// Send generates a code for the user and pushes it through the requested
// channel. The user's username doubles as the recipient address: an email
// address, a phone number, a chat id or a file path depending on the channel.
//
// A transport failure does not roll the row back; the code stays ACTIVE and
// is either consumed later or collected by the expiration sweep.
func (s *Usecase) Send(ctx context.Context, in SendInput) error {
	ctx, span := s.startSpan(ctx, "Send")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	channel, err := entity.ParseChannel(in.Channel)
	if err != nil {
		return goerror.NewInvalidInput(nil, "channel", "must be EMAIL, SMS, TELEGRAM or FILE")
	}

	// The user must resolve before a row is written; otp_codes carries a
	// foreign key on user_id, so inserting first would surface the miss as a
	// constraint violation instead of a client error.
	recipient, err := s.repoDB.GetUsername(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewInvalidInput(nil, "userId", "user does not exist")
		}

		slog.ErrorContext(ctx, "failed to repo get username", "user_id", in.UserID, "error", err)
		return goerror.NewServer(err)
	}

	code, err := s.Generate(ctx, GenerateInput{UserID: in.UserID, OperationID: in.OperationID})
	if err != nil {
		return err
	}

	if err := s.notifier.Send(ctx, channel, recipient, code); err != nil {
		slog.ErrorContext(ctx, "failed to send otp", "user_id", in.UserID, "channel", channel, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
