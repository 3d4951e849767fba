package usecase

import (
	"context"
	"time"

	"github.com/otpgate/otpgate/internal/otp/entity"
	"github.com/otpgate/otpgate/internal/pkg/clock"
	"github.com/otpgate/otpgate/internal/pkg/codegen"
	"github.com/otpgate/otpgate/internal/pkg/goroutine"
	"github.com/otpgate/otpgate/internal/pkg/instrument"
	"github.com/otpgate/otpgate/internal/pkg/uid"
	"github.com/otpgate/otpgate/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetConfig(ctx context.Context) (*entity.Config, error)
	GetUsername(ctx context.Context, userID int64) (string, error)
	CreateOtp(ctx context.Context, otp entity.Otp) error
	GetOtpByCode(ctx context.Context, code string) (*entity.Otp, error)
	MarkUsed(ctx context.Context, id int64) (bool, error)
	ExpireStale(ctx context.Context, cutoff time.Time) (int64, error)
}

type notifier interface {
	Send(ctx context.Context, channel entity.Channel, recipient, code string) error
}

type Usecase struct {
	repoDB    repoDB
	notifier  notifier
	validator validator.Validator
	codegen   codegen.Generator
	clock     clock.Clocker
	uid       uid.NumberID
	goroutine *goroutine.Manager
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Notifier   notifier
	Validator  validator.Validator
	CodeGen    codegen.Generator
	Clock      clock.Clocker
	UID        uid.NumberID
	Goroutine  *goroutine.Manager
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		notifier:  dep.Notifier,
		validator: dep.Validator,
		codegen:   dep.CodeGen,
		clock:     dep.Clock,
		uid:       dep.UID,
		goroutine: dep.Goroutine,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("otp.usecase").Start(ctx, name)
}
