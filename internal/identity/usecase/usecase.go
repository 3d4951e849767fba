package usecase

import (
	"context"

	"github.com/otpgate/otpgate/internal/identity/entity"
	"github.com/otpgate/otpgate/internal/pkg/hash"
	"github.com/otpgate/otpgate/internal/pkg/instrument"
	"github.com/otpgate/otpgate/internal/pkg/session"
	"github.com/otpgate/otpgate/internal/pkg/uid"
	"github.com/otpgate/otpgate/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	AdminExists(ctx context.Context) (bool, error)
	CreateUser(ctx context.Context, user entity.User) error
}

type Usecase struct {
	repoDB    repoDB
	sessions  *session.Registry
	validator validator.Validator
	hash      hash.Hash
	uid       uid.NumberID
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Sessions   *session.Registry
	Validator  validator.Validator
	Hash       hash.Hash
	UID        uid.NumberID
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		sessions:  dep.Sessions,
		validator: dep.Validator,
		hash:      dep.Hash,
		uid:       dep.UID,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}
