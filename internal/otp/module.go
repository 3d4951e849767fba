package otp

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/otpgate/otpgate/internal/otp/entity"
	"github.com/otpgate/otpgate/internal/otp/inbound"
	"github.com/otpgate/otpgate/internal/otp/outbound/db"
	"github.com/otpgate/otpgate/internal/otp/outbound/notify"
	"github.com/otpgate/otpgate/internal/otp/usecase"
	"github.com/otpgate/otpgate/internal/pkg/clock"
	"github.com/otpgate/otpgate/internal/pkg/codegen"
	"github.com/otpgate/otpgate/internal/pkg/config"
	"github.com/otpgate/otpgate/internal/pkg/goroutine"
	"github.com/otpgate/otpgate/internal/pkg/instrument"
	"github.com/otpgate/otpgate/internal/pkg/mail"
	"github.com/otpgate/otpgate/internal/pkg/router"
	"github.com/otpgate/otpgate/internal/pkg/uid"
	"github.com/otpgate/otpgate/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	CodeGen    codegen.Generator          `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

// New wires the OTP module and returns the expiration sweeper for the caller
// to start and stop with the process lifecycle.
func New(dep Dependency) (*usecase.Sweeper, error) {
	if err := dep.Validator.Validate(dep); err != nil {
		return nil, err
	}

	repo := db.NewDB(dep.DBConn, dep.Instrument)

	dispatch := notify.NewFactory(map[entity.Channel]notify.Sender{
		entity.ChannelEmail: notify.NewEmail(dep.Mail),
		entity.ChannelSMS: notify.NewSMS(notify.SMSConfig{
			Host:       dep.Config.GetString("notify.smpp.host"),
			Port:       dep.Config.GetInt("notify.smpp.port"),
			SystemID:   dep.Config.GetString("notify.smpp.system_id"),
			Password:   dep.Config.GetString("notify.smpp.password"),
			SystemType: dep.Config.GetString("notify.smpp.system_type"),
			SourceAddr: dep.Config.GetString("notify.smpp.source_addr"),
		}),
		entity.ChannelTelegram: notify.NewTelegram(notify.TelegramConfig{
			APIURL: dep.Config.GetString("notify.telegram.api_url"),
			Token:  dep.Config.GetString("notify.telegram.token"),
			ChatID: dep.Config.GetString("notify.telegram.chat_id"),
		}, http.DefaultClient),
		entity.ChannelFile: notify.NewFile(dep.Clock),
	})

	uc := usecase.New(usecase.Dependency{
		RepoDB:     repo,
		Notifier:   dispatch,
		Validator:  dep.Validator,
		CodeGen:    dep.CodeGen,
		Clock:      dep.Clock,
		UID:        dep.UID,
		Goroutine:  dep.Goroutine,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	sweeper := usecase.NewSweeper(uc, dep.Config.GetMinute("otp.sweep_interval_minutes"))

	return sweeper, nil
}
