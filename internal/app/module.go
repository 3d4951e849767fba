package app

import (
	"log/slog"
	"os"

	"github.com/otpgate/otpgate/internal/admin"
	"github.com/otpgate/otpgate/internal/identity"
	"github.com/otpgate/otpgate/internal/otp"
)

func (a *App) initModules() {
	if err := identity.New(identity.Dependency{
		DBConn:     a.dbConn,
		Router:     a.router,
		Sessions:   a.sessions,
		Instrument: a.ins,
		UID:        a.uid,
		Hash:       a.hash,
		Validator:  a.validator,
	}); err != nil {
		slog.Error("failed to init module identity", "error", err)
		os.Exit(1)
	}

	sweeper, err := otp.New(otp.Dependency{
		DBConn:     a.dbConn,
		Router:     a.router,
		Config:     a.config,
		Instrument: a.ins,
		Goroutine:  a.goroutine,
		UID:        a.uid,
		CodeGen:    a.codegen,
		Clock:      a.clock,
		Mail:       a.mail,
		Validator:  a.validator,
	})
	if err != nil {
		slog.Error("failed to init module otp", "error", err)
		os.Exit(1)
	}
	a.sweeper = sweeper

	if err := admin.New(admin.Dependency{
		DBConn:     a.dbConn,
		Router:     a.router,
		Instrument: a.ins,
		Validator:  a.validator,
	}); err != nil {
		slog.Error("failed to init module admin", "error", err)
		os.Exit(1)
	}
}
